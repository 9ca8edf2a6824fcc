package domain

// CategoryDef declares a catalog category. Children nest directly; the
// seeder resolves parent identities before descending.
type CategoryDef struct {
	Slug        string
	Name        string `validate:"required"`
	Description string
	SortOrder   int
	Active      bool

	// Optional-column payload.
	IconURL    string
	ShowInMenu bool

	Children     []CategoryDef
	Translations map[string]map[string]string
}

// BrandDef declares a product brand.
type BrandDef struct {
	Slug    string
	Name    string `validate:"required"`
	Website string `validate:"omitempty,url"`
	Enabled bool
}

// AttributeDef declares a filterable product attribute and its options.
type AttributeDef struct {
	Slug       string
	Name       string `validate:"required"`
	Kind       string `validate:"required,oneof=select color number text"`
	Filterable bool
	Options    []string
}

// CollectionDef declares a curated product collection; ProductSlugs are
// attached via the pivot table.
type CollectionDef struct {
	Slug         string
	Name         string `validate:"required"`
	Description  string
	Automatic    bool
	ProductSlugs []string
	Translations map[string]map[string]string
}

// VariantDef declares a sellable product variant.
type VariantDef struct {
	SKU        string `validate:"required"`
	Name       string `validate:"required"`
	PriceCents int64  `validate:"gte=0"`

	// Initial stock per warehouse location code.
	Inventory map[string]int
}

// ProductDef declares a catalog product with its variants and category
// attachments.
type ProductDef struct {
	Slug          string
	SKU           string `validate:"required"`
	Name          string `validate:"required"`
	Description   string
	BrandSlug     string
	PriceCents    int64 `validate:"gte=0"`
	Status        string
	CategorySlugs []string
	Variants      []VariantDef
	Translations  map[string]map[string]string
}
