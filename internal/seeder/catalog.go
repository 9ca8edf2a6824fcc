package seeder

import (
	"context"
	"fmt"

	"github.com/goleaf/statybae-seeder/internal/domain"
	"github.com/goleaf/statybae-seeder/internal/progress"
	"github.com/goleaf/statybae-seeder/internal/reconcile"
	"github.com/goleaf/statybae-seeder/pkg/validator"
)

func catalogCategories() []domain.CategoryDef {
	return []domain.CategoryDef{
		{
			Name: "Elektriniai įrankiai", Description: "Gręžtuvai, pjūklai, šlifuokliai",
			SortOrder: 1, Active: true, IconURL: "/icons/power-tools.svg", ShowInMenu: true,
			Children: []domain.CategoryDef{
				{Name: "Gręžtuvai", SortOrder: 1, Active: true, ShowInMenu: true},
				{Name: "Diskiniai pjūklai", SortOrder: 2, Active: true, ShowInMenu: true},
			},
			Translations: map[string]map[string]string{
				"en": {"name": "Power Tools", "description": "Drills, saws, grinders"},
				"ru": {"name": "Электроинструменты"},
			},
		},
		{
			Name: "Santechnika", Description: "Vamzdžiai, jungtys, maišytuvai",
			SortOrder: 2, Active: true, IconURL: "/icons/plumbing.svg", ShowInMenu: true,
			Translations: map[string]map[string]string{
				"en": {"name": "Plumbing", "description": "Pipes, fittings, faucets"},
			},
		},
		{
			Name: "Statybinės medžiagos", Description: "Cementas, gipsas, izoliacija",
			SortOrder: 3, Active: true, ShowInMenu: true,
			Children: []domain.CategoryDef{
				{Name: "Izoliacija", SortOrder: 1, Active: true, ShowInMenu: false},
			},
			Translations: map[string]map[string]string{
				"en": {"name": "Building Materials"},
				"de": {"name": "Baustoffe"},
			},
		},
	}
}

func catalogBrands() []domain.BrandDef {
	return []domain.BrandDef{
		{Name: "Makita", Website: "https://www.makita.lt", Enabled: true},
		{Name: "Bosch", Website: "https://www.bosch.lt", Enabled: true},
		{Name: "Knauf", Website: "https://www.knauf.lt", Enabled: true},
		{Name: "Herz", Enabled: true},
	}
}

func catalogAttributes() []domain.AttributeDef {
	return []domain.AttributeDef{
		{Name: "Galia", Kind: "number", Filterable: true},
		{Name: "Spalva", Kind: "color", Filterable: true, Options: []string{"Juoda", "Mėlyna", "Žalia", "Raudona"}},
		{Name: "Garantija", Kind: "select", Filterable: true, Options: []string{"1 metai", "2 metai", "3 metai"}},
	}
}

func catalogProducts() []domain.ProductDef {
	return []domain.ProductDef{
		{
			SKU: "MAK-DDF485", Name: "Makita DDF485 akumuliatorinis gręžtuvas",
			Description: "18V LXT begimbalis gręžtuvas-suktuvas",
			BrandSlug:   "makita", PriceCents: 14900, Status: "published",
			CategorySlugs: []string{"elektriniai-irankiai", "greztuvai"},
			Variants: []domain.VariantDef{
				{SKU: "MAK-DDF485-BODY", Name: "Be akumuliatoriaus", PriceCents: 14900,
					Inventory: map[string]int{"vilnius-main": 24, "kaunas-hub": 12}},
				{SKU: "MAK-DDF485-KIT", Name: "Su 2x5.0Ah akumuliatoriais", PriceCents: 28900,
					Inventory: map[string]int{"vilnius-main": 8}},
			},
			Translations: map[string]map[string]string{
				"en": {"name": "Makita DDF485 cordless drill", "description": "18V LXT brushless drill driver"},
			},
		},
		{
			SKU: "BOS-GWS750", Name: "Bosch GWS 750 kampinis šlifuoklis",
			BrandSlug: "bosch", PriceCents: 5490, Status: "published",
			CategorySlugs: []string{"elektriniai-irankiai"},
			Variants: []domain.VariantDef{
				{SKU: "BOS-GWS750-125", Name: "125 mm diskas", PriceCents: 5490,
					Inventory: map[string]int{"vilnius-main": 40}},
			},
			Translations: map[string]map[string]string{
				"en": {"name": "Bosch GWS 750 angle grinder"},
			},
		},
		{
			SKU: "KNF-MP75", Name: "Knauf MP 75 gipsinis tinkas 30kg",
			BrandSlug: "knauf", PriceCents: 1190, Status: "published",
			CategorySlugs: []string{"statybines-medziagos"},
			Variants: []domain.VariantDef{
				{SKU: "KNF-MP75-30", Name: "30 kg maišas", PriceCents: 1190,
					Inventory: map[string]int{"vilnius-main": 300, "kaunas-hub": 180}},
			},
		},
		{
			SKU: "HRZ-VT100", Name: "Herz termostatinis ventilis",
			BrandSlug: "herz", PriceCents: 2350, Status: "published",
			CategorySlugs: []string{"santechnika"},
			Variants: []domain.VariantDef{
				{SKU: "HRZ-VT100-12", Name: `1/2" jungtis`, PriceCents: 2350,
					Inventory: map[string]int{"kaunas-hub": 55}},
			},
		},
	}
}

func catalogCollections() []domain.CollectionDef {
	return []domain.CollectionDef{
		{
			Name: "Vasaros remonto hitai", Description: "Populiariausi sezono įrankiai",
			ProductSlugs: []string{
				"makita-ddf485-akumuliatorinis-greztuvas",
				"bosch-gws-750-kampinis-slifuoklis",
			},
			Translations: map[string]map[string]string{
				"en": {"name": "Summer Renovation Hits"},
			},
		},
		{
			Name: "Profesionalų pasirinkimas",
			ProductSlugs: []string{
				"makita-ddf485-akumuliatorinis-greztuvas",
				"herz-termostatinis-ventilis",
			},
		},
	}
}

// seedCatalog populates the category tree, brands, attributes with their
// options, products with variants and initial inventory, then the curated
// collections. Pivot attachments are sync-without-detach.
func seedCatalog(ctx context.Context, d *Deps) error {
	for _, category := range catalogCategories() {
		if err := seedCategory(ctx, d, category, ""); err != nil {
			return err
		}
	}

	for _, brand := range catalogBrands() {
		if err := validator.Validate(brand); err != nil {
			return fmt.Errorf("brand %s: %w", brand.Name, err)
		}
		_, err := d.reconcile(ctx, "brand", reconcile.EntitySpec{
			Table:     "brands",
			KeyColumn: "slug",
			Key:       d.IDs.Slug(brand.Slug, brand.Name),
			Payload: map[string]any{
				"name":    brand.Name,
				"website": brand.Website,
				"enabled": brand.Enabled,
			},
		})
		if err != nil {
			return err
		}
	}

	for _, attribute := range catalogAttributes() {
		if err := seedAttribute(ctx, d, attribute); err != nil {
			return err
		}
	}

	for _, product := range catalogProducts() {
		if err := seedProduct(ctx, d, product); err != nil {
			return err
		}
	}

	for _, collection := range catalogCollections() {
		if err := seedCollection(ctx, d, collection); err != nil {
			return err
		}
	}

	return nil
}

func seedCategory(ctx context.Context, d *Deps, category domain.CategoryDef, parentID string) error {
	if err := validator.Validate(category); err != nil {
		return fmt.Errorf("category %s: %w", category.Name, err)
	}

	key := d.IDs.Slug(category.Slug, category.Name)
	payload := map[string]any{
		"name":        category.Name,
		"description": category.Description,
		"sort_order":  category.SortOrder,
		"active":      category.Active,
	}
	if parentID != "" {
		payload["parent_id"] = parentID
	}

	id, err := d.reconcile(ctx, "category", reconcile.EntitySpec{
		Table:     "categories",
		KeyColumn: "slug",
		Key:       key,
		Payload:   payload,
		OptionalPayload: map[string]any{
			"icon_url":     category.IconURL,
			"show_in_menu": category.ShowInMenu,
		},
	})
	if err != nil {
		return err
	}

	base := d.seoFields(category.Name, category.Description)
	if err := d.fanOutTranslations(ctx, "category", id, key, base, category.Translations); err != nil {
		return err
	}

	for _, child := range category.Children {
		if err := seedCategory(ctx, d, child, id); err != nil {
			return err
		}
	}
	return nil
}

func seedAttribute(ctx context.Context, d *Deps, attribute domain.AttributeDef) error {
	if err := validator.Validate(attribute); err != nil {
		return fmt.Errorf("attribute %s: %w", attribute.Name, err)
	}

	id, err := d.reconcile(ctx, "attribute", reconcile.EntitySpec{
		Table:     "attributes",
		KeyColumn: "slug",
		Key:       d.IDs.Slug(attribute.Slug, attribute.Name),
		Payload: map[string]any{
			"name":       attribute.Name,
			"kind":       attribute.Kind,
			"filterable": attribute.Filterable,
		},
	})
	if err != nil {
		return err
	}

	for position, option := range attribute.Options {
		_, err := d.reconcile(ctx, "attribute_option", reconcile.EntitySpec{
			Table:     "attribute_options",
			KeyColumn: "slug",
			Key:       d.IDs.Slug("", attribute.Name+" "+option),
			Payload: map[string]any{
				"attribute_id": id,
				"value":        option,
				"position":     position,
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedProduct(ctx context.Context, d *Deps, product domain.ProductDef) error {
	if err := validator.Validate(product); err != nil {
		return fmt.Errorf("product %s: %w", product.SKU, err)
	}

	payload := map[string]any{
		"sku":         product.SKU,
		"name":        product.Name,
		"description": product.Description,
		"price_cents": product.PriceCents,
		"status":      product.Status,
	}

	if product.BrandSlug != "" {
		brandID, err := d.resolveRef(ctx, "brands", "slug", product.BrandSlug)
		if err != nil {
			if skipErr := d.skipMissing(ctx, "product", err); skipErr != nil {
				return skipErr
			}
			return nil
		}
		payload["brand_id"] = brandID
	}

	key := d.IDs.Slug(product.Slug, product.Name)
	id, err := d.reconcile(ctx, "product", reconcile.EntitySpec{
		Table:     "products",
		KeyColumn: "slug",
		Key:       key,
		Payload:   payload,
	})
	if err != nil {
		return err
	}

	base := d.seoFields(product.Name, product.Description)
	if err := d.fanOutTranslations(ctx, "product", id, key, base, product.Translations); err != nil {
		return err
	}

	for _, variant := range product.Variants {
		variantID, err := d.reconcile(ctx, "variant", reconcile.EntitySpec{
			Table:     "product_variants",
			KeyColumn: "sku",
			Key:       variant.SKU,
			Payload: map[string]any{
				"product_id":  id,
				"name":        variant.Name,
				"price_cents": variant.PriceCents,
			},
		})
		if err != nil {
			return err
		}

		for location, quantity := range variant.Inventory {
			created, err := d.Gen.EnsureVariantInventory(ctx, variantID, location, quantity)
			if err != nil {
				return err
			}
			if created {
				d.Reporter.Observe("inventory", progress.OutcomeInserted)
			} else {
				d.Reporter.Observe("inventory", progress.OutcomeSkipped)
			}
		}
	}

	categoryIDs := make([]string, 0, len(product.CategorySlugs))
	for _, slug := range product.CategorySlugs {
		categoryID, err := d.resolveRef(ctx, "categories", "slug", slug)
		if err != nil {
			if skipErr := d.skipMissing(ctx, "product_category", err); skipErr != nil {
				return skipErr
			}
			continue
		}
		categoryIDs = append(categoryIDs, categoryID)
	}
	if len(categoryIDs) > 0 {
		if _, err := d.Gen.AttachPivot(ctx, "product_categories", "product_id", "category_id", id, categoryIDs); err != nil {
			return err
		}
	}

	return nil
}

func seedCollection(ctx context.Context, d *Deps, collection domain.CollectionDef) error {
	if err := validator.Validate(collection); err != nil {
		return fmt.Errorf("collection %s: %w", collection.Name, err)
	}

	key := d.IDs.Slug(collection.Slug, collection.Name)
	id, err := d.reconcile(ctx, "collection", reconcile.EntitySpec{
		Table:     "collections",
		KeyColumn: "slug",
		Key:       key,
		Payload: map[string]any{
			"name":        collection.Name,
			"description": collection.Description,
			"automatic":   collection.Automatic,
		},
	})
	if err != nil {
		return err
	}

	base := d.seoFields(collection.Name, collection.Description)
	if err := d.fanOutTranslations(ctx, "collection", id, key, base, collection.Translations); err != nil {
		return err
	}

	productIDs := make([]string, 0, len(collection.ProductSlugs))
	for _, slug := range collection.ProductSlugs {
		productID, err := d.resolveRef(ctx, "products", "slug", slug)
		if err != nil {
			if skipErr := d.skipMissing(ctx, "collection_product", err); skipErr != nil {
				return skipErr
			}
			continue
		}
		productIDs = append(productIDs, productID)
	}
	if len(productIDs) > 0 {
		if _, err := d.Gen.AttachPivot(ctx, "collection_products", "collection_id", "product_id", id, productIDs); err != nil {
			return err
		}
	}

	return nil
}
