package domain

import "time"

// Discount type constants.
const (
	DiscountTypePercentage   = "percentage"
	DiscountTypeFixedAmount  = "fixed_amount"
	DiscountTypeFreeShipping = "free_shipping"
)

// Discount status constants.
const (
	DiscountStatusDraft    = "draft"
	DiscountStatusActive   = "active"
	DiscountStatusExpired  = "expired"
	DiscountStatusArchived = "archived"
)

// Condition type constants. Numeric types compare against a threshold,
// the rest match membership.
const (
	ConditionCustomerGroup = "customer_group"
	ConditionPartnerTier   = "partner_tier"
	ConditionCategory      = "category"
	ConditionCollection    = "collection"
	ConditionZone          = "zone"
	ConditionCartTotal     = "cart_total"
	ConditionItemQty       = "item_qty"
)

// Condition operator constants.
const (
	OperatorEqualsTo    = "equals_to"
	OperatorGreaterThan = "greater_than"
)

// NumericConditionType reports whether the given condition type compares a
// numeric threshold (and therefore defaults to greater_than).
func NumericConditionType(t string) bool {
	return t == ConditionCartTotal || t == ConditionItemQty
}

// ValidConditionTypes returns the set of valid condition types.
func ValidConditionTypes() []string {
	return []string{
		ConditionCustomerGroup,
		ConditionPartnerTier,
		ConditionCategory,
		ConditionCollection,
		ConditionZone,
		ConditionCartTotal,
		ConditionItemQty,
	}
}

// ConditionDef declares an eligibility predicate attached to a discount.
// Value may be a scalar or a list; it is stored canonically JSON-encoded.
type ConditionDef struct {
	Type     string `validate:"required"`
	Operator string // empty means "default for type"
	Value    any    `validate:"required"`
	Position int
}

// DiscountDef declares a preset discount. Code is optional; when empty the
// natural key is derived from Name (slugified and upper-cased).
type DiscountDef struct {
	Code     string
	Name     string `validate:"required"`
	Type     string `validate:"required,oneof=percentage fixed_amount free_shipping"`
	Value    int64  `validate:"gte=0"`
	Priority int    `validate:"gte=0"`
	Status   string
	StartsAt *time.Time
	EndsAt   *time.Time

	UsageLimit int
	Exclusive  bool

	// Optional-column payload, written only when the schema has them.
	PerCustomerLimit int
	Channel          string

	Conditions []ConditionDef

	// Bulk-generated redeemable codes.
	CodeCount  int
	CodePrefix string

	// Fixed codes seeded verbatim (e.g. STUDENT15).
	FixedCodes []string

	Translations map[string]map[string]string
}

// PartnerTierDef declares a partner discount tier.
type PartnerTierDef struct {
	Code         string `validate:"required"`
	Name         string `validate:"required"`
	DiscountRate int64  `validate:"gte=0,lte=10000"` // basis points
	MinTurnover  int64  `validate:"gte=0"`           // cents
}

// ReferralProgramDef declares a referral reward program.
type ReferralProgramDef struct {
	Code        string `validate:"required"`
	Name        string `validate:"required"`
	RewardType  string `validate:"required,oneof=percentage fixed_amount"`
	RewardValue int64  `validate:"gte=0"`
	Active      bool
}
