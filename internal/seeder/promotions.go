package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/goleaf/statybae-seeder/internal/domain"
	"github.com/goleaf/statybae-seeder/internal/progress"
	"github.com/goleaf/statybae-seeder/internal/reconcile"
	"github.com/goleaf/statybae-seeder/pkg/validator"
)

func promotionPartnerTiers() []domain.PartnerTierDef {
	return []domain.PartnerTierDef{
		{Code: "bronze", Name: "Bronzinis partneris", DiscountRate: 300, MinTurnover: 0},
		{Code: "silver", Name: "Sidabrinis partneris", DiscountRate: 500, MinTurnover: 500_000},
		{Code: "gold", Name: "Auksinis partneris", DiscountRate: 800, MinTurnover: 2_000_000},
	}
}

func promotionDiscounts() []domain.DiscountDef {
	summerEnd := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	return []domain.DiscountDef{
		{
			Name: "VIP 12% Off", Type: domain.DiscountTypePercentage, Value: 12,
			Priority: 20, Status: domain.DiscountStatusActive,
			PerCustomerLimit: 5, Channel: "web",
			Conditions: []domain.ConditionDef{
				{Type: domain.ConditionCustomerGroup, Value: "vip"},
			},
			Translations: map[string]map[string]string{
				"en": {"name": "VIP 12% Off"},
				"ru": {"name": "VIP скидка 12%"},
			},
		},
		{
			Code: "VASARA10", Name: "Vasaros išpardavimas", Type: domain.DiscountTypePercentage,
			Value: 10, Priority: 10, Status: domain.DiscountStatusActive, EndsAt: &summerEnd,
			Conditions: []domain.ConditionDef{
				{Type: domain.ConditionCartTotal, Value: 5000},
				{Type: domain.ConditionCategory, Value: []string{"elektriniai-irankiai", "santechnika"}},
			},
			CodeCount: 25, CodePrefix: "VAS-",
			Translations: map[string]map[string]string{
				"en": {"name": "Summer Sale"},
			},
		},
		{
			Name: "Studentams 15%", Type: domain.DiscountTypePercentage, Value: 15,
			Priority: 15, Status: domain.DiscountStatusActive, UsageLimit: 1000,
			Conditions: []domain.ConditionDef{
				{Type: domain.ConditionCustomerGroup, Value: "student"},
			},
			FixedCodes: []string{"STUDENT15"},
		},
		{
			Name: "Nemokamas pristatymas nuo 99€", Type: domain.DiscountTypeFreeShipping,
			Priority: 5, Status: domain.DiscountStatusActive,
			Conditions: []domain.ConditionDef{
				{Type: domain.ConditionCartTotal, Value: 9900},
			},
			Translations: map[string]map[string]string{
				"en": {"name": "Free shipping over 99€"},
			},
		},
		{
			Name: "Auksiniams partneriams", Type: domain.DiscountTypeFixedAmount, Value: 2500,
			Priority: 30, Status: domain.DiscountStatusDraft, Exclusive: true,
			Conditions: []domain.ConditionDef{
				{Type: domain.ConditionPartnerTier, Value: "gold"},
				{Type: domain.ConditionItemQty, Value: 10},
			},
		},
	}
}

func promotionReferralPrograms() []domain.ReferralProgramDef {
	return []domain.ReferralProgramDef{
		{Code: "draugui-10", Name: "Rekomenduok draugui", RewardType: "percentage", RewardValue: 10, Active: true},
		{Code: "partner-bonus", Name: "Partnerio premija", RewardType: "fixed_amount", RewardValue: 1500, Active: false},
	}
}

// seedPromotions populates partner tiers, the preset discounts with their
// conditions and redeemable codes, and the referral programs. Conditions
// referencing a customer group or partner tier that does not exist are
// skipped with a warning rather than failing the run.
func seedPromotions(ctx context.Context, d *Deps) error {
	for _, tier := range promotionPartnerTiers() {
		if err := validator.Validate(tier); err != nil {
			return fmt.Errorf("partner tier %s: %w", tier.Code, err)
		}
		_, err := d.reconcile(ctx, "partner_tier", reconcile.EntitySpec{
			Table:     "partner_tiers",
			KeyColumn: "code",
			Key:       tier.Code,
			Payload: map[string]any{
				"name":          tier.Name,
				"discount_rate": tier.DiscountRate,
				"min_turnover":  tier.MinTurnover,
			},
		})
		if err != nil {
			return err
		}
	}

	for _, discount := range promotionDiscounts() {
		if err := seedDiscount(ctx, d, discount); err != nil {
			return err
		}
	}

	for _, program := range promotionReferralPrograms() {
		if err := validator.Validate(program); err != nil {
			return fmt.Errorf("referral program %s: %w", program.Code, err)
		}
		_, err := d.reconcile(ctx, "referral_program", reconcile.EntitySpec{
			Table:     "referral_programs",
			KeyColumn: "code",
			Key:       program.Code,
			Payload: map[string]any{
				"name":         program.Name,
				"reward_type":  program.RewardType,
				"reward_value": program.RewardValue,
				"active":       program.Active,
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func seedDiscount(ctx context.Context, d *Deps, discount domain.DiscountDef) error {
	if err := validator.Validate(discount); err != nil {
		return fmt.Errorf("discount %s: %w", discount.Name, err)
	}

	status := discount.Status
	if status == "" {
		status = domain.DiscountStatusDraft
	}

	code := d.IDs.Code(discount.Code, discount.Name)
	id, err := d.reconcile(ctx, "discount", reconcile.EntitySpec{
		Table:     "discounts",
		KeyColumn: "code",
		Key:       code,
		Payload: map[string]any{
			"name":        discount.Name,
			"type":        discount.Type,
			"value":       discount.Value,
			"priority":    discount.Priority,
			"status":      status,
			"starts_at":   discount.StartsAt,
			"ends_at":     discount.EndsAt,
			"usage_limit": discount.UsageLimit,
			"exclusive":   discount.Exclusive,
		},
		OptionalPayload: map[string]any{
			"per_customer_limit": discount.PerCustomerLimit,
			"channel":            discount.Channel,
		},
	})
	if err != nil {
		return err
	}

	base := d.seoFields(discount.Name, "")
	if err := d.fanOutTranslations(ctx, "discount", id, "", base, discount.Translations); err != nil {
		return err
	}

	for _, condition := range discount.Conditions {
		if err := seedCondition(ctx, d, id, condition); err != nil {
			return err
		}
	}

	for _, fixed := range discount.FixedCodes {
		created, err := d.Gen.EnsureCode(ctx, id, fixed, reconcile.CodeOptions{
			ExpiresAt: discount.EndsAt,
			MaxUses:   discount.UsageLimit,
		})
		if err != nil {
			return err
		}
		if created {
			d.Reporter.Observe("code", progress.OutcomeInserted)
		} else {
			d.Reporter.Observe("code", progress.OutcomeSkipped)
		}
	}

	if discount.CodeCount > 0 {
		codes, err := d.Gen.GenerateCodes(ctx, id, discount.CodeCount, discount.CodePrefix, reconcile.CodeOptions{
			ExpiresAt: discount.EndsAt,
			MaxUses:   1,
		})
		if err != nil {
			return err
		}
		for range codes {
			d.Reporter.Observe("code", progress.OutcomeInserted)
		}
	}

	return nil
}

// seedCondition verifies the referenced entity exists before attaching the
// predicate, so a preset pointing at an unseeded group degrades to a
// warning instead of poisoning the discount.
func seedCondition(ctx context.Context, d *Deps, discountID string, condition domain.ConditionDef) error {
	if table, keyColumn, key, refs := conditionReference(condition); refs {
		if _, err := d.resolveRef(ctx, table, keyColumn, key); err != nil {
			return d.skipMissing(ctx, "condition", err)
		}
	}

	created, err := d.Gen.EnsureCondition(ctx, discountID, condition)
	if err != nil {
		return err
	}
	if created {
		d.Reporter.Observe("condition", progress.OutcomeInserted)
	} else {
		d.Reporter.Observe("condition", progress.OutcomeSkipped)
	}
	return nil
}

// conditionReference maps a condition type to the table its scalar value
// must reference. List values and numeric thresholds reference nothing.
func conditionReference(condition domain.ConditionDef) (table, keyColumn, key string, refs bool) {
	value, ok := condition.Value.(string)
	if !ok {
		return "", "", "", false
	}
	switch condition.Type {
	case domain.ConditionCustomerGroup:
		return "customer_groups", "code", value, true
	case domain.ConditionPartnerTier:
		return "partner_tiers", "code", value, true
	case domain.ConditionCategory:
		return "categories", "slug", value, true
	case domain.ConditionCollection:
		return "collections", "slug", value, true
	case domain.ConditionZone:
		return "zones", "code", value, true
	default:
		return "", "", "", false
	}
}
