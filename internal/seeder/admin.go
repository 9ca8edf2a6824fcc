package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/goleaf/statybae-seeder/internal/domain"
	"github.com/goleaf/statybae-seeder/internal/progress"
	"github.com/goleaf/statybae-seeder/internal/reconcile"
	"github.com/goleaf/statybae-seeder/pkg/validator"
)

func adminPermissions() []domain.PermissionDef {
	return []domain.PermissionDef{
		{Name: "Peržiūrėti užsakymus", Slug: "orders.view"},
		{Name: "Valdyti užsakymus", Slug: "orders.manage"},
		{Name: "Peržiūrėti katalogą", Slug: "catalog.view"},
		{Name: "Valdyti katalogą", Slug: "catalog.manage"},
		{Name: "Valdyti nuolaidas", Slug: "discounts.manage"},
		{Name: "Valdyti nustatymus", Slug: "settings.manage"},
		{Name: "Valdyti naudotojus", Slug: "users.manage"},
	}
}

func adminRoles() []domain.RoleDef {
	return []domain.RoleDef{
		{
			Name: "Administratorius", Slug: "admin",
			Permissions: []string{
				"orders.view", "orders.manage", "catalog.view", "catalog.manage",
				"discounts.manage", "settings.manage", "users.manage",
			},
		},
		{
			Name: "Vadybininkas", Slug: "manager",
			Permissions: []string{"orders.view", "orders.manage", "catalog.view", "catalog.manage"},
		},
		{
			Name: "Turinio redaktorius", Slug: "editor",
			Permissions: []string{"catalog.view"},
		},
	}
}

func adminSettings(appName, appURL string) []domain.SettingDef {
	return []domain.SettingDef{
		{Key: "app.name", Group: "general", Value: appName},
		{Key: "app.url", Group: "general", Value: appURL},
		{Key: "checkout.min_order_cents", Group: "checkout", Value: 500},
		{Key: "checkout.free_shipping_threshold_cents", Group: "checkout", Value: 9900},
		{Key: "catalog.products_per_page", Group: "catalog", Value: 24},
		{Key: "mail.from_address", Group: "mail", Value: "info@statybae.lt"},
	}
}

func adminFeatureFlags() []domain.FeatureFlagDef {
	return []domain.FeatureFlagDef{
		{Key: "partner_pricing", Description: "Partner tier pricing on product pages", Enabled: true},
		{Key: "referral_program", Description: "Referral reward program", Enabled: true},
		{Key: "live_search", Description: "Search-as-you-type in the storefront header", Enabled: false},
	}
}

// seedAdmin populates permissions, roles with their permission pivots,
// system settings, and feature flags.
func seedAdmin(ctx context.Context, d *Deps) error {
	for _, permission := range adminPermissions() {
		if err := validator.Validate(permission); err != nil {
			return fmt.Errorf("permission %s: %w", permission.Slug, err)
		}
		_, err := d.reconcile(ctx, "permission", reconcile.EntitySpec{
			Table:     "permissions",
			KeyColumn: "slug",
			Key:       d.IDs.Slug(permission.Slug, permission.Name),
			Payload: map[string]any{
				"name": permission.Name,
			},
		})
		if err != nil {
			return err
		}
	}

	for _, role := range adminRoles() {
		if err := validator.Validate(role); err != nil {
			return fmt.Errorf("role %s: %w", role.Slug, err)
		}
		roleID, err := d.reconcile(ctx, "role", reconcile.EntitySpec{
			Table:     "roles",
			KeyColumn: "slug",
			Key:       d.IDs.Slug(role.Slug, role.Name),
			Payload: map[string]any{
				"name": role.Name,
			},
		})
		if err != nil {
			return err
		}

		permissionIDs := make([]string, 0, len(role.Permissions))
		for _, slug := range role.Permissions {
			permissionID, err := d.resolveRef(ctx, "permissions", "slug", slug)
			if err != nil {
				if skipErr := d.skipMissing(ctx, "role_permission", err); skipErr != nil {
					return skipErr
				}
				continue
			}
			permissionIDs = append(permissionIDs, permissionID)
		}
		if len(permissionIDs) > 0 {
			if _, err := d.Gen.AttachPivot(ctx, "role_permissions", "role_id", "permission_id", roleID, permissionIDs); err != nil {
				return err
			}
		}
	}

	for _, setting := range adminSettings(d.AppName, d.AppURL) {
		if err := validator.Validate(setting); err != nil {
			return fmt.Errorf("setting %s: %w", setting.Key, err)
		}
		value, err := json.Marshal(setting.Value)
		if err != nil {
			return fmt.Errorf("encode setting %s: %w", setting.Key, err)
		}
		_, err = d.reconcile(ctx, "setting", reconcile.EntitySpec{
			Table:     "settings",
			KeyColumn: "key",
			Key:       setting.Key,
			Payload: map[string]any{
				"group_name": setting.Group,
				"value":      value,
			},
		})
		if err != nil {
			return err
		}
	}

	return seedFeatureFlags(ctx, d)
}

// seedFeatureFlags writes the feature toggles. The feature_flags table
// arrived in a later migration, so a schema without it is a supported
// state: the flags are skipped with a warning instead of failing the unit.
func seedFeatureFlags(ctx context.Context, d *Deps) error {
	flags := adminFeatureFlags()

	if !d.Probe.HasTable(ctx, "feature_flags") {
		d.Logger.WarnContext(ctx, "feature_flags table missing, skipping feature flags",
			slog.Int("count", len(flags)))
		d.Reporter.ObserveCount("feature_flag", progress.OutcomeSkipped, len(flags))
		return nil
	}

	for _, flag := range flags {
		if err := validator.Validate(flag); err != nil {
			return fmt.Errorf("feature flag %s: %w", flag.Key, err)
		}
		_, err := d.reconcile(ctx, "feature_flag", reconcile.EntitySpec{
			Table:     "feature_flags",
			KeyColumn: "key",
			Key:       flag.Key,
			Payload: map[string]any{
				"description": flag.Description,
				"enabled":     flag.Enabled,
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
