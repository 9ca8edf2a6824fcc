package domain

// RoleDef declares an admin role and the permissions attached to it.
type RoleDef struct {
	Slug        string
	Name        string `validate:"required"`
	Permissions []string
}

// PermissionDef declares a grantable permission.
type PermissionDef struct {
	Slug string
	Name string `validate:"required"`
}

// SettingDef declares a system setting. Value is stored as JSON.
type SettingDef struct {
	Key   string `validate:"required"`
	Group string
	Value any
}

// FeatureFlagDef declares a feature toggle.
type FeatureFlagDef struct {
	Key         string `validate:"required"`
	Description string
	Enabled     bool
}
