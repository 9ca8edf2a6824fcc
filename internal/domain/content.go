package domain

import "time"

// NewsDef declares a news post.
type NewsDef struct {
	Slug         string
	Title        string `validate:"required"`
	Excerpt      string
	Body         string
	PublishedAt  *time.Time
	Translations map[string]map[string]string
}

// LegalPageDef declares a legal/policy page.
type LegalPageDef struct {
	Slug         string
	Name         string `validate:"required"`
	Body         string
	Required     bool // must be accepted at checkout
	Translations map[string]map[string]string
}

// SliderDef declares a homepage slider entry.
type SliderDef struct {
	Key          string `validate:"required"`
	Title        string `validate:"required"`
	Subtitle     string
	ImageURL     string `validate:"omitempty,url"`
	LinkURL      string
	Position     int
	Active       bool
	Translations map[string]map[string]string
}
