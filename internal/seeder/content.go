package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/goleaf/statybae-seeder/internal/domain"
	"github.com/goleaf/statybae-seeder/internal/reconcile"
	"github.com/goleaf/statybae-seeder/internal/translate"
	"github.com/goleaf/statybae-seeder/pkg/validator"
)

func contentNews() []domain.NewsDef {
	published := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return []domain.NewsDef{
		{
			Title:       "Atidaryta nauja parduotuvė Kaune",
			Excerpt:     "Nuo kovo mėnesio laukiame jūsų Kaune.",
			Body:        "Išplėtėme savo tinklą: naujoje parduotuvėje rasite visą įrankių asortimentą.",
			PublishedAt: &published,
			Translations: map[string]map[string]string{
				"en": {"title": "New store opened in Kaunas", "excerpt": "From March, visit us in Kaunas."},
			},
		},
		{
			Title:   "Pavasario akcijos jau prasidėjo",
			Excerpt: "Nuolaidos elektriniams įrankiams iki 15%.",
		},
	}
}

func contentLegalPages() []domain.LegalPageDef {
	return []domain.LegalPageDef{
		{
			Name: "Privatumo politika", Required: true,
			Body: "Jūsų asmens duomenys tvarkomi pagal BDAR reikalavimus.",
			Translations: map[string]map[string]string{
				"en": {"name": "Privacy Policy"},
			},
		},
		{
			Name: "Pirkimo taisyklės", Required: true,
			Body: "Šios taisyklės taikomos visiems užsakymams.",
			Translations: map[string]map[string]string{
				"en": {"name": "Terms of Purchase"},
			},
		},
		{Name: "Grąžinimo sąlygos", Required: false},
	}
}

func contentSliders() []domain.SliderDef {
	return []domain.SliderDef{
		{
			Key: "hero-summer", Title: "Vasaros išpardavimas", Subtitle: "Iki -10% įrankiams",
			ImageURL: "https://cdn.statybae.lt/sliders/summer.jpg", LinkURL: "/akcijos/vasara",
			Position: 1, Active: true,
			Translations: map[string]map[string]string{
				"en": {"title": "Summer Sale", "subtitle": "Up to -10% on tools"},
			},
		},
		{
			Key: "hero-partners", Title: "Tapk partneriu", Subtitle: "Nuolaidos didmenai",
			LinkURL: "/partneriams", Position: 2, Active: true,
		},
	}
}

// seedContent populates news posts, legal pages, and homepage sliders,
// fanning translations across the supported locales.
func seedContent(ctx context.Context, d *Deps) error {
	for _, news := range contentNews() {
		if err := validator.Validate(news); err != nil {
			return fmt.Errorf("news %s: %w", news.Title, err)
		}
		key := d.IDs.Slug(news.Slug, news.Title)
		id, err := d.reconcile(ctx, "news", reconcile.EntitySpec{
			Table:     "news_posts",
			KeyColumn: "slug",
			Key:       key,
			Payload: map[string]any{
				"title":        news.Title,
				"excerpt":      news.Excerpt,
				"body":         news.Body,
				"published_at": news.PublishedAt,
			},
		})
		if err != nil {
			return err
		}

		base := translate.Fields{
			"name":        news.Title,
			"description": news.Excerpt,
			"seo_title":   news.Title + " | " + d.AppName,
		}
		if err := d.fanOutTranslations(ctx, "news", id, key, base, renameTitleKeys(news.Translations)); err != nil {
			return err
		}
	}

	for _, page := range contentLegalPages() {
		if err := validator.Validate(page); err != nil {
			return fmt.Errorf("legal page %s: %w", page.Name, err)
		}
		key := d.IDs.Slug(page.Slug, page.Name)
		id, err := d.reconcile(ctx, "legal_page", reconcile.EntitySpec{
			Table:     "legal_pages",
			KeyColumn: "slug",
			Key:       key,
			Payload: map[string]any{
				"name":     page.Name,
				"body":     page.Body,
				"required": page.Required,
			},
		})
		if err != nil {
			return err
		}

		if err := d.fanOutTranslations(ctx, "legal_page", id, key, d.seoFields(page.Name, ""), page.Translations); err != nil {
			return err
		}
	}

	for _, slider := range contentSliders() {
		if err := validator.Validate(slider); err != nil {
			return fmt.Errorf("slider %s: %w", slider.Key, err)
		}
		id, err := d.reconcile(ctx, "slider", reconcile.EntitySpec{
			Table:     "sliders",
			KeyColumn: "key",
			Key:       slider.Key,
			Payload: map[string]any{
				"title":     slider.Title,
				"subtitle":  slider.Subtitle,
				"image_url": slider.ImageURL,
				"link_url":  slider.LinkURL,
				"position":  slider.Position,
				"active":    slider.Active,
			},
		})
		if err != nil {
			return err
		}

		base := translate.Fields{
			"name":        slider.Title,
			"description": slider.Subtitle,
		}
		if err := d.fanOutTranslations(ctx, "slider", id, "", base, renameTitleKeys(slider.Translations)); err != nil {
			return err
		}
	}

	return nil
}

// renameTitleKeys maps content-style translation keys (title, subtitle,
// excerpt) onto the shared translation row columns (name, description).
func renameTitleKeys(perLocale map[string]map[string]string) map[string]map[string]string {
	if perLocale == nil {
		return nil
	}
	out := make(map[string]map[string]string, len(perLocale))
	for locale, fields := range perLocale {
		mapped := make(map[string]string, len(fields))
		for key, value := range fields {
			switch key {
			case "title":
				mapped["name"] = value
			case "subtitle", "excerpt":
				mapped["description"] = value
			default:
				mapped[key] = value
			}
		}
		out[locale] = mapped
	}
	return out
}
