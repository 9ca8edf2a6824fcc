package seeder

import (
	"context"
	"fmt"

	"github.com/goleaf/statybae-seeder/internal/domain"
	"github.com/goleaf/statybae-seeder/internal/reconcile"
	"github.com/goleaf/statybae-seeder/pkg/validator"
)

func referenceCountries() []domain.CountryDef {
	return []domain.CountryDef{
		{Code: "LT", Name: "Lietuva", CurrencyCode: "EUR", PhonePrefix: "+370", Active: true},
		{Code: "LV", Name: "Latvija", CurrencyCode: "EUR", PhonePrefix: "+371", Active: true},
		{Code: "EE", Name: "Eesti", CurrencyCode: "EUR", PhonePrefix: "+372", Active: true},
		{Code: "PL", Name: "Polska", CurrencyCode: "PLN", PhonePrefix: "+48", Active: true},
		{Code: "DE", Name: "Deutschland", CurrencyCode: "EUR", PhonePrefix: "+49", Active: false},
	}
}

func referenceZones() []domain.ZoneDef {
	return []domain.ZoneDef{
		{
			Code: "LT-VIL", Name: "Vilniaus apskritis", CountryCode: "LT",
			Cities: []domain.CityDef{
				{Name: "Vilnius"},
				{Name: "Ukmergė"},
				{Name: "Šalčininkai"},
			},
		},
		{
			Code: "LT-KAU", Name: "Kauno apskritis", CountryCode: "LT",
			Cities: []domain.CityDef{
				{Name: "Kaunas"},
				{Name: "Jonava"},
				{Name: "Kėdainiai"},
			},
		},
		{
			Code: "LT-KLP", Name: "Klaipėdos apskritis", CountryCode: "LT",
			Cities: []domain.CityDef{
				{Name: "Klaipėda"},
				{Name: "Palanga"},
			},
		},
		{
			Code: "LV-RIG", Name: "Rīgas reģions", CountryCode: "LV",
			Cities: []domain.CityDef{
				{Name: "Rīga"},
				{Name: "Jūrmala"},
			},
		},
	}
}

func referenceCurrencies() []domain.CurrencyDef {
	return []domain.CurrencyDef{
		{Code: "EUR", Name: "Euro", Symbol: "€", ExchangeRate: 1, DecimalPlaces: 2, Default: true},
		{Code: "PLN", Name: "Polish Złoty", Symbol: "zł", ExchangeRate: 4.32, DecimalPlaces: 2},
		{Code: "USD", Name: "US Dollar", Symbol: "$", ExchangeRate: 1.08, DecimalPlaces: 2},
	}
}

func referenceCustomerGroups() []domain.CustomerGroupDef {
	return []domain.CustomerGroupDef{
		{Code: "retail", Name: "Mažmeninis pirkėjas"},
		{Code: "vip", Name: "VIP klientas"},
		{Code: "wholesale", Name: "Didmeninis pirkėjas"},
		{Code: "student", Name: "Studentas"},
	}
}

// seedReference populates countries, zones with their cities, currencies,
// and customer groups, the rows everything downstream points at.
func seedReference(ctx context.Context, d *Deps) error {
	for _, country := range referenceCountries() {
		if err := validator.Validate(country); err != nil {
			return fmt.Errorf("country %s: %w", country.Code, err)
		}
		_, err := d.reconcile(ctx, "country", reconcile.EntitySpec{
			Table:     "countries",
			KeyColumn: "code",
			Key:       country.Code,
			Payload: map[string]any{
				"name":          country.Name,
				"currency_code": country.CurrencyCode,
				"phone_prefix":  country.PhonePrefix,
				"active":        country.Active,
			},
		})
		if err != nil {
			return err
		}
	}

	for _, zone := range referenceZones() {
		if err := validator.Validate(zone); err != nil {
			return fmt.Errorf("zone %s: %w", zone.Code, err)
		}
		zoneID, err := d.reconcile(ctx, "zone", reconcile.EntitySpec{
			Table:     "zones",
			KeyColumn: "code",
			Key:       zone.Code,
			Payload: map[string]any{
				"name":         zone.Name,
				"country_code": zone.CountryCode,
			},
		})
		if err != nil {
			return err
		}

		for _, city := range zone.Cities {
			_, err := d.reconcile(ctx, "city", reconcile.EntitySpec{
				Table:     "cities",
				KeyColumn: "slug",
				Key:       d.IDs.Slug(city.Slug, city.Name),
				Payload: map[string]any{
					"name":    city.Name,
					"zone_id": zoneID,
				},
			})
			if err != nil {
				return err
			}
		}
	}

	for _, currency := range referenceCurrencies() {
		if err := validator.Validate(currency); err != nil {
			return fmt.Errorf("currency %s: %w", currency.Code, err)
		}
		_, err := d.reconcile(ctx, "currency", reconcile.EntitySpec{
			Table:     "currencies",
			KeyColumn: "code",
			Key:       currency.Code,
			Payload: map[string]any{
				"name":           currency.Name,
				"symbol":         currency.Symbol,
				"exchange_rate":  currency.ExchangeRate,
				"decimal_places": currency.DecimalPlaces,
				"is_default":     currency.Default,
			},
		})
		if err != nil {
			return err
		}
	}

	for _, group := range referenceCustomerGroups() {
		if err := validator.Validate(group); err != nil {
			return fmt.Errorf("customer group %s: %w", group.Code, err)
		}
		_, err := d.reconcile(ctx, "customer_group", reconcile.EntitySpec{
			Table:     "customer_groups",
			KeyColumn: "code",
			Key:       group.Code,
			Payload: map[string]any{
				"name": group.Name,
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
