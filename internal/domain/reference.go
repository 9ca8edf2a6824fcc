package domain

// CountryDef declares a shippable country.
type CountryDef struct {
	Code         string `validate:"required,len=2"`
	Name         string `validate:"required"`
	CurrencyCode string `validate:"required,len=3"`
	PhonePrefix  string
	Active       bool
}

// ZoneDef declares a shipping/tax zone with its member cities.
type ZoneDef struct {
	Code        string `validate:"required"`
	Name        string `validate:"required"`
	CountryCode string `validate:"required,len=2"`
	Cities      []CityDef
}

// CityDef declares a city within a zone.
type CityDef struct {
	Slug string
	Name string `validate:"required"`
}

// CurrencyDef declares a supported currency.
type CurrencyDef struct {
	Code          string  `validate:"required,len=3"`
	Name          string  `validate:"required"`
	Symbol        string  `validate:"required"`
	ExchangeRate  float64 `validate:"gt=0"`
	DecimalPlaces int     `validate:"gte=0,lte=4"`
	Default       bool
}

// CustomerGroupDef declares a named customer group referenced by discount
// conditions.
type CustomerGroupDef struct {
	Code string `validate:"required"`
	Name string `validate:"required"`
}
