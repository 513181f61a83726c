package services

import "sort"

// HotelRate is the nightly ceiling for a (country, city) pair in the listed
// currency. Unlisted destinations get a zero rate so the form stays usable.
type HotelRate struct {
	Rate     float64 `json:"rate"`
	Currency string  `json:"currency"`
}

// hubCities is the set of capital city names, precomputed so the planner can
// check whether a city is itself flight-searchable.
var hubCities = func() map[string]bool {
	set := make(map[string]bool, len(capitals))
	for _, city := range capitals {
		set[city] = true
	}
	return set
}()

// LookupHotelRate returns the hotel rate for a country/city pair.
// Missing entries resolve to {0, USD}, never an error.
func LookupHotelRate(country, city string) HotelRate {
	if cities, ok := hotelRates[country]; ok {
		if rate, ok := cities[city]; ok {
			return rate
		}
	}
	return HotelRate{Rate: 0, Currency: "USD"}
}

// LookupAllowanceRate returns the daily meal allowance for a country, 0 when
// the country is not listed.
func LookupAllowanceRate(country string) float64 {
	return dmaRates[country]
}

// LookupCapital returns the canonical capital city for a country.
func LookupCapital(country string) (string, bool) {
	capital, ok := capitals[country]
	return capital, ok
}

// IsHubCity reports whether the city is some country's capital and therefore
// usable as-is in a flight price query.
func IsHubCity(city string) bool {
	return hubCities[city]
}

// ListCities returns the known cities of a country in alphabetical order,
// empty for an unknown country.
func ListCities(country string) []string {
	cities, ok := hotelRates[country]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListCountries returns every country with a hotel rate entry, alphabetically.
func ListCountries() []string {
	names := make([]string, 0, len(hotelRates))
	for name := range hotelRates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
