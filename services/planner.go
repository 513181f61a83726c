package services

import (
	"context"
	"sync"
)

// Destination is a stayed-at stop on a trip.
type Destination struct {
	Country  string `json:"country"`
	City     string `json:"city"`
	StayDays int    `json:"stay_days"`
}

// TripRequest is the immutable input to a budget calculation, built once from
// the submitted form.
type TripRequest struct {
	SubmittedBy        string       `json:"submitted_by"`
	Division           string       `json:"division"`
	Purpose            string       `json:"purpose"`
	TargetAudience     string       `json:"target_audience"`
	DepartureCountry   string       `json:"departure_country"`
	DepartureCity      string       `json:"departure_city"`
	DestinationCountry string       `json:"destination_country"`
	DestinationCity    string       `json:"destination_city"`
	FareClass          FareClass    `json:"fare_class"`
	TargetDate         string       `json:"target_date"` // YYYY-MM-DD
	TravelDays         int          `json:"travel_days"`
	Travelers          int          `json:"number_of_people"`
	ManualAirfare      *float64     `json:"manual_airfare,omitempty"`
	SecondDestination  *Destination `json:"second_destination,omitempty"`
}

// flightCity normalizes a destination city to something a flight price query
// can resolve: the city itself when it is a capital, otherwise the country's
// capital. An unlisted country keeps the raw city and relies on the fallback
// chain. Departure cities are never normalized; they travel as entered.
func flightCity(country, city string) string {
	if IsHubCity(city) {
		return city
	}
	if capital, ok := LookupCapital(country); ok {
		return capital
	}
	return city
}

// PlanLegs decomposes a trip into the legs to price: one roundtrip leg for a
// single destination, three legs for a multi-city trip (outbound, connection,
// return). The return leg carries a nominal 1-day duration used only for the
// airfare date math.
func PlanLegs(req TripRequest) []Leg {
	depCity := req.DepartureCity
	destCity := flightCity(req.DestinationCountry, req.DestinationCity)

	if req.SecondDestination == nil {
		return []Leg{{
			FromCity:    depCity,
			FromCountry: req.DepartureCountry,
			ToCity:      destCity,
			ToCountry:   req.DestinationCountry,
			Date:        req.TargetDate,
			Days:        req.TravelDays,
			FareClass:   req.FareClass,
		}}
	}

	second := req.SecondDestination
	secondCity := flightCity(second.Country, second.City)

	leg2Date := req.TargetDate
	if d, err := ReturnDate(req.TargetDate, req.TravelDays); err == nil {
		leg2Date = d
	}
	leg3Date := leg2Date
	if d, err := ReturnDate(leg2Date, second.StayDays); err == nil {
		leg3Date = d
	}

	return []Leg{
		{
			FromCity:    depCity,
			FromCountry: req.DepartureCountry,
			ToCity:      destCity,
			ToCountry:   req.DestinationCountry,
			Date:        req.TargetDate,
			Days:        req.TravelDays,
			FareClass:   req.FareClass,
		},
		{
			FromCity:    destCity,
			FromCountry: req.DestinationCountry,
			ToCity:      secondCity,
			ToCountry:   second.Country,
			Date:        leg2Date,
			Days:        second.StayDays,
			FareClass:   req.FareClass,
		},
		{
			FromCity:    secondCity,
			FromCountry: second.Country,
			ToCity:      depCity,
			ToCountry:   req.DepartureCountry,
			Date:        leg3Date,
			Days:        1,
			FareClass:   req.FareClass,
		},
	}
}

// StayedDestinations lists the destinations hotel and allowance costs apply
// to. The return leg of a multi-city trip is never stayed at.
func StayedDestinations(req TripRequest) []Destination {
	stays := []Destination{{
		Country:  req.DestinationCountry,
		City:     req.DestinationCity,
		StayDays: req.TravelDays,
	}}
	if req.SecondDestination != nil {
		stays = append(stays, *req.SecondDestination)
	}
	return stays
}

// PriceTrip prices every leg of a trip concurrently. No leg's fallback
// decision depends on another leg, so the calls are independent. A manual
// override applies to single-destination trips only.
func PriceTrip(ctx context.Context, resolver *AirfareResolver, req TripRequest) []PricedLeg {
	legs := PlanLegs(req)

	manual := req.ManualAirfare
	if len(legs) > 1 {
		manual = nil
	}

	priced := make([]PricedLeg, len(legs))
	var wg sync.WaitGroup
	for i, leg := range legs {
		wg.Add(1)
		go func(i int, leg Leg) {
			defer wg.Done()
			priced[i] = resolver.ResolveLeg(ctx, leg, manual, req.Travelers)
		}(i, leg)
	}
	wg.Wait()
	return priced
}

// AirfareTotal sums the resolved leg prices.
func AirfareTotal(legs []PricedLeg) float64 {
	var total float64
	for _, leg := range legs {
		total += leg.Price
	}
	return total
}
