package services

import (
	"context"
	"fmt"
)

// ContingencyRate is the fixed buffer added on top of total trip cost.
const ContingencyRate = 0.05

// ValidationError rejects a trip request before any pricing is attempted. It
// carries the offending field for a field-level message in the UI.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a trip request. Reference-data absence is not an error for
// the main destination (unlisted destinations price via the fallback chain),
// but a second destination must resolve.
func (req *TripRequest) Validate() error {
	switch {
	case req.DepartureCountry == "":
		return &ValidationError{"departure_country", "departure country is required"}
	case req.DepartureCity == "":
		return &ValidationError{"departure_city", "departure city is required"}
	case req.DestinationCountry == "":
		return &ValidationError{"destination_country", "destination country is required"}
	case req.DestinationCity == "":
		return &ValidationError{"destination_city", "destination city is required"}
	}

	if _, err := ParseTravelDate(req.TargetDate); err != nil {
		return &ValidationError{"target_date", "target date must be YYYY-MM-DD"}
	}
	if req.TravelDays < 1 {
		return &ValidationError{"travel_days", "travel days must be at least 1"}
	}
	if req.Travelers < 1 {
		return &ValidationError{"number_of_people", "number of people must be at least 1"}
	}
	if req.FareClass != FareBusiness && req.FareClass != FareEconomy {
		return &ValidationError{"fare_class", "fare class must be Business or Economy"}
	}
	if req.ManualAirfare != nil && *req.ManualAirfare <= 0 {
		return &ValidationError{"manual_airfare", "manual airfare must be greater than zero"}
	}

	if second := req.SecondDestination; second != nil {
		if second.Country == "" || second.City == "" {
			return &ValidationError{"second_destination", "second destination country and city are required"}
		}
		if _, ok := hotelRates[second.Country]; !ok {
			return &ValidationError{"second_destination", "second destination country is not in the reference tables"}
		}
		if _, ok := hotelRates[second.Country][second.City]; !ok {
			return &ValidationError{"second_destination", "second destination city is not in the reference tables"}
		}
		if second.StayDays < 1 {
			return &ValidationError{"second_destination", "second destination stay must be at least 1 day"}
		}
	}
	return nil
}

// StayCost is the hotel and allowance cost for one stayed-at destination.
type StayCost struct {
	Destination
	HotelRate       HotelRate `json:"hotel_rate"`
	HotelPerDayUSD  float64   `json:"hotel_per_day_usd"`
	HotelCost       float64   `json:"hotel_cost"`
	AllowancePerDay float64   `json:"allowance_per_day"`
	AllowanceCost   float64   `json:"allowance_cost"`
}

// BudgetBreakdown is the priced result of a trip request. All values are USD
// at full float precision; rounding happens at display and export only.
type BudgetBreakdown struct {
	Legs               []PricedLeg `json:"legs"`
	Stays              []StayCost  `json:"stays"`
	AirfareTotal       float64     `json:"airfare_total"`
	HotelCostByLeg     []float64   `json:"hotel_cost_by_leg"`
	AllowanceCostByLeg []float64   `json:"allowance_cost_by_leg"`
	PerPersonCost      float64     `json:"per_person_cost"`
	TotalCost          float64     `json:"total_cost"`
	Contingency        float64     `json:"contingency"`
	OverallBudget      float64     `json:"overall_budget"`
	RatesDegraded      bool        `json:"rates_degraded"`
}

// BudgetCalculator combines the airfare resolver with reference-rate lookups.
type BudgetCalculator struct {
	resolver *AirfareResolver
}

func NewBudgetCalculator(resolver *AirfareResolver) *BudgetCalculator {
	return &BudgetCalculator{resolver: resolver}
}

// Calculate validates the request, prices its legs, and aggregates the
// breakdown. The only error it returns is a ValidationError; pricing itself
// always completes with some number.
func (c *BudgetCalculator) Calculate(ctx context.Context, req TripRequest, rates RateSet, degraded bool) (*BudgetBreakdown, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	legs := PriceTrip(ctx, c.resolver, req)
	airfareTotal := AirfareTotal(legs)

	stays := StayedDestinations(req)
	breakdown := &BudgetBreakdown{
		Legs:          legs,
		AirfareTotal:  airfareTotal,
		RatesDegraded: degraded,
	}

	perPerson := airfareTotal
	for _, stay := range stays {
		rate := LookupHotelRate(stay.Country, stay.City)
		hotelPerDay := Convert(rate.Rate, rate.Currency, rates)
		allowancePerDay := LookupAllowanceRate(stay.Country)
		days := float64(stay.StayDays)

		cost := StayCost{
			Destination:     stay,
			HotelRate:       rate,
			HotelPerDayUSD:  hotelPerDay,
			HotelCost:       hotelPerDay * days,
			AllowancePerDay: allowancePerDay,
			AllowanceCost:   allowancePerDay * days,
		}
		breakdown.Stays = append(breakdown.Stays, cost)
		breakdown.HotelCostByLeg = append(breakdown.HotelCostByLeg, cost.HotelCost)
		breakdown.AllowanceCostByLeg = append(breakdown.AllowanceCostByLeg, cost.AllowanceCost)
		perPerson += cost.HotelCost + cost.AllowanceCost
	}

	breakdown.PerPersonCost = perPerson
	breakdown.TotalCost = perPerson * float64(req.Travelers)
	breakdown.Contingency = breakdown.TotalCost * ContingencyRate
	breakdown.OverallBudget = breakdown.TotalCost + breakdown.Contingency
	return breakdown, nil
}
