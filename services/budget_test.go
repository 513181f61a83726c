package services

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*TripRequest)
		wantField string
	}{
		{"valid", func(r *TripRequest) {}, ""},
		{"missing departure country", func(r *TripRequest) { r.DepartureCountry = "" }, "departure_country"},
		{"missing departure city", func(r *TripRequest) { r.DepartureCity = "" }, "departure_city"},
		{"missing destination country", func(r *TripRequest) { r.DestinationCountry = "" }, "destination_country"},
		{"missing destination city", func(r *TripRequest) { r.DestinationCity = "" }, "destination_city"},
		{"bad date", func(r *TripRequest) { r.TargetDate = "10/05/2026" }, "target_date"},
		{"zero travel days", func(r *TripRequest) { r.TravelDays = 0 }, "travel_days"},
		{"zero travelers", func(r *TripRequest) { r.Travelers = 0 }, "number_of_people"},
		{"bad fare class", func(r *TripRequest) { r.FareClass = "First" }, "fare_class"},
		{"non-positive manual airfare", func(r *TripRequest) { m := -5.0; r.ManualAirfare = &m }, "manual_airfare"},
		{"second destination missing city", func(r *TripRequest) {
			r.SecondDestination = &Destination{Country: "Korea", StayDays: 2}
		}, "second_destination"},
		{"second destination unknown country", func(r *TripRequest) {
			r.SecondDestination = &Destination{Country: "Atlantis", City: "Poseidonia", StayDays: 2}
		}, "second_destination"},
		{"second destination unknown city", func(r *TripRequest) {
			r.SecondDestination = &Destination{Country: "Korea", City: "Busan", StayDays: 2}
		}, "second_destination"},
		{"second destination zero stay", func(r *TripRequest) {
			r.SecondDestination = &Destination{Country: "Korea", City: "Seoul", StayDays: 0}
		}, "second_destination"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := singleTrip()
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if verr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}

// The worked example from the budget policy: Manila → Tokyo, Business, 3
// days, 2 travelers, airfare via fallback.
func TestCalculate_ManilaTokyoExample(t *testing.T) {
	calc := NewBudgetCalculator(NewAirfareResolver(nil))

	b, err := calc.Calculate(context.Background(), singleTrip(), FallbackRates(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// perPerson = 1500 + 380*3 + 200*3 = 3240
	if b.AirfareTotal != 1500 {
		t.Errorf("airfare total = %v, want 1500", b.AirfareTotal)
	}
	if b.PerPersonCost != 3240 {
		t.Errorf("per-person cost = %v, want 3240", b.PerPersonCost)
	}
	if b.TotalCost != 6480 {
		t.Errorf("total cost = %v, want 6480", b.TotalCost)
	}
	if b.Contingency != 324 {
		t.Errorf("contingency = %v, want 324", b.Contingency)
	}
	if b.OverallBudget != 6804 {
		t.Errorf("overall budget = %v, want 6804", b.OverallBudget)
	}
}

func TestCalculate_Invariants(t *testing.T) {
	calc := NewBudgetCalculator(NewAirfareResolver(nil))

	for _, req := range []TripRequest{singleTrip(), multiCityTrip()} {
		b, err := calc.Calculate(context.Background(), req, FallbackRates(), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if b.Contingency != b.TotalCost*ContingencyRate {
			t.Errorf("contingency = %v, want totalCost*%v", b.Contingency, ContingencyRate)
		}
		if b.OverallBudget != b.TotalCost+b.Contingency {
			t.Errorf("overall = %v, want total+contingency", b.OverallBudget)
		}

		sum := b.AirfareTotal
		for i := range b.HotelCostByLeg {
			sum += b.HotelCostByLeg[i] + b.AllowanceCostByLeg[i]
		}
		want := sum * float64(req.Travelers)
		if math.Abs(b.TotalCost-want) > 1e-9 {
			t.Errorf("total cost = %v, want %v", b.TotalCost, want)
		}
	}
}

func TestCalculate_MultiCityCostsExcludeReturnLeg(t *testing.T) {
	calc := NewBudgetCalculator(NewAirfareResolver(nil))

	b, err := calc.Calculate(context.Background(), multiCityTrip(), FallbackRates(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(b.Legs) != 3 {
		t.Fatalf("got %d legs, want 3", len(b.Legs))
	}
	if len(b.Stays) != 2 {
		t.Fatalf("got %d stays, want 2 (return leg is never stayed at)", len(b.Stays))
	}
	if b.AirfareTotal != 3*DefaultAirfare {
		t.Errorf("airfare total = %v, want sum of three legs", b.AirfareTotal)
	}

	// Tokyo 3 days at 380/night + 200/day; Seoul 2 days at 310/night + 140/day.
	if b.HotelCostByLeg[0] != 380*3 || b.AllowanceCostByLeg[0] != 200*3 {
		t.Errorf("Tokyo costs = %v/%v", b.HotelCostByLeg[0], b.AllowanceCostByLeg[0])
	}
	if b.HotelCostByLeg[1] != 310*2 || b.AllowanceCostByLeg[1] != 140*2 {
		t.Errorf("Seoul costs = %v/%v", b.HotelCostByLeg[1], b.AllowanceCostByLeg[1])
	}
}

func TestCalculate_ForeignCurrencyHotelConverted(t *testing.T) {
	req := singleTrip()
	req.DestinationCountry = "Philippines"
	req.DestinationCity = "Manila"
	req.DepartureCountry = "Japan"
	req.DepartureCity = "Tokyo"

	calc := NewBudgetCalculator(NewAirfareResolver(nil))
	b, err := calc.Calculate(context.Background(), req, FallbackRates(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Manila lists 6900 PHP/night; fallback PHP rate is 0.017.
	want := 6900 * 0.017
	if math.Abs(b.Stays[0].HotelPerDayUSD-want) > 1e-9 {
		t.Errorf("hotel per day = %v, want %v", b.Stays[0].HotelPerDayUSD, want)
	}
	if b.Stays[0].HotelRate.Currency != "PHP" {
		t.Errorf("listed currency = %s, want PHP", b.Stays[0].HotelRate.Currency)
	}
}

func TestCalculate_UnlistedDestinationStillCompletes(t *testing.T) {
	req := singleTrip()
	req.DestinationCountry = "Atlantis"
	req.DestinationCity = "Poseidonia"

	calc := NewBudgetCalculator(NewAirfareResolver(nil))
	b, err := calc.Calculate(context.Background(), req, FallbackRates(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Stays[0].HotelPerDayUSD != 0 || b.Stays[0].AllowancePerDay != 0 {
		t.Errorf("unlisted destination should carry zero rates, got %+v", b.Stays[0])
	}
	// perPerson = 1500 airfare only; total = 3000 for two travelers.
	if b.TotalCost != 3000 {
		t.Errorf("total cost = %v, want 3000", b.TotalCost)
	}
}

func TestCalculate_RejectsInvalidBeforePricing(t *testing.T) {
	req := singleTrip()
	req.TravelDays = 0

	calc := NewBudgetCalculator(NewAirfareResolver(nil))
	if _, err := calc.Calculate(context.Background(), req, FallbackRates(), true); err == nil {
		t.Fatal("expected validation error")
	}
}
