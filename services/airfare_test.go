package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

var testLeg = Leg{
	FromCity:    "Manila",
	FromCountry: "Philippines",
	ToCity:      "Tokyo",
	ToCountry:   "Japan",
	Date:        "2026-10-05",
	Days:        3,
	FareClass:   FareBusiness,
}

func failingOracleServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
}

func TestReturnDate(t *testing.T) {
	got, err := ReturnDate("2026-10-05", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-10-08" {
		t.Errorf("return date = %q, want 2026-10-08", got)
	}

	// Month rollover stays calendar-safe with no timezone drift.
	got, err = ReturnDate("2026-01-30", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-02-04" {
		t.Errorf("return date = %q, want 2026-02-04", got)
	}

	if _, err := ReturnDate("05/10/2026", 3); err == nil {
		t.Error("expected error for non-ISO date literal")
	}
}

func TestParsePriceText(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"2500.34", 2500.34, false},
		{"The price is $1,850 USD", 1850, false},
		{"Around 1200 dollars.", 1200., false},
		{"no idea", 0, true},
		{"", 0, true},
		{"free: 0 USD", 0, true},
	}
	for _, tc := range tests {
		got, err := parsePriceText(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parsePriceText(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePriceText(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parsePriceText(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestResolveLeg_ManualOverrideSkipsOracles(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(map[string]any{"price": 999})
	}))
	defer srv.Close()

	resolver := NewAirfareResolver(nil, NewPrimaryOracle(srv.URL))
	manual := 2200.0
	leg := resolver.ResolveLeg(context.Background(), testLeg, &manual, 2)

	if leg.Price != 2200 || leg.Source != SourceManual {
		t.Errorf("got price=%v source=%s, want 2200/manual", leg.Price, leg.Source)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("manual override must not hit the oracle")
	}
}

func TestResolveLeg_PrimaryOracle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("departureCity") != "Manila" || q.Get("destinationCity") != "Tokyo" {
			t.Errorf("unexpected route: %s → %s", q.Get("departureCity"), q.Get("destinationCity"))
		}
		if q.Get("fareClass") != "Business" || q.Get("travelDays") != "3" || q.Get("numberOfPeople") != "2" {
			t.Errorf("unexpected query: %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"price":      1875.5,
			"source":     "aggregator",
			"search_url": "https://example.test/flights",
		})
	}))
	defer srv.Close()

	resolver := NewAirfareResolver(nil, NewPrimaryOracle(srv.URL))
	leg := resolver.ResolveLeg(context.Background(), testLeg, nil, 2)

	if leg.Price != 1875.5 || leg.Source != SourceOracle {
		t.Errorf("got price=%v source=%s, want 1875.5/oracle", leg.Price, leg.Source)
	}
	if leg.SourceURL != "https://example.test/flights" {
		t.Errorf("source URL = %q", leg.SourceURL)
	}
}

func TestResolveLeg_ErrorFieldTriggersFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"price": 1875.5, "error": "quota exceeded"})
	}))
	defer srv.Close()

	resolver := NewAirfareResolver(nil, NewPrimaryOracle(srv.URL))
	leg := resolver.ResolveLeg(context.Background(), testLeg, nil, 1)

	if leg.Price != DefaultAirfare || leg.Source != SourceFallback {
		t.Errorf("got price=%v source=%s, want %v/fallback_default", leg.Price, leg.Source, DefaultAirfare)
	}
}

func TestResolveLeg_SecondaryOracleAfterPrimaryFailure(t *testing.T) {
	primary := failingOracleServer(t)
	defer primary.Close()
	secondary := geminiTextServer(t, "Approximately $2,150.75 USD roundtrip.")
	defer secondary.Close()

	resolver := NewAirfareResolver(nil,
		NewPrimaryOracle(primary.URL),
		NewSecondaryOracle(newTestAIClient(secondary)),
	)
	leg := resolver.ResolveLeg(context.Background(), testLeg, nil, 1)

	if leg.Price != 2150.75 || leg.Source != SourceSecondaryOracle {
		t.Errorf("got price=%v source=%s, want 2150.75/secondary_oracle", leg.Price, leg.Source)
	}
}

func TestResolveLeg_TotalFailureReturnsDefault(t *testing.T) {
	primary := failingOracleServer(t)
	defer primary.Close()
	secondary := geminiTextServer(t, "I cannot provide pricing.")
	defer secondary.Close()

	resolver := NewAirfareResolver(nil,
		NewPrimaryOracle(primary.URL),
		NewSecondaryOracle(newTestAIClient(secondary)),
	)
	leg := resolver.ResolveLeg(context.Background(), testLeg, nil, 1)

	if leg.Price != 1500 || leg.Source != SourceFallback {
		t.Errorf("got price=%v source=%s, want 1500/fallback_default", leg.Price, leg.Source)
	}
}

func TestResolveLeg_NoStrategiesStillResolves(t *testing.T) {
	resolver := NewAirfareResolver(nil)
	leg := resolver.ResolveLeg(context.Background(), testLeg, nil, 1)
	if leg.Price != DefaultAirfare || leg.Source != SourceFallback {
		t.Errorf("got price=%v source=%s, want default fallback", leg.Price, leg.Source)
	}
}

func TestResolveLeg_CachesOracleSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(map[string]any{"price": 1400})
	}))
	defer srv.Close()

	cache := NewMemoryCache()
	resolver := NewAirfareResolver(cache, NewPrimaryOracle(srv.URL))

	first := resolver.ResolveLeg(context.Background(), testLeg, nil, 1)
	second := resolver.ResolveLeg(context.Background(), testLeg, nil, 1)

	if first.Price != 1400 || second.Price != 1400 {
		t.Errorf("prices = %v, %v, want 1400 both times", first.Price, second.Price)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("oracle called %d times, want 1 (second resolve should hit cache)", got)
	}
}

func TestResolveLeg_FallbackNeverCached(t *testing.T) {
	primary := failingOracleServer(t)
	defer primary.Close()

	cache := NewMemoryCache()
	resolver := NewAirfareResolver(cache, NewPrimaryOracle(primary.URL))
	resolver.ResolveLeg(context.Background(), testLeg, nil, 1)

	if _, ok := cache.Get(context.Background(), legCacheKey(testLeg, 1)); ok {
		t.Error("fallback price must not be cached")
	}
}
