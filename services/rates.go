package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// RateSet maps a currency code to its USD multiplier. The set always carries
// USD plus the three foreign currencies used by the hotel tables; a failed
// refresh replaces the whole set with the fallback, never a partial merge.
type RateSet map[string]float64

const ratesPrompt = `What are the current exchange rates for 1 CNY to USD, 1 INR to USD, and 1 PHP to USD? Please provide the answer in a valid JSON format like this: {"CNY": 0.14, "INR": 0.012, "PHP": 0.017}`

var trackedCurrencies = []string{"CNY", "INR", "PHP"}

// FallbackRates returns the static set used whenever the provider is
// unreachable or returns something unusable.
func FallbackRates() RateSet {
	return RateSet{"USD": 1, "CNY": 0.14, "INR": 0.012, "PHP": 0.017}
}

// Convert turns an amount in the given currency into USD. Unknown currency
// codes convert at 1:1 so a missing rate never blocks a calculation.
func Convert(amount float64, currency string, rates RateSet) float64 {
	rate, ok := rates[currency]
	if !ok {
		rate = 1
	}
	return amount * rate
}

// FetchRates asks the AI provider for current rates. On any failure it returns
// the full fallback set with degraded=true; it never returns an error.
func FetchRates(ctx context.Context, client *AIClient) (RateSet, bool) {
	text, err := client.Generate(ctx, ratesPrompt, true)
	if err != nil {
		log.Printf("⚠️  Exchange rate fetch failed: %v — using fallback rates", err)
		return FallbackRates(), true
	}

	var fetched map[string]float64
	if err := json.Unmarshal([]byte(text), &fetched); err != nil {
		log.Printf("⚠️  Exchange rate response unparseable: %v — using fallback rates", err)
		return FallbackRates(), true
	}

	rates := RateSet{"USD": 1}
	for _, code := range trackedCurrencies {
		rate, ok := fetched[code]
		if !ok || rate <= 0 {
			log.Printf("⚠️  Exchange rate response missing %s — using fallback rates", code)
			return FallbackRates(), true
		}
		rates[code] = rate
	}
	return rates, false
}

// ratesHolder is the only process-wide mutable state: the current rate set,
// replaced wholesale on refresh.
type ratesHolder struct {
	mu       sync.Mutex
	rates    RateSet
	degraded bool
}

var currentRates = &ratesHolder{rates: FallbackRates(), degraded: true}

// CurrentRates returns the active rate set and whether it is the fallback.
func CurrentRates() (RateSet, bool) {
	currentRates.mu.Lock()
	defer currentRates.mu.Unlock()
	return currentRates.rates, currentRates.degraded
}

// RefreshRates fetches a fresh set and swaps it in atomically.
func RefreshRates(ctx context.Context) (RateSet, bool) {
	rates, degraded := FetchRates(ctx, GetAIClient())
	currentRates.mu.Lock()
	currentRates.rates = rates
	currentRates.degraded = degraded
	currentRates.mu.Unlock()
	if !degraded {
		log.Println("✅ Exchange rates refreshed")
	}
	return rates, degraded
}
