package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type FareClass string

const (
	FareBusiness FareClass = "Business"
	FareEconomy  FareClass = "Economy"
)

// PriceSource tags where a resolved leg price came from.
type PriceSource string

const (
	SourceManual          PriceSource = "manual"
	SourceOracle          PriceSource = "oracle"
	SourceSecondaryOracle PriceSource = "secondary_oracle"
	SourceFallback        PriceSource = "fallback_default"
)

// DefaultAirfare is the unconditional last resort when every oracle fails.
const DefaultAirfare = 1500.0

const oracleTimeout = 30 * time.Second

// Leg is one roundtrip flight segment to price.
type Leg struct {
	FromCity    string    `json:"from_city"`
	FromCountry string    `json:"from_country"`
	ToCity      string    `json:"to_city"`
	ToCountry   string    `json:"to_country"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Days        int       `json:"days"`
	FareClass   FareClass `json:"fare_class"`
}

// PricedLeg is a leg with its resolved USD price.
type PricedLeg struct {
	Leg
	Price     float64     `json:"price"`
	Source    PriceSource `json:"source"`
	SourceURL string      `json:"source_url,omitempty"`
}

// ─── Date arithmetic ──────────────────────────────────────────────────────────

// ParseTravelDate parses a YYYY-MM-DD literal as UTC midnight. Locale-sensitive
// parsing is never used here; it shifted dates across timezones in the past.
func ParseTravelDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// ReturnDate computes the return date for a leg: departure plus trip length.
func ReturnDate(departure string, days int) (string, error) {
	dep, err := ParseTravelDate(departure)
	if err != nil {
		return "", err
	}
	return dep.AddDate(0, 0, days).Format("2006-01-02"), nil
}

// ─── Strategies ───────────────────────────────────────────────────────────────

// PricingStrategy resolves a leg price from one source. A strategy either
// succeeds with a positive finite USD price or fails; the resolver walks the
// chain in order and failures are never surfaced to the caller.
type PricingStrategy interface {
	Source() PriceSource
	Price(ctx context.Context, leg Leg, travelers int) (price float64, sourceURL string, err error)
}

// PrimaryOracle queries the third-party flight price service.
type PrimaryOracle struct {
	baseURL    string
	httpClient *http.Client
}

func NewPrimaryOracle(baseURL string) *PrimaryOracle {
	return &PrimaryOracle{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: oracleTimeout,
		},
	}
}

func (o *PrimaryOracle) Source() PriceSource { return SourceOracle }

type primaryOracleResponse struct {
	Price         float64         `json:"price"`
	Source        string          `json:"source,omitempty"`
	FlightDetails json.RawMessage `json:"flight_details,omitempty"`
	SearchURL     string          `json:"search_url,omitempty"`
	Error         string          `json:"error,omitempty"`
}

func (o *PrimaryOracle) Price(ctx context.Context, leg Leg, travelers int) (float64, string, error) {
	if o.baseURL == "" {
		return 0, "", fmt.Errorf("airfare oracle not configured")
	}

	q := url.Values{}
	q.Set("departureCity", leg.FromCity)
	q.Set("departureCountry", leg.FromCountry)
	q.Set("destinationCity", leg.ToCity)
	q.Set("destinationCountry", leg.ToCountry)
	q.Set("targetDate", leg.Date)
	q.Set("travelDays", strconv.Itoa(leg.Days))
	q.Set("fareClass", string(leg.FareClass))
	q.Set("numberOfPeople", strconv.Itoa(travelers))

	req, err := http.NewRequestWithContext(ctx, "GET", o.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, "", err
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, "", fmt.Errorf("oracle error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed primaryOracleResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, "", fmt.Errorf("failed to parse oracle response: %v", err)
	}
	if parsed.Error != "" {
		return 0, "", fmt.Errorf("oracle reported error: %s", parsed.Error)
	}
	if !validPrice(parsed.Price) {
		return 0, "", fmt.Errorf("oracle returned unusable price %v", parsed.Price)
	}

	sourceURL := parsed.SearchURL
	if sourceURL == "" {
		sourceURL = googleFlightsURL(leg.FromCity, leg.ToCity)
	}
	return parsed.Price, sourceURL, nil
}

// SecondaryOracle asks the AI text endpoint for a median price estimate.
type SecondaryOracle struct {
	client *AIClient
}

func NewSecondaryOracle(client *AIClient) *SecondaryOracle {
	return &SecondaryOracle{client: client}
}

func (o *SecondaryOracle) Source() PriceSource { return SourceSecondaryOracle }

func (o *SecondaryOracle) Price(ctx context.Context, leg Leg, travelers int) (float64, string, error) {
	returnDate, err := ReturnDate(leg.Date, leg.Days)
	if err != nil {
		return 0, "", err
	}

	prompt := fmt.Sprintf(
		"Find the median roundtrip %s class flight price from %s, %s to %s, %s, departing %s and returning %s, for %d traveler(s). "+
			"Return only the total price in USD as a single number, without currency symbols or commas. For example: 2500.34",
		strings.ToLower(string(leg.FareClass)),
		leg.FromCity, leg.FromCountry,
		leg.ToCity, leg.ToCountry,
		leg.Date, returnDate, travelers,
	)

	ctx, cancel := context.WithTimeout(ctx, oracleTimeout)
	defer cancel()

	text, err := o.client.Generate(ctx, prompt, false)
	if err != nil {
		return 0, "", err
	}

	price, err := parsePriceText(text)
	if err != nil {
		return 0, "", err
	}
	return price, googleFlightsURL(leg.FromCity, leg.ToCity), nil
}

// parsePriceText strips everything but digits and dots from a free-text reply
// and parses the remainder as a float.
func parsePriceText(text string) (float64, error) {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	price, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("no numeric price in reply %q", text)
	}
	if !validPrice(price) {
		return 0, fmt.Errorf("unusable price %v in reply %q", price, text)
	}
	return price, nil
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}

func googleFlightsURL(fromCity, toCity string) string {
	return fmt.Sprintf("https://www.google.com/travel/flights?q=Flights%%20from%%20%s%%20to%%20%s",
		url.QueryEscape(fromCity), url.QueryEscape(toCity))
}

// ─── Resolver ─────────────────────────────────────────────────────────────────

// AirfareResolver walks the strategy chain for a leg. Resolution is total: a
// manual override short-circuits, otherwise each strategy is tried in order
// and the fixed default closes the chain.
type AirfareResolver struct {
	strategies []PricingStrategy
	cache      PriceCache
}

var airfareResolver *AirfareResolver

func InitAirfare(cache PriceCache) {
	oracleURL := os.Getenv("AIRFARE_ORACLE_URL")
	if oracleURL == "" {
		log.Println("⚠️  AIRFARE_ORACLE_URL not set — airfare pricing will use the AI estimate")
	}
	airfareResolver = NewAirfareResolver(cache,
		NewPrimaryOracle(oracleURL),
		NewSecondaryOracle(GetAIClient()),
	)
}

func GetAirfareResolver() *AirfareResolver {
	return airfareResolver
}

func NewAirfareResolver(cache PriceCache, strategies ...PricingStrategy) *AirfareResolver {
	return &AirfareResolver{strategies: strategies, cache: cache}
}

// ResolveLeg prices one leg. It never returns an error and never returns a
// non-positive price.
func (r *AirfareResolver) ResolveLeg(ctx context.Context, leg Leg, manual *float64, travelers int) PricedLeg {
	if manual != nil && *manual > 0 {
		return PricedLeg{Leg: leg, Price: *manual, Source: SourceManual}
	}

	key := legCacheKey(leg, travelers)
	if r.cache != nil {
		if price, ok := r.cache.Get(ctx, key); ok && validPrice(price) {
			return PricedLeg{Leg: leg, Price: price, Source: SourceOracle, SourceURL: googleFlightsURL(leg.FromCity, leg.ToCity)}
		}
	}

	for _, s := range r.strategies {
		price, sourceURL, err := s.Price(ctx, leg, travelers)
		if err != nil {
			log.Printf("⚠️  %s pricing failed for %s → %s: %v", s.Source(), leg.FromCity, leg.ToCity, err)
			continue
		}
		if r.cache != nil && s.Source() == SourceOracle {
			if err := r.cache.Set(ctx, key, price); err != nil {
				log.Printf("⚠️  Failed to cache airfare for %s: %v", key, err)
			}
		}
		return PricedLeg{Leg: leg, Price: price, Source: s.Source(), SourceURL: sourceURL}
	}

	return PricedLeg{Leg: leg, Price: DefaultAirfare, Source: SourceFallback}
}

// legCacheKey identifies a priced route. Only primary oracle successes are
// cached under it, so hits always replay a live quote.
func legCacheKey(leg Leg, travelers int) string {
	return fmt.Sprintf("airfare:%s,%s:%s,%s:%s:%d:%s:%d",
		leg.FromCity, leg.FromCountry, leg.ToCity, leg.ToCountry,
		leg.Date, leg.Days, leg.FareClass, travelers)
}
