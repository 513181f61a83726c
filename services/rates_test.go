package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func newTestAIClient(srv *httptest.Server) *AIClient {
	return &AIClient{
		apiKey:     "test-key",
		model:      "gemini-2.0-flash",
		baseURL:    srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func geminiTextServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]string{"text": text}},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(body)
	}))
}

func TestConvert(t *testing.T) {
	rates := FallbackRates()

	if got := Convert(123.45, "USD", rates); got != 123.45 {
		t.Errorf("USD conversion = %v, want identity", got)
	}
	if got := Convert(100, "PHP", rates); got != 100*0.017 {
		t.Errorf("PHP conversion = %v, want %v", got, 100*0.017)
	}
	// Unknown currencies convert 1:1 rather than blocking the calculation.
	if got := Convert(50, "XYZ", rates); got != 50 {
		t.Errorf("unknown currency conversion = %v, want 50", got)
	}
}

func TestFetchRates_Success(t *testing.T) {
	srv := geminiTextServer(t, `{"CNY": 0.15, "INR": 0.013, "PHP": 0.018}`)
	defer srv.Close()

	rates, degraded := FetchRates(context.Background(), newTestAIClient(srv))
	if degraded {
		t.Fatal("expected live rates, got degraded flag")
	}
	want := RateSet{"USD": 1, "CNY": 0.15, "INR": 0.013, "PHP": 0.018}
	if !reflect.DeepEqual(rates, want) {
		t.Errorf("rates = %v, want %v", rates, want)
	}
}

func TestFetchRates_ProviderErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rates, degraded := FetchRates(context.Background(), newTestAIClient(srv))
	if !degraded {
		t.Fatal("expected degraded flag on provider error")
	}
	if !reflect.DeepEqual(rates, FallbackRates()) {
		t.Errorf("rates = %v, want fallback set", rates)
	}
}

func TestFetchRates_UnparseableBodyFallsBack(t *testing.T) {
	srv := geminiTextServer(t, "sorry, I can't help with that")
	defer srv.Close()

	rates, degraded := FetchRates(context.Background(), newTestAIClient(srv))
	if !degraded {
		t.Fatal("expected degraded flag on unparseable body")
	}
	if !reflect.DeepEqual(rates, FallbackRates()) {
		t.Errorf("rates = %v, want fallback set", rates)
	}
}

func TestFetchRates_PartialResponseNeverMerged(t *testing.T) {
	// A response missing a tracked currency replaces nothing: the whole
	// fallback set is installed instead of a stale/fresh mix.
	srv := geminiTextServer(t, `{"CNY": 0.15}`)
	defer srv.Close()

	rates, degraded := FetchRates(context.Background(), newTestAIClient(srv))
	if !degraded {
		t.Fatal("expected degraded flag on partial response")
	}
	if !reflect.DeepEqual(rates, FallbackRates()) {
		t.Errorf("rates = %v, want full fallback set", rates)
	}
}

func TestFetchRates_NoAPIKeyFallsBack(t *testing.T) {
	client := &AIClient{httpClient: &http.Client{Timeout: time.Second}}
	rates, degraded := FetchRates(context.Background(), client)
	if !degraded {
		t.Fatal("expected degraded flag without API key")
	}
	if !reflect.DeepEqual(rates, FallbackRates()) {
		t.Errorf("rates = %v, want fallback set", rates)
	}
}
