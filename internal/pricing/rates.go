package pricing

import (
	"context"       // Timeout on the collaborator call
	"encoding/json" // Rate response decoding
	"fmt"           // URL assembly
	"net/http"      // Rate collaborator transport
	"time"          // Timeout and cache TTL

	"ordering_system/internal/utils" // In-memory TTL cache

	"github.com/sirupsen/logrus" // Degradation logging
)

// RateClient fetches conversion rates from the exchange-rate
// collaborator. Lookups are bounded by a timeout and any failure
// degrades to rate 1: pricing prefers availability over accuracy,
// so a dead collaborator never fails a checkout.
type RateClient struct {
	baseURL  string
	apiKey   string
	baseCcy  string
	cacheTTL time.Duration
	cache    *utils.Cache
	client   *http.Client
}

// rateResponse mirrors the collaborator's payload shape
type rateResponse struct {
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// NewRateClient returns a client for the given collaborator endpoint
func NewRateClient(baseURL, apiKey, baseCcy string, timeout, cacheTTL time.Duration) *RateClient {
	return &RateClient{
		baseURL:  baseURL,
		apiKey:   apiKey,
		baseCcy:  baseCcy,
		cacheTTL: cacheTTL,
		cache:    utils.NewCache(),
		client:   &http.Client{Timeout: timeout},
	}
}

// Rate returns the conversion rate from the base currency to target.
// live is false when the default rate 1 was substituted for a failed
// or malformed lookup.
func (c *RateClient) Rate(ctx context.Context, target string) (rate float64, live bool) {
	if target == c.baseCcy {
		return 1, true
	}
	if v, ok := c.cache.GetCache("rate:" + target); ok {
		return v.(float64), true
	}
	r, err := c.fetch(ctx, target)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"currency": target,
			"error":    err.Error(),
		}).Warn("Exchange rate unavailable, using default rate 1")
		return 1, false
	}
	c.cache.SetCache("rate:"+target, r, c.cacheTTL)
	return r, true
}

// fetch performs one collaborator lookup
func (c *RateClient) fetch(ctx context.Context, target string) (float64, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, c.baseCcy)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	rate, ok := body.ConversionRates[target]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("no usable rate for %s", target)
	}
	return rate, nil
}
