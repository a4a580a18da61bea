package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Client pulls the latest rate-to-base quotes from the external rate
// provider. The provider quotes every currency against the base currency the
// ledger converts through.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	baseCurrency string
}

func NewClient(baseURL, apiKey, baseCurrency string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:      baseURL,
		apiKey:       apiKey,
		baseCurrency: baseCurrency,
	}
}

type ratesResponse struct {
	Success bool              `json:"success"`
	Base    string            `json:"base"`
	Rates   map[string]string `json:"rates"`
	Error   string            `json:"error,omitempty"`
}

func (c *Client) FetchRates(ctx context.Context) (map[domain.CurrencyCode]decimal.Decimal, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse rate source url: %w", err)
	}
	query := endpoint.Query()
	query.Set("base", c.baseCurrency)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build rate source request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read rate source response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate source returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload ratesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode rate source response: %w", err)
	}
	if !payload.Success {
		return nil, fmt.Errorf("rate source reported failure: %s", payload.Error)
	}

	rates := make(map[domain.CurrencyCode]decimal.Decimal, len(payload.Rates))
	for code, raw := range payload.Rates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parse rate for %s: %w", code, err)
		}
		rates[domain.CurrencyCode(code)] = rate
	}

	return rates, nil
}
