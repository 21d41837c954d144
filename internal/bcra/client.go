// Package bcra queries BCRA's Central de Deudores registry and turns its
// per-endpoint payloads into a consolidated credit verdict.
package bcra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"chequero/internal/config"
)

const (
	debtPath     = "/centraldedeudores/v1.0/Deudas/"
	rejectedPath = "/centraldedeudores/v1.0/Deudas/ChequesRechazados/"
)

// Client is a thin HTTP client for the Central de Deudores endpoints.
// Identifiers are the bare 11-digit CUIT form (no dashes).
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates a Client from config.
func NewClient(cfg *config.BCRAConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL creates a Client pointing at a custom base URL (for testing).
func NewClientWithBaseURL(cfg *config.BCRAConfig, baseURL string) *Client {
	c := NewClient(cfg)
	c.baseURL = baseURL
	return c
}

// Debts fetches the current-debt report for an identifier. found is false
// when the registry has no data for it (a 404 is a valid answer, not an
// error).
func (c *Client) Debts(ctx context.Context, id string) (results *DebtResults, found bool, err error) {
	raw, found, err := c.get(ctx, debtPath+id)
	if err != nil || !found {
		return nil, false, err
	}
	var r DebtResults
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false, fmt.Errorf("decoding debt results: %w", err)
	}
	return &r, true, nil
}

// RejectedCheques fetches the rejected-instruments report for an identifier.
func (c *Client) RejectedCheques(ctx context.Context, id string) (results *RejectedResults, found bool, err error) {
	raw, found, err := c.get(ctx, rejectedPath+id)
	if err != nil || !found {
		return nil, false, err
	}
	var r RejectedResults
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false, fmt.Errorf("decoding rejected cheques results: %w", err)
	}
	return &r, true, nil
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("calling bcra API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("bcra API error (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false, fmt.Errorf("decoding envelope: %w", err)
	}
	if env.Status != 0 || len(env.Results) == 0 || string(env.Results) == "null" {
		return nil, false, nil
	}
	return env.Results, true, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
