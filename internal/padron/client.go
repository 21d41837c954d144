// Package padron looks up taxpayer denominations in AFIP's padrón A13
// registry through the afipsdk gateway. The lookup is a best-effort
// enrichment: callers treat failures as missing data.
package padron

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"chequero/internal/config"
)

const defaultTimeout = 15 * time.Second

// Client implements port.TaxRegistry against the ws_sr_padron_a13 service.
type Client struct {
	url              string
	token            string
	sign             string
	cuitRepresentada string
	environment      string
	client           *http.Client
}

// NewClient creates a padrón client from configuration.
func NewClient(cfg *config.PadronConfig) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSecs > 0 {
		timeout = time.Duration(cfg.TimeoutSecs) * time.Second
	}
	environment := cfg.Environment
	if environment == "" {
		environment = "prod"
	}
	return &Client{
		url:              cfg.URL,
		token:            cfg.Token,
		sign:             cfg.Sign,
		cuitRepresentada: cfg.CUITRepresentada,
		environment:      environment,
		client:           &http.Client{Timeout: timeout},
	}
}

// NewClientWithEndpoint creates a padrón client pointed at a custom endpoint.
// Used for testing.
func NewClientWithEndpoint(cfg *config.PadronConfig, endpoint string) *Client {
	c := NewClient(cfg)
	c.url = endpoint
	return c
}

type lookupRequest struct {
	Environment string       `json:"environment"`
	Method      string       `json:"method"`
	WSID        string       `json:"wsid"`
	Params      lookupParams `json:"params"`
}

type lookupParams struct {
	Token            string `json:"token"`
	Sign             string `json:"sign"`
	CUITRepresentada string `json:"cuitRepresentada"`
	IDPersona        string `json:"idPersona"`
}

type lookupResponse struct {
	PersonaReturn struct {
		Persona struct {
			RazonSocial string `json:"razonSocial"`
			Apellido    string `json:"apellido"`
			Nombre      string `json:"nombre"`
		} `json:"persona"`
	} `json:"personaReturn"`
}

// Denomination resolves the registered name for a bare 11-digit CUIT.
// Companies carry a razón social; natural persons carry apellido and nombre.
func (c *Client) Denomination(ctx context.Context, cuit string) (string, error) {
	payload := lookupRequest{
		Environment: c.environment,
		Method:      "getPersona",
		WSID:        "ws_sr_padron_a13",
		Params: lookupParams{
			Token:            c.token,
			Sign:             c.sign,
			CUITRepresentada: c.cuitRepresentada,
			IDPersona:        cuit,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal padron request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create padron request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("padron request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read padron response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("padron API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed lookupResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse padron response: %w", err)
	}

	persona := parsed.PersonaReturn.Persona
	if persona.RazonSocial != "" {
		return persona.RazonSocial, nil
	}
	if persona.Apellido != "" || persona.Nombre != "" {
		name := persona.Apellido
		if persona.Nombre != "" {
			if name != "" {
				name += " "
			}
			name += persona.Nombre
		}
		return name, nil
	}
	return "", fmt.Errorf("padron returned no denomination for %s", cuit)
}
