package padron_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chequero/internal/config"
	"chequero/internal/padron"
)

func testConfig() *config.PadronConfig {
	return &config.PadronConfig{
		Token:            "tok",
		Sign:             "sig",
		CUITRepresentada: "20111111112",
		TimeoutSecs:      5,
	}
}

func TestDenomination_Company(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getPersona", req["method"])
		assert.Equal(t, "ws_sr_padron_a13", req["wsid"])

		params := req["params"].(map[string]interface{})
		assert.Equal(t, "tok", params["token"])
		assert.Equal(t, "30691637596", params["idPersona"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"personaReturn": map[string]interface{}{
				"persona": map[string]interface{}{"razonSocial": "ACME SA"},
			},
		})
	}))
	defer server.Close()

	c := padron.NewClientWithEndpoint(testConfig(), server.URL)

	name, err := c.Denomination(context.Background(), "30691637596")
	require.NoError(t, err)
	assert.Equal(t, "ACME SA", name)
}

func TestDenomination_NaturalPerson(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"personaReturn": map[string]interface{}{
				"persona": map[string]interface{}{"apellido": "PEREZ", "nombre": "JUAN"},
			},
		})
	}))
	defer server.Close()

	c := padron.NewClientWithEndpoint(testConfig(), server.URL)

	name, err := c.Denomination(context.Background(), "20123456789")
	require.NoError(t, err)
	assert.Equal(t, "PEREZ JUAN", name)
}

func TestDenomination_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"personaReturn": map[string]interface{}{}})
	}))
	defer server.Close()

	c := padron.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := c.Denomination(context.Background(), "20999999999")
	assert.Error(t, err)
}

func TestDenomination_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer server.Close()

	c := padron.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := c.Denomination(context.Background(), "30691637596")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
