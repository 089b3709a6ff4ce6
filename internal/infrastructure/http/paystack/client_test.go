package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afeayo2/Econmmerce/internal/config"
)

func testConfig(baseURL string) config.PaystackConfig {
	return config.PaystackConfig{
		BaseURL:        baseURL,
		SecretKey:      "sk_test_123",
		TimeoutSeconds: 5,
	}
}

func TestInitialize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// 2000.00 in major units is 200000 subunits
		assert.Equal(t, float64(200000), req["amount"])
		assert.Equal(t, "order_o1", req["reference"])

		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc",
				"access_code":       "abc",
				"reference":         "order_o1",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	auth, err := client.Initialize(context.Background(), "ada@example.com", 2000, "order_o1", "http://localhost/verify/o1")

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc", auth.AuthorizationURL)
	assert.Equal(t, "order_o1", auth.Reference)
}

func TestInitialize_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "Invalid key"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Initialize(context.Background(), "ada@example.com", 2000, "order_o1", "http://localhost/verify/o1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid key")
}

func TestInitialize_MissingSecretKey(t *testing.T) {
	cfg := testConfig("http://localhost")
	cfg.SecretKey = ""
	client := NewClient(cfg)

	_, err := client.Initialize(context.Background(), "ada@example.com", 2000, "order_o1", "cb")
	assert.Error(t, err)
}

func TestVerify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/transaction/verify/order_o1", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data":   map[string]any{"status": "success", "amount": 200000},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	v, err := client.Verify(context.Background(), "order_o1")

	require.NoError(t, err)
	assert.True(t, v.Succeeded())
	assert.NotEmpty(t, v.Raw)
}

func TestVerify_Failed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data":   map[string]any{"status": "failed"},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	v, err := client.Verify(context.Background(), "order_o1")

	require.NoError(t, err)
	assert.False(t, v.Succeeded())
}

func TestVerify_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Verify(context.Background(), "order_o1")

	assert.Error(t, err)
}
