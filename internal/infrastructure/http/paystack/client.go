package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/afeayo2/Econmmerce/internal/config"
)

// Client talks to the Paystack transaction API. Amounts are sent in the
// smallest currency subunit (kobo), i.e. major unit times 100.
type Client struct {
	httpClient *http.Client
	cfg        config.PaystackConfig
}

func NewClient(cfg config.PaystackConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// Authorization is the payment session returned by initialize.
type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Verification is the outcome of a verify call. Status is "success" when
// the payment completed; Raw keeps the provider payload for auditing.
type Verification struct {
	Status string
	Raw    json.RawMessage
}

func (v Verification) Succeeded() bool {
	return v.Status == "success"
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url"`
}

type initializeResponse struct {
	Status  bool          `json:"status"`
	Message string        `json:"message"`
	Data    Authorization `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status string `json:"status"`
	} `json:"data"`
}

// Initialize opens a payment session for the given amount (major units).
func (c *Client) Initialize(ctx context.Context, email string, amount float64, reference, callbackURL string) (*Authorization, error) {
	if c.cfg.SecretKey == "" {
		return nil, fmt.Errorf("paystack secret key is empty")
	}

	payload := initializeRequest{
		Email:       email,
		Amount:      int64(amount * 100),
		Reference:   reference,
		CallbackURL: callbackURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode initialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call paystack initialize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paystack initialize status %d", resp.StatusCode)
	}

	var out initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}
	if !out.Status {
		return nil, fmt.Errorf("paystack initialize rejected: %s", out.Message)
	}

	return &out.Data, nil
}

// Verify confirms out-of-band whether a previously initialized payment
// completed.
func (c *Client) Verify(ctx context.Context, reference string) (*Verification, error) {
	if c.cfg.SecretKey == "" {
		return nil, fmt.Errorf("paystack secret key is empty")
	}
	if reference == "" {
		return nil, fmt.Errorf("reference is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/transaction/verify/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call paystack verify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paystack verify status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read verify response: %w", err)
	}

	var out verifyResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}

	return &Verification{
		Status: out.Data.Status,
		Raw:    json.RawMessage(raw),
	}, nil
}
