package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the hosted-checkout API of the payment processor. The
// processor redirects the payer to the success or cancel URL after completion;
// this service never sees card data.
type Client struct {
	apiURL     string
	secretKey  string
	successURL string
	cancelURL  string
	httpClient *http.Client
}

type Config struct {
	APIURL     string
	SecretKey  string
	SuccessURL string
	CancelURL  string
}

func NewClient(cfg Config) *Client {
	return &Client{
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		secretKey:  cfg.SecretKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// IsConfigured checks if the payment client has valid credentials.
func (c *Client) IsConfigured() bool {
	return c.apiURL != "" && c.secretKey != ""
}

// CreateCheckoutSession creates a one-off card checkout session for the given
// plan and returns the processor's session id. The caller redirects the client
// to the processor using that id.
func (c *Client) CreateCheckoutSession(ctx context.Context, plan string, amountMinor int64) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", "aed")
	form.Set("line_items[0][price_data][product_data][name]", fmt.Sprintf("%s Registration Plan", capitalize(plan)))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(amountMinor, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment: create checkout session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("payment: checkout API returned status %d", resp.StatusCode)
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("payment: decode checkout response: %w", err)
	}
	if body.ID == "" {
		return "", fmt.Errorf("payment: checkout response missing session id")
	}
	return body.ID, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
