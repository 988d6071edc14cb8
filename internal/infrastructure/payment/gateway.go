package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"officetools/internal/application/order/paymentgateway"
	"officetools/internal/shared/config"
	"officetools/internal/shared/logger"
)

const signatureParam = "signature"

var _ paymentgateway.PaymentGateway = (*GatewayClient)(nil)

type GatewayClient struct {
	cfg         config.PaymentConfig
	callbackURL string
	apiClient   *http.Client
	logger      logger.Interface
}

func NewGatewayClient(cfg config.PaymentConfig, baseURL string, log logger.Interface) *GatewayClient {
	var apiClient *http.Client
	if cfg.ClientID != "" && cfg.TokenURL != "" {
		creds := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		// the returned client caches the token until it expires
		base := &http.Client{Timeout: 15 * time.Second}
		apiClient = creds.Client(context.WithValue(context.Background(), oauth2.HTTPClient, base))
		apiClient.Timeout = 15 * time.Second
	}

	return &GatewayClient{
		cfg:         cfg,
		callbackURL: cfg.CallbackURL(baseURL),
		apiClient:   apiClient,
		logger:      log.With("component", "payment.gateway"),
	}
}

// BuildRedirectURL returns the hosted payment page URL with signed query params.
func (c *GatewayClient) BuildRedirectURL(req paymentgateway.RedirectRequest) (string, error) {
	if c.cfg.GatewayURL == "" {
		return "", fmt.Errorf("payment gateway url is not configured")
	}

	base, err := url.Parse(c.cfg.GatewayURL)
	if err != nil {
		return "", fmt.Errorf("invalid payment gateway url: %w", err)
	}

	params := url.Values{}
	params.Set("merchant_id", c.cfg.MerchantID)
	params.Set("invoice_id", req.InvoiceID)
	params.Set("amount", req.Amount.StringFixed(2))
	params.Set("currency", req.Currency)
	params.Set("email", req.Email)
	params.Set("return_url", c.cfg.ReturnURL)
	params.Set("callback_url", c.callbackURL)
	params.Set(signatureParam, c.Sign(params))

	base.RawQuery = params.Encode()
	return base.String(), nil
}

// Sign computes the hex HMAC-SHA256 of the form-encoded params (sorted by
// key, values escaped), excluding the signature itself.
func (c *GatewayClient) Sign(params url.Values) string {
	canonical := make(url.Values, len(params))
	for k, v := range params {
		if k == signatureParam {
			continue
		}
		canonical[k] = v
	}

	mac := hmac.New(sha256.New, []byte(c.cfg.CallbackSecret))
	mac.Write([]byte(canonical.Encode()))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the signature param of a callback payload.
func (c *GatewayClient) VerifySignature(params url.Values) bool {
	if c.cfg.CallbackSecret == "" {
		c.logger.Warnw("callback secret not configured, rejecting callback")
		return false
	}
	got := params.Get(signatureParam)
	if got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(c.Sign(params))) == 1
}

// QueryStatus asks the gateway API for the current state of an invoice.
func (c *GatewayClient) QueryStatus(ctx context.Context, invoiceID string) (*paymentgateway.StatusResult, error) {
	if c.apiClient == nil || c.cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("payment gateway api is not configured")
	}

	endpoint, err := url.JoinPath(c.cfg.APIBaseURL, "v1", "payments", url.PathEscape(invoiceID))
	if err != nil {
		return nil, fmt.Errorf("invalid gateway api url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.apiClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway status request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read gateway response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway status error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var result paymentgateway.StatusResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}
	result.Status = strings.ToLower(result.Status)

	c.logger.Infow("gateway status fetched", "invoice_id", invoiceID, "status", result.Status)
	return &result, nil
}
