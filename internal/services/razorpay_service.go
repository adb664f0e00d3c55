package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"synapseBack/internal/models"
)

type RazorpayConfig struct {
	KeyID     string
	KeySecret string

	// API base, prod: https://api.razorpay.com
	BaseURL string

	Client *http.Client
	Logger *slog.Logger
}

// RazorpayService talks to the Razorpay Orders API and verifies
// checkout callback signatures. Credentials may be absent at startup;
// every call checks them and reports models.ErrGatewayUnconfigured so
// the handler can answer with a configuration error instead of a
// panic.
type RazorpayService struct {
	keyID     string
	keySecret string
	baseURL   *url.URL

	httpClient *http.Client
	logger     *slog.Logger
}

func NewRazorpayService(cfg RazorpayConfig) (*RazorpayService, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	base := cfg.BaseURL
	if base == "" {
		base = "https://api.razorpay.com"
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}

	return &RazorpayService{
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		baseURL:    u,
		httpClient: client,
		logger:     logger,
	}, nil
}

func (s *RazorpayService) configured() bool {
	return strings.TrimSpace(s.keyID) != "" && strings.TrimSpace(s.keySecret) != ""
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder opens a gateway order for the given amount in paise.
// The receipt string is the caller's uniqueness handle; notes carry
// purchase context so operators can trace the order in the dashboard.
func (s *RazorpayService) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*GatewayOrder, error) {
	if !s.configured() {
		return nil, models.ErrGatewayUnconfigured
	}
	logger := s.logger.With("op", "CreateOrder")

	endpoint := *s.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/orders")

	body, _ := json.Marshal(orderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(s.keyID, s.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("orders request: %w", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	logger.Debug("orders raw", "status", resp.Status, "body", trimBody(string(b), 2000))

	if resp.StatusCode != http.StatusOK {
		return nil, &RazorpayError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(b)}
	}

	var out GatewayOrder
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if strings.TrimSpace(out.ID) == "" {
		return nil, fmt.Errorf("orders: empty order id")
	}

	return &out, nil
}

// VerifySignature recomputes HMAC-SHA256 over "orderID|paymentID" with
// the key secret and compares the hex digest against the supplied
// signature in constant time.
func (s *RazorpayService) VerifySignature(orderID, paymentID, signature string) (bool, error) {
	if !s.configured() {
		return false, models.ErrGatewayUnconfigured
	}

	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

func trimBody(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

type RazorpayError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RazorpayError) Error() string {
	if e == nil {
		return "<nil>"
	}
	bt := strings.TrimSpace(e.Body)
	if bt == "" {
		return fmt.Sprintf("razorpay error: %s", e.Status)
	}
	return fmt.Sprintf("razorpay error: %s: %s", e.Status, bt)
}
