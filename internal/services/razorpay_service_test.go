package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"synapseBack/internal/models"
)

func newTestGateway(t *testing.T, baseURL string) *RazorpayService {
	t.Helper()
	svc, err := NewRazorpayService(RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
		BaseURL:   baseURL,
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_AcceptsOwnSignature(t *testing.T) {
	svc := newTestGateway(t, "https://api.razorpay.com")

	sig := signPayload("rzp_test_secret", "order_abc", "pay_xyz")
	ok, err := svc.VerifySignature("order_abc", "pay_xyz", sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Errorf("expected matching signature to verify")
	}
}

func TestVerifySignature_RejectsTamperedSignature(t *testing.T) {
	svc := newTestGateway(t, "https://api.razorpay.com")

	sig := signPayload("rzp_test_secret", "order_abc", "pay_xyz")
	for i := range sig {
		tampered := []byte(sig)
		if tampered[i] == '0' {
			tampered[i] = '1'
		} else {
			tampered[i] = '0'
		}
		ok, err := svc.VerifySignature("order_abc", "pay_xyz", string(tampered))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatalf("tampered signature at position %d verified", i)
		}
	}
}

func TestVerifySignature_RejectsSwappedIDs(t *testing.T) {
	svc := newTestGateway(t, "https://api.razorpay.com")

	sig := signPayload("rzp_test_secret", "order_abc", "pay_xyz")
	ok, err := svc.VerifySignature("pay_xyz", "order_abc", sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("signature verified against swapped ids")
	}
}

func TestVerifySignature_UnconfiguredGateway(t *testing.T) {
	svc, err := NewRazorpayService(RazorpayConfig{})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	_, err = svc.VerifySignature("order_abc", "pay_xyz", "sig")
	if !errors.Is(err, models.ErrGatewayUnconfigured) {
		t.Errorf("expected ErrGatewayUnconfigured, got %v", err)
	}
}

func TestCreateOrder_SendsAmountAndAuth(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotBody orderRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "order_test123",
			Amount:   gotBody.Amount,
			Currency: gotBody.Currency,
			Receipt:  gotBody.Receipt,
			Status:   "created",
		})
	}))
	defer ts.Close()

	svc := newTestGateway(t, ts.URL)

	order, err := svc.CreateOrder(context.Background(), 100000, "INR", "17-1700000000", map[string]string{"product_id": "17"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/orders" {
		t.Errorf("unexpected path: %q", gotPath)
	}
	if gotUser != "rzp_test_key" || gotPass != "rzp_test_secret" {
		t.Errorf("unexpected basic auth: %q / %q", gotUser, gotPass)
	}
	if gotBody.Amount != 100000 {
		t.Errorf("unexpected amount: %d", gotBody.Amount)
	}
	if gotBody.Currency != "INR" {
		t.Errorf("unexpected currency: %q", gotBody.Currency)
	}
	if order.ID != "order_test123" {
		t.Errorf("unexpected order id: %q", order.ID)
	}
}

func TestCreateOrder_Non2xxReturnsRazorpayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"description":"amount must be at least 100"}}`))
	}))
	defer ts.Close()

	svc := newTestGateway(t, ts.URL)

	_, err := svc.CreateOrder(context.Background(), 1, "INR", "r", nil)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	apiErr, ok := err.(*RazorpayError)
	if !ok {
		t.Fatalf("expected RazorpayError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status code: %d", apiErr.StatusCode)
	}
	if apiErr.Body == "" {
		t.Errorf("expected body to be populated")
	}
}

func TestCreateOrder_UnconfiguredGateway(t *testing.T) {
	svc, err := NewRazorpayService(RazorpayConfig{BaseURL: "https://api.razorpay.com"})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	_, err = svc.CreateOrder(context.Background(), 100, "INR", "r", nil)
	if !errors.Is(err, models.ErrGatewayUnconfigured) {
		t.Errorf("expected ErrGatewayUnconfigured, got %v", err)
	}
}

func TestCreateOrder_EmptyOrderIDIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"created"}`))
	}))
	defer ts.Close()

	svc := newTestGateway(t, ts.URL)

	_, err := svc.CreateOrder(context.Background(), 100, "INR", "r", nil)
	if err == nil {
		t.Fatalf("expected error for empty order id")
	}
}
