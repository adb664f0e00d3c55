package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"synapseBack/internal/repositories"
	"synapseBack/internal/services"
)

const testKeySecret = "rzp_test_secret"

func newPaymentHandler(t *testing.T, gatewayURL string) (*PaymentHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gateway, err := services.NewRazorpayService(services.RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: testKeySecret,
		BaseURL:   gatewayURL,
	})
	if err != nil {
		t.Fatalf("failed to create gateway: %v", err)
	}

	return &PaymentHandler{Service: &services.CheckoutService{
		Products:  &services.ProductService{ProductRepo: &repositories.ProductRepository{DB: db}},
		Gateway:   gateway,
		OrderRepo: &repositories.OrderRepository{DB: db},
	}}, mock
}

func expectProductRow(mock sqlmock.Sqlmock, id int, name string, price float64) {
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "price", "image_url", "sizes", "is_available", "created_at", "updated_at",
	}).AddRow(id, name, "", price, "", "S,M,L", true, time.Now(), nil)
	mock.ExpectQuery("SELECT id, name, description, price").WithArgs(id).WillReturnRows(rows)
}

func checkoutSignature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestCreateOrderHandler_MissingFields(t *testing.T) {
	h, _ := newPaymentHandler(t, "https://api.razorpay.com")

	rr := postJSON(t, h.CreateOrder, map[string]any{"size": "M", "quantity": 1})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rr.Code)
	}
}

func TestCreateOrderHandler_ProductNotFound(t *testing.T) {
	h, mock := newPaymentHandler(t, "https://api.razorpay.com")
	mock.ExpectQuery("SELECT id, name, description, price").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rr := postJSON(t, h.CreateOrder, map[string]any{"product_id": 99, "size": "M", "quantity": 1})
	if rr.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rr.Code)
	}
}

func TestCreateOrderHandler_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(services.GatewayOrder{ID: "order_live1", Amount: 100000, Currency: "INR", Status: "created"})
	}))
	defer ts.Close()

	h, mock := newPaymentHandler(t, ts.URL)
	expectProductRow(mock, 17, "Synapse Tee", 500)

	rr := postJSON(t, h.CreateOrder, map[string]any{"product_id": 17, "size": "M", "quantity": 2})
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200; body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		OrderID  string `json:"orderId"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Product  struct {
			ID    int     `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"product"`
		Quantity int    `json:"quantity"`
		Size     string `json:"size"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.OrderID != "order_live1" {
		t.Errorf("orderId %q", resp.OrderID)
	}
	if resp.Amount != 100000 {
		t.Errorf("amount %d, want 100000", resp.Amount)
	}
	if resp.Currency != "INR" {
		t.Errorf("currency %q", resp.Currency)
	}
	if resp.Product.ID != 17 || resp.Product.Name != "Synapse Tee" || resp.Product.Price != 500 {
		t.Errorf("product echo %+v", resp.Product)
	}
	if resp.Quantity != 2 || resp.Size != "M" {
		t.Errorf("quantity/size echo: %d %q", resp.Quantity, resp.Size)
	}
}

func TestCreateOrderHandler_GatewayFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"description":"bad key"}}`))
	}))
	defer ts.Close()

	h, mock := newPaymentHandler(t, ts.URL)
	expectProductRow(mock, 17, "Synapse Tee", 500)

	rr := postJSON(t, h.CreateOrder, map[string]any{"product_id": 17, "size": "M", "quantity": 1})
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status %d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "bad key") {
		t.Errorf("upstream body must not leak to the client: %s", rr.Body.String())
	}
}

func TestVerifyPaymentHandler_MissingFields(t *testing.T) {
	h, _ := newPaymentHandler(t, "https://api.razorpay.com")

	rr := postJSON(t, h.VerifyPayment, map[string]any{"razorpay_order_id": "order_abc"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rr.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if success, _ := resp["success"].(bool); success {
		t.Errorf("success must be false")
	}
}

func TestVerifyPaymentHandler_InvalidSignature(t *testing.T) {
	h, mock := newPaymentHandler(t, "https://api.razorpay.com")

	rr := postJSON(t, h.VerifyPayment, map[string]any{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  "deadbeef",
		"product_id":          17,
		"quantity":            1,
		"amount":              50000,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if success, _ := resp["success"].(bool); success {
		t.Errorf("success must be false")
	}
	if resp["error"] != "Invalid signature" {
		t.Errorf("error %q, want %q", resp["error"], "Invalid signature")
	}
	// A rejected signature may not touch the ledger.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database traffic: %v", err)
	}
}

func TestVerifyPaymentHandler_Success(t *testing.T) {
	h, mock := newPaymentHandler(t, "https://api.razorpay.com")
	expectProductRow(mock, 17, "Synapse Tee", 500)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO merch_orders").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO merch_order_items").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rr := postJSON(t, h.VerifyPayment, map[string]any{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  checkoutSignature("order_abc", "pay_xyz"),
		"product_id":          17,
		"size":                "M",
		"quantity":            2,
		"amount":              100000,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200; body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		OrderID int    `json:"order_id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Errorf("success must be true")
	}
	if resp.OrderID != 7 {
		t.Errorf("order_id %d, want 7", resp.OrderID)
	}
	if resp.Message == "" {
		t.Errorf("expected a confirmation message")
	}
}

func TestVerifyPaymentHandler_LedgerFailureStillSucceeds(t *testing.T) {
	h, mock := newPaymentHandler(t, "https://api.razorpay.com")
	expectProductRow(mock, 17, "Synapse Tee", 500)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO merch_orders").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	rr := postJSON(t, h.VerifyPayment, map[string]any{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  checkoutSignature("order_abc", "pay_xyz"),
		"product_id":          17,
		"size":                "M",
		"quantity":            1,
		"amount":              50000,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200; body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success   bool   `json:"success"`
		Warning   string `json:"warning"`
		PaymentID string `json:"payment_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Errorf("verified payment must report success")
	}
	if resp.Warning == "" {
		t.Errorf("expected a warning")
	}
	if resp.PaymentID != "pay_xyz" {
		t.Errorf("payment_id %q, want pay_xyz", resp.PaymentID)
	}
}
