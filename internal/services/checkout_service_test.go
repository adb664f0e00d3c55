package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"synapseBack/internal/models"
	"synapseBack/internal/repositories"
)

func expectAvailableProduct(mock sqlmock.Sqlmock, id int, name string, price float64) {
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "price", "image_url", "sizes", "is_available", "created_at", "updated_at",
	}).AddRow(id, name, "", price, "", "S,M,L,XL", true, time.Now(), nil)
	mock.ExpectQuery("SELECT id, name, description, price").
		WithArgs(id).
		WillReturnRows(rows)
}

func newCheckoutService(t *testing.T, gatewayURL string) (*CheckoutService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := &CheckoutService{
		Products:  &ProductService{ProductRepo: &repositories.ProductRepository{DB: db}},
		Gateway:   newTestGateway(t, gatewayURL),
		OrderRepo: &repositories.OrderRepository{DB: db},
	}
	return svc, mock
}

func TestCreateOrder_AmountIsUnitPaiseTimesQuantity(t *testing.T) {
	var gotAmount int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req orderRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotAmount = req.Amount
		_ = json.NewEncoder(w).Encode(GatewayOrder{ID: "order_1", Amount: req.Amount, Currency: req.Currency, Status: "created"})
	}))
	defer ts.Close()

	svc, mock := newCheckoutService(t, ts.URL)
	expectAvailableProduct(mock, 17, "Synapse Tee", 500)

	resp, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{
		ProductID: 17, Size: "M", Quantity: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAmount != 100000 {
		t.Errorf("gateway got amount %d, want 100000", gotAmount)
	}
	if resp.Amount != 100000 {
		t.Errorf("response amount %d, want 100000", resp.Amount)
	}
	if resp.Currency != "INR" {
		t.Errorf("unexpected currency: %q", resp.Currency)
	}
	if resp.OrderID != "order_1" {
		t.Errorf("unexpected order id: %q", resp.OrderID)
	}
	if resp.Product.Name != "Synapse Tee" || resp.Product.Price != 500 {
		t.Errorf("unexpected product echo: %+v", resp.Product)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateOrder_RoundsUnitPriceOnce(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req orderRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(GatewayOrder{ID: "order_2", Amount: req.Amount, Currency: req.Currency, Status: "created"})
	}))
	defer ts.Close()

	// 349.99 in float64 is slightly below 34999 paise; the single
	// rounding step has to land on exactly 34999 per unit.
	for _, qty := range []int{1, 3, 7, 1000} {
		svc, mock := newCheckoutService(t, ts.URL)
		expectAvailableProduct(mock, 5, "Hoodie", 349.99)

		resp, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{
			ProductID: 5, Size: "L", Quantity: qty,
		})
		if err != nil {
			t.Fatalf("qty %d: unexpected error: %v", qty, err)
		}
		want := int64(34999) * int64(qty)
		if resp.Amount != want {
			t.Errorf("qty %d: amount %d, want %d", qty, resp.Amount, want)
		}
	}
}

func TestCreateOrder_InvalidInputNeverCallsGateway(t *testing.T) {
	var hits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer ts.Close()

	svc, _ := newCheckoutService(t, ts.URL)

	cases := []models.CreateOrderRequest{
		{Size: "M", Quantity: 1},
		{ProductID: 17, Quantity: 1},
		{ProductID: 17, Size: "M"},
		{ProductID: 17, Size: "M", Quantity: -2},
	}
	for _, req := range cases {
		if _, err := svc.CreateOrder(context.Background(), req); !errors.Is(err, models.ErrInvalidOrderRequest) {
			t.Errorf("request %+v: expected ErrInvalidOrderRequest, got %v", req, err)
		}
	}
	if hits != 0 {
		t.Errorf("gateway was called %d times for invalid input", hits)
	}
}

func TestCreateOrder_PricelessProduct(t *testing.T) {
	var hits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer ts.Close()

	svc, mock := newCheckoutService(t, ts.URL)
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "price", "image_url", "sizes", "is_available", "created_at", "updated_at",
	}).AddRow(9, "Mystery Box", "", nil, "", "", true, time.Now(), nil)
	mock.ExpectQuery("SELECT id, name, description, price").WithArgs(9).WillReturnRows(rows)

	_, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{ProductID: 9, Size: "M", Quantity: 1})
	if !errors.Is(err, models.ErrProductPriceMissing) {
		t.Errorf("expected ErrProductPriceMissing, got %v", err)
	}
	if hits != 0 {
		t.Errorf("gateway was called %d times for priceless product", hits)
	}
}

func TestVerifyAndRecord_BadSignatureSkipsLedger(t *testing.T) {
	svc, mock := newCheckoutService(t, "https://api.razorpay.com")

	_, err := svc.VerifyAndRecord(context.Background(), models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "deadbeef",
		ProductID:         17,
		Quantity:          1,
		Amount:            50000,
	})
	if !errors.Is(err, models.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	// No queries and no inserts may have run.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database traffic: %v", err)
	}
}

func TestVerifyAndRecord_RecordsLedgerRow(t *testing.T) {
	svc, mock := newCheckoutService(t, "https://api.razorpay.com")
	expectAvailableProduct(mock, 17, "Synapse Tee", 500)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO merch_orders").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO merch_order_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	sig := signPayload("rzp_test_secret", "order_abc", "pay_xyz")
	result, err := svc.VerifyAndRecord(context.Background(), models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: sig,
		ProductID:         17,
		Size:              "M",
		Quantity:          2,
		Amount:            100000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OrderID != 42 {
		t.Errorf("unexpected order id: %d", result.OrderID)
	}
	if result.Warning != "" {
		t.Errorf("unexpected warning: %q", result.Warning)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestVerifyAndRecord_LedgerFailureDegradesToWarning(t *testing.T) {
	svc, mock := newCheckoutService(t, "https://api.razorpay.com")
	expectAvailableProduct(mock, 17, "Synapse Tee", 500)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO merch_orders").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	sig := signPayload("rzp_test_secret", "order_abc", "pay_xyz")
	result, err := svc.VerifyAndRecord(context.Background(), models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: sig,
		ProductID:         17,
		Size:              "M",
		Quantity:          1,
		Amount:            50000,
	})
	if err != nil {
		t.Fatalf("verified payment must not surface an error, got %v", err)
	}
	if result.Warning == "" {
		t.Errorf("expected a warning for the unrecorded payment")
	}
	if result.PaymentID != "pay_xyz" {
		t.Errorf("warning must carry the payment id, got %q", result.PaymentID)
	}
}

func TestVerifyAndRecord_DuplicatePaymentIsIdempotent(t *testing.T) {
	svc, mock := newCheckoutService(t, "https://api.razorpay.com")
	expectAvailableProduct(mock, 17, "Synapse Tee", 500)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO merch_orders").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'pay_xyz' for key 'razorpay_payment_id'"})
	mock.ExpectRollback()
	mock.ExpectQuery("SELECT id FROM merch_orders WHERE razorpay_payment_id").
		WithArgs("pay_xyz").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	sig := signPayload("rzp_test_secret", "order_abc", "pay_xyz")
	result, err := svc.VerifyAndRecord(context.Background(), models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: sig,
		ProductID:         17,
		Size:              "M",
		Quantity:          1,
		Amount:            50000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OrderID != 42 {
		t.Errorf("expected the existing order id 42, got %d", result.OrderID)
	}
	if result.Warning != "" {
		t.Errorf("duplicate submit must not warn, got %q", result.Warning)
	}
}
