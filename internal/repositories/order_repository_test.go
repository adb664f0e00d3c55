package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"synapseBack/internal/models"
)

func testOrder() models.MerchOrder {
	return models.MerchOrder{
		UserID: "42",
		Items: []models.OrderItem{{
			ProductID: 17,
			Name:      "Synapse Tee",
			Size:      "M",
			Quantity:  2,
			UnitPrice: 500,
		}},
		Total:             1000,
		Status:            "done",
		PaymentMethod:     "razorpay",
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		OrderDate:         time.Now(),
	}
}

func TestCreateOrder_InsertsHeaderAndItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()
	repo := OrderRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO merch_orders").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO merch_order_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	id, err := repo.CreateOrder(context.Background(), testOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("order id %d, want 42", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateOrder_DuplicatePaymentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()
	repo := OrderRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO merch_orders").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'pay_xyz' for key 'razorpay_payment_id'"})
	mock.ExpectRollback()

	_, err = repo.CreateOrder(context.Background(), testOrder())
	if !errors.Is(err, models.ErrDuplicatePayment) {
		t.Errorf("expected ErrDuplicatePayment, got %v", err)
	}
}

func TestCreateOrder_ItemInsertFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()
	repo := OrderRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO merch_orders").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO merch_order_items").
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	_, err = repo.CreateOrder(context.Background(), testOrder())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetOrderIDByPaymentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()
	repo := OrderRepository{DB: db}

	mock.ExpectQuery("SELECT id FROM merch_orders WHERE razorpay_payment_id").
		WithArgs("pay_xyz").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, err := repo.GetOrderIDByPaymentID(context.Background(), "pay_xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("order id %d, want 42", id)
	}
}

func TestGetOrderIDByPaymentID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()
	repo := OrderRepository{DB: db}

	mock.ExpectQuery("SELECT id FROM merch_orders WHERE razorpay_payment_id").
		WithArgs("pay_missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetOrderIDByPaymentID(context.Background(), "pay_missing")
	if !errors.Is(err, models.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestGetOrderByID_LoadsItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()
	repo := OrderRepository{DB: db}

	orderDate := time.Now()
	mock.ExpectQuery("SELECT id, user_id, total, status").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "total", "status", "payment_method",
			"razorpay_order_id", "razorpay_payment_id", "order_date",
		}).AddRow(42, "42", 1000.0, "done", "razorpay", "order_abc", "pay_xyz", orderDate))
	mock.ExpectQuery("SELECT product_id, name, size, quantity, unit_price").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{
			"product_id", "name", "size", "quantity", "unit_price",
		}).AddRow(17, "Synapse Tee", "M", 2, 500.0))

	order, err := repo.GetOrderByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.RazorpayPaymentID != "pay_xyz" {
		t.Errorf("payment id %q", order.RazorpayPaymentID)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Errorf("unexpected items: %+v", order.Items)
	}
}
