package models

import (
	"time"
)

// MerchOrder is the durable outcome of a verified payment. Rows are
// append-only: nothing in the service updates or deletes them.
type MerchOrder struct {
	ID                int         `json:"id"`
	UserID            string      `json:"user_id"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total"`
	Status            string      `json:"status"` // done, pending
	PaymentMethod     string      `json:"payment_method"`
	RazorpayOrderID   string      `json:"razorpay_order_id"`
	RazorpayPaymentID string      `json:"razorpay_payment_id"`
	OrderDate         time.Time   `json:"order_date"`
}

type OrderItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateOrderRequest struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UserID    string `json:"user_id,omitempty"`
}

type OrderProduct struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type CreateOrderResponse struct {
	OrderID  string       `json:"orderId"`
	Amount   int64        `json:"amount"`
	Currency string       `json:"currency"`
	Product  OrderProduct `json:"product"`
	Quantity int          `json:"quantity"`
	Size     string       `json:"size"`
}

type VerifyPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	ProductID         int    `json:"product_id"`
	Size              string `json:"size"`
	Quantity          int    `json:"quantity"`
	UserID            string `json:"user_id,omitempty"`
	Amount            int64  `json:"amount"`
}
