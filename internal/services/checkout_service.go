package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"synapseBack/internal/models"
	"synapseBack/internal/repositories"
)

const orderCurrency = "INR"

// CheckoutService drives the merch payment handshake: it prices and
// opens gateway orders, and after the client pays it verifies the
// gateway signature and writes the purchase ledger row.
type CheckoutService struct {
	Products  *ProductService
	Gateway   *RazorpayService
	OrderRepo *repositories.OrderRepository
	ErrorLog  *log.Logger
}

// VerifyPaymentResult is what the verify endpoint reports. Warning is
// set when the payment is real but the ledger write failed; the caller
// must still answer with success.
type VerifyPaymentResult struct {
	OrderID   int
	PaymentID string
	Warning   string
}

func (s *CheckoutService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.CreateOrderResponse, error) {
	if req.ProductID == 0 || req.Size == "" || req.Quantity <= 0 {
		return models.CreateOrderResponse{}, models.ErrInvalidOrderRequest
	}

	name, price, err := s.Products.ResolvePrice(ctx, req.ProductID)
	if err != nil {
		return models.CreateOrderResponse{}, err
	}

	// Integer paise throughout: round the unit price once, then
	// multiply. Never price*quantity*100 in floats.
	unitPaise := int64(math.Round(price * 100))
	amount := unitPaise * int64(req.Quantity)

	userID := req.UserID
	if userID == "" {
		userID = "guest"
	}
	receipt := fmt.Sprintf("%d-%d", req.ProductID, time.Now().Unix())
	notes := map[string]string{
		"product_id":   strconv.Itoa(req.ProductID),
		"product_name": name,
		"size":         req.Size,
		"quantity":     strconv.Itoa(req.Quantity),
		"user_id":      userID,
	}

	order, err := s.Gateway.CreateOrder(ctx, amount, orderCurrency, receipt, notes)
	if err != nil {
		return models.CreateOrderResponse{}, err
	}

	return models.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   amount,
		Currency: orderCurrency,
		Product: models.OrderProduct{
			ID:    req.ProductID,
			Name:  name,
			Price: price,
		},
		Quantity: req.Quantity,
		Size:     req.Size,
	}, nil
}

func (s *CheckoutService) VerifyAndRecord(ctx context.Context, req models.VerifyPaymentRequest) (VerifyPaymentResult, error) {
	ok, err := s.Gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		return VerifyPaymentResult{}, err
	}
	if !ok {
		return VerifyPaymentResult{}, models.ErrInvalidSignature
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	total := float64(req.Amount) / 100

	// The display name and unit price are cosmetic at this point; a
	// failed lookup must not lose a verified payment, so fall back to
	// values derived from the confirmed amount.
	name, unitPrice, err := s.Products.ResolvePrice(ctx, req.ProductID)
	if err != nil {
		name = fmt.Sprintf("Item %d", req.ProductID)
		unitPrice = total / float64(quantity)
	}

	userID := req.UserID
	if userID == "" {
		userID = "guest"
	}

	order := models.MerchOrder{
		UserID: userID,
		Items: []models.OrderItem{{
			ProductID: req.ProductID,
			Name:      name,
			Size:      req.Size,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		}},
		Total:             total,
		Status:            "done",
		PaymentMethod:     "razorpay",
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		OrderDate:         time.Now(),
	}

	orderID, err := s.OrderRepo.CreateOrder(ctx, order)
	if err != nil {
		if err == models.ErrDuplicatePayment {
			// Double submit of the same confirmation: answer with the
			// row the first submit wrote.
			if existingID, lookupErr := s.OrderRepo.GetOrderIDByPaymentID(ctx, req.RazorpayPaymentID); lookupErr == nil {
				return VerifyPaymentResult{OrderID: existingID, PaymentID: req.RazorpayPaymentID}, nil
			}
		}
		// Money has moved; never report failure here. Hand back the
		// payment id so an operator can reconcile the ledger by hand.
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("payment %s verified but order insert failed: %v", req.RazorpayPaymentID, err)
		}
		return VerifyPaymentResult{
			PaymentID: req.RazorpayPaymentID,
			Warning:   "payment verified but the order could not be recorded; contact support with this payment id",
		}, nil
	}

	return VerifyPaymentResult{OrderID: orderID, PaymentID: req.RazorpayPaymentID}, nil
}
