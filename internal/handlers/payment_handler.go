package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"synapseBack/internal/models"
	"synapseBack/internal/services"
)

type PaymentHandler struct {
	Service *services.CheckoutService
}

// CreateOrder opens a gateway order for a merch purchase. The client
// takes the returned orderId into the Razorpay checkout widget.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.CreateOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidOrderRequest):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrProductNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrProductPriceMissing):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrGatewayUnconfigured):
			http.Error(w, "Payment gateway is not configured", http.StatusInternalServerError)
		default:
			var gatewayErr *services.RazorpayError
			if errors.As(err, &gatewayErr) {
				http.Error(w, "Failed to create payment order", http.StatusInternalServerError)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// VerifyPayment checks the checkout callback signature and records the
// purchase. Once the signature checks out the response is always a
// success; a ledger failure degrades to a warning with the payment id.
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVerifyError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		writeVerifyError(w, http.StatusBadRequest, "Missing payment verification fields")
		return
	}

	result, err := h.Service.VerifyAndRecord(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidSignature):
			writeVerifyError(w, http.StatusBadRequest, "Invalid signature")
		case errors.Is(err, models.ErrGatewayUnconfigured):
			writeVerifyError(w, http.StatusInternalServerError, "Payment gateway is not configured")
		default:
			writeVerifyError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Warning != "" {
		json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"warning":    result.Warning,
			"payment_id": result.PaymentID,
		})
		return
	}
	json.NewEncoder(w).Encode(map[string]any{
		"success":  true,
		"order_id": result.OrderID,
		"message":  "Payment verified and order recorded",
	})
}

func writeVerifyError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   msg,
	})
}
