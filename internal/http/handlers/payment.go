package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
	"github.com/careerconnect/careerconnect-be/internal/http/respond"
	"github.com/careerconnect/careerconnect-be/internal/models/dto"
	"github.com/careerconnect/careerconnect-be/internal/payments"
)

// PaymentHandler proxies order creation to the payment provider and
// verifies completion callbacks. These endpoints keep the provider's wire
// format rather than the envelope.
type PaymentHandler struct {
	gateway payments.Gateway
}

// NewPaymentHandler constructs the handler.
func NewPaymentHandler(gateway payments.Gateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// CreateOrder forwards the request body as order options to the provider
// and echoes the created order back.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var options map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&options); err != nil {
		respond.Err(w, apperr.New(apperr.OrderCreationFailed, "Error"))
		return
	}

	order, err := h.gateway.CreateOrder(r.Context(), options)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.Raw(w, http.StatusOK, order)
}

// Validate recomputes the callback signature and confirms or rejects the
// payment. The system is a pure verifier; it holds no order state.
func (h *PaymentHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Raw(w, http.StatusBadRequest, map[string]string{"msg": "Transaction is not legit!"})
		return
	}

	if !h.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		respond.Raw(w, http.StatusBadRequest, map[string]string{"msg": "Transaction is not legit!"})
		return
	}

	respond.Raw(w, http.StatusOK, map[string]string{
		"msg":       "success",
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}
