package handlers_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testPaymentSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateOrder(t *testing.T) {
	h := newHarness(t)

	resp := h.postJSON(t, "/order", map[string]any{
		"amount":   50000,
		"currency": "INR",
		"receipt":  "receipt#1",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	order := decodeBody(t, resp)
	// Provider wire format, no envelope.
	assert.NotContains(t, order, "success")
	assert.Equal(t, "order_test_1", order["id"])
	assert.Equal(t, float64(50000), order["amount"])
	assert.Equal(t, "INR", order["currency"])
}

func TestCreateOrderProviderFailure(t *testing.T) {
	h := newHarness(t)
	h.gateway.failCreate = true

	resp := h.postJSON(t, "/order", map[string]any{"amount": 50000}, nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Error", decodeBody(t, resp)["message"])
}

func TestValidatePayment(t *testing.T) {
	h := newHarness(t)

	resp := h.postJSON(t, "/order/validate", map[string]string{
		"razorpay_order_id":   "order_test_1",
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  signPayment("order_test_1", "pay_test_1"),
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["msg"])
	assert.Equal(t, "order_test_1", body["orderId"])
	assert.Equal(t, "pay_test_1", body["paymentId"])
}

func TestValidatePaymentForgedSignature(t *testing.T) {
	h := newHarness(t)

	resp := h.postJSON(t, "/order/validate", map[string]string{
		"razorpay_order_id":   "order_test_1",
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  signPayment("order_test_1", "pay_other"),
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Transaction is not legit!", decodeBody(t, resp)["msg"])
}

func TestValidatePaymentMalformedBody(t *testing.T) {
	h := newHarness(t)

	req, err := http.NewRequest(http.MethodPost, h.ts.URL+"/order/validate", nil)
	require.NoError(t, err)
	resp := h.do(t, req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Transaction is not legit!", decodeBody(t, resp)["msg"])
}
