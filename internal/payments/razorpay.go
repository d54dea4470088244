// Package payments adapts the Razorpay order API and verifies completion
// callbacks. The service holds no order state of its own; it creates orders
// with the provider and checks signatures on the way back.
package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
)

// Gateway creates provider-side orders and verifies payment signatures.
type Gateway interface {
	CreateOrder(ctx context.Context, options map[string]interface{}) (map[string]interface{}, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// RazorpayGateway implements Gateway against the Razorpay API.
type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

// NewRazorpayGateway constructs the gateway with configured credentials.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		secret: keySecret,
	}
}

// CreateOrder proxies the options straight to the provider.
func (g *RazorpayGateway) CreateOrder(_ context.Context, options map[string]interface{}) (map[string]interface{}, error) {
	order, err := g.client.Order.Create(options, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.OrderCreationFailed, "Error", err)
	}
	if order == nil {
		return nil, apperr.New(apperr.OrderCreationFailed, "Error")
	}
	return order, nil
}

// VerifySignature recomputes HMAC-SHA256(secret, orderID + "|" + paymentID)
// and compares it with the supplied hex signature in constant time.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.secret, orderID, paymentID, signature)
}

// VerifySignature checks a payment callback signature against the shared
// secret. The comparison is constant-time to avoid a timing side channel.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
