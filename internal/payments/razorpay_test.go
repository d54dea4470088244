package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAccepts(t *testing.T) {
	secret := "rzp_test_secret"
	sig := signPayment(secret, "order_123", "pay_456")

	assert.True(t, VerifySignature(secret, "order_123", "pay_456", sig))
}

func TestVerifySignatureRejectsAnyMutation(t *testing.T) {
	secret := "rzp_test_secret"
	orderID := "order_123"
	paymentID := "pay_456"
	sig := signPayment(secret, orderID, paymentID)

	assert.False(t, VerifySignature(secret, "order_124", paymentID, sig), "order id flip")
	assert.False(t, VerifySignature(secret, orderID, "pay_457", sig), "payment id flip")
	assert.False(t, VerifySignature("other_secret", orderID, paymentID, sig), "wrong secret")

	// Flipping any single hex character of the signature must fail.
	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		require.False(t, VerifySignature(secret, orderID, paymentID, string(mutated)), "signature mutation at index %d", i)
	}
}

func TestVerifySignatureRejectsEmptyAndTruncated(t *testing.T) {
	secret := "rzp_test_secret"
	sig := signPayment(secret, "order_123", "pay_456")

	assert.False(t, VerifySignature(secret, "order_123", "pay_456", ""))
	assert.False(t, VerifySignature(secret, "order_123", "pay_456", sig[:len(sig)-1]))
}

func TestVerifySignatureSeparatorIsPartOfMessage(t *testing.T) {
	secret := "rzp_test_secret"

	// The message is orderID + "|" + paymentID; shifting the boundary
	// between the two identifiers must not verify.
	sig := signPayment(secret, "order_12", "3pay_456")
	assert.False(t, VerifySignature(secret, "order_123", "pay_456", sig))
}

func TestGatewayVerifySignature(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "rzp_test_secret")
	sig := signPayment("rzp_test_secret", "order_9", "pay_9")

	assert.True(t, g.VerifySignature("order_9", "pay_9", sig))
	assert.False(t, g.VerifySignature("order_9", "pay_9", "deadbeef"))
}
