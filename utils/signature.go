package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyPaymentSignature checks the redirect-callback signature: the
// hex HMAC-SHA256 of "orderID|paymentID" under the gateway key secret.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	return verifyHMAC([]byte(orderID+"|"+paymentID), signature, secret)
}

// VerifyWebhookSignature checks the webhook signature: the hex
// HMAC-SHA256 over the raw request body under the webhook secret,
// which is configured separately from the gateway key secret.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	return verifyHMAC(body, signature, secret)
}

func verifyHMAC(message []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(message)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
