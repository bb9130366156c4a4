package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	paymentport "github.com/example/marketplace/internal/domain/port/payment"
)

// HMACSigner signs and verifies provider payloads with HMAC-SHA512 over
// "timestamp\nnonce\nbody\n", hex-encoded and upper-cased.
type HMACSigner struct {
	secret []byte
}

// NewHMACSigner creates a signer keyed by the merchant secret
func NewHMACSigner(secret string) *HMACSigner {
	return &HMACSigner{secret: []byte(secret)}
}

var _ paymentport.Signer = (*HMACSigner)(nil)

// Sign computes the signature for the given pieces
func (s *HMACSigner) Sign(timestamp, nonce, body string) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(timestamp + "\n" + nonce + "\n" + body + "\n"))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// Verify checks a presented signature in constant time
func (s *HMACSigner) Verify(timestamp, nonce, body, signature string) bool {
	expected := s.Sign(timestamp, nonce, body)
	return hmac.Equal([]byte(expected), []byte(strings.ToUpper(signature)))
}
