package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACSigner(t *testing.T) {
	signer := NewHMACSigner("merchant-secret")

	const (
		timestamp = "1700000000000"
		nonce     = "5758f2a3c8e94b21"
		body      = `{"bizStatus":"PAY_SUCCESS","data":{"merchantTradeNo":"MKT-1-1700000000"}}`
	)

	t.Run("Signature is upper-case hex of the right width", func(t *testing.T) {
		sig := signer.Sign(timestamp, nonce, body)

		// SHA-512 HMAC is 64 bytes, 128 hex characters
		require.Len(t, sig, 128)
		assert.Equal(t, strings.ToUpper(sig), sig)
	})

	t.Run("Signing is deterministic", func(t *testing.T) {
		assert.Equal(t,
			signer.Sign(timestamp, nonce, body),
			signer.Sign(timestamp, nonce, body))
	})

	t.Run("Round trip verifies", func(t *testing.T) {
		sig := signer.Sign(timestamp, nonce, body)
		assert.True(t, signer.Verify(timestamp, nonce, body, sig))
	})

	t.Run("Verification is case-insensitive on the presented signature", func(t *testing.T) {
		sig := signer.Sign(timestamp, nonce, body)
		assert.True(t, signer.Verify(timestamp, nonce, body, strings.ToLower(sig)))
	})

	t.Run("Tampered body fails", func(t *testing.T) {
		sig := signer.Sign(timestamp, nonce, body)
		tampered := strings.Replace(body, "MKT-1-", "MKT-2-", 1)
		assert.False(t, signer.Verify(timestamp, nonce, tampered, sig))
	})

	t.Run("Tampered headers fail", func(t *testing.T) {
		sig := signer.Sign(timestamp, nonce, body)
		assert.False(t, signer.Verify("1700000000001", nonce, body, sig))
		assert.False(t, signer.Verify(timestamp, "other-nonce", body, sig))
	})

	t.Run("Different secrets never cross-verify", func(t *testing.T) {
		other := NewHMACSigner("another-secret")
		sig := signer.Sign(timestamp, nonce, body)
		assert.False(t, other.Verify(timestamp, nonce, body, sig))
	})

	t.Run("Garbage signature fails", func(t *testing.T) {
		assert.False(t, signer.Verify(timestamp, nonce, body, ""))
		assert.False(t, signer.Verify(timestamp, nonce, body, "DEADBEEF"))
	})
}
