package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/example/marketplace/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		cases := []struct {
			input    string
			expected int64
		}{
			{"10", 1000},
			{"10.5", 1050},
			{"10.15", 1015},
			{"0.01", 1},
			{"0", 0},
			{"  25.00  ", 2500},
			{"1000000", 100000000},
		}

		for _, tc := range cases {
			cents, err := ParseAmount(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.expected, cents, "input %q", tc.input)
		}
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := ParseAmount("-10.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Empty value", func(t *testing.T) {
		_, err := ParseAmount("")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = ParseAmount("   ")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Too many decimal places", func(t *testing.T) {
		_, err := ParseAmount("10.155")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Multiple dots", func(t *testing.T) {
		_, err := ParseAmount("10.1.5")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Non numeric", func(t *testing.T) {
		_, err := ParseAmount("abc")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("Positive amount passes", func(t *testing.T) {
		cents, err := ParsePositiveAmount("12.34")
		require.NoError(t, err)
		assert.Equal(t, int64(1234), cents)
	})

	t.Run("Zero is rejected", func(t *testing.T) {
		_, err := ParsePositiveAmount("0")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestCentsToString(t *testing.T) {
	cases := []struct {
		cents    int64
		expected string
	}{
		{1015, "10.15"},
		{1000, "10.00"},
		{1, "0.01"},
		{0, "0.00"},
		{-5, "-0.05"},
		{-1234, "-12.34"},
		{100000000, "1000000.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, CentsToString(tc.cents), "cents %d", tc.cents)
	}
}

func TestAmountRoundTrip(t *testing.T) {
	// Parsing a formatted value must return the original cents
	for _, cents := range []int64{0, 1, 99, 100, 1015, 999999} {
		parsed, err := ParseAmount(CentsToString(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, parsed)
	}
}
