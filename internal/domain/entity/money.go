package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/example/marketplace/internal/domain/error"
)

// Monetary values are carried as int64 cents everywhere inside the domain
// and converted to two-decimal strings only at the API edge.

// MaxDecimalPlaces is the maximum number of decimal places accepted in amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a decimal string and converts it to cents.
// The conversion is purely string-based so no floating point is involved:
// "10" -> 1000, "10.5" -> 1050, "10.15" -> 1015.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var digits string
	if len(parts) == 1 {
		digits = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			digits = parts[0] + "00"
		case 1:
			digits = parts[0] + parts[1] + "0"
		case 2:
			digits = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ParsePositiveAmount is ParseAmount restricted to strictly positive values
func ParsePositiveAmount(amount string) (int64, error) {
	cents, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	return cents, nil
}

// CentsToString converts cents to a decimal string with two places.
// 1015 -> "10.15", 1000 -> "10.00", -5 -> "-0.05".
func CentsToString(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	s := strconv.FormatInt(cents, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	split := len(s) - 2
	formatted := s[:split] + "." + s[split:]
	if negative {
		return "-" + formatted
	}
	return formatted
}
