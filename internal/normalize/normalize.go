// Package normalize holds the pure field normalizers applied to raw draft
// values before a record is assembled. Every function is total: malformed
// input resolves to a safe default, never an error.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigit   = regexp.MustCompile(`\D`)
	amountJunk = regexp.MustCompile(`[^0-9.,]`)
)

// CUIT canonicalizes a raw CUIT value to the NN-NNNNNNNN-N form. A value
// whose digits do not count exactly 11 is echoed back unchanged (so callers
// can still render what was read); an absent value becomes the empty string.
// Canonical input passes through untouched.
func CUIT(raw interface{}) string {
	s := String(raw)
	if s == "" {
		return ""
	}
	digits := nonDigit.ReplaceAllString(s, "")
	if len(digits) != 11 {
		return s
	}
	return digits[:2] + "-" + digits[2:10] + "-" + digits[10:]
}

// CUITDigits returns the bare 11-digit form of a CUIT, or the empty string
// when the input does not canonicalize. This is the key used for registry
// lookups: no lookup is ever issued for an empty result.
func CUITDigits(cuit string) string {
	digits := nonDigit.ReplaceAllString(cuit, "")
	if len(digits) != 11 {
		return ""
	}
	return digits
}

// Amount parses a raw amount value into a non-negative float. Textual input
// may carry currency symbols and mixed locale punctuation: when both "." and
// "," appear, the right-most one is the decimal separator; a lone "," is
// decimal. Unparseable input resolves to 0.
func Amount(raw interface{}) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		if v < 0 {
			return 0
		}
		return v
	case float32:
		return Amount(float64(v))
	case int:
		return Amount(float64(v))
	case int64:
		return Amount(float64(v))
	case string:
		return parseAmountString(v)
	default:
		return parseAmountString(fmt.Sprint(v))
	}
}

func parseAmountString(s string) float64 {
	clean := amountJunk.ReplaceAllString(s, "")
	if clean == "" {
		return 0
	}

	lastDot := strings.LastIndex(clean, ".")
	lastComma := strings.LastIndex(clean, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			// 1.234,56 -> comma is decimal
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			// 1,234.56 -> dot is decimal
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case lastComma >= 0:
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// String renders a raw value as a trimmed string; absent values become "".
// Numeric values are stringified without exponent notation so identifiers
// extracted as JSON numbers survive intact.
func String(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strings.TrimSpace(strconv.FormatFloat(v, 'f', -1, 64))
	case float32:
		return strings.TrimSpace(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
