package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a loosely typed monetary value to a float. Historical
// records store values as numbers or as strings with comma decimals; anything
// unreadable is worth 0, never an error.
func ParseAmount(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		f, err := strconv.ParseFloat(strings.ReplaceAll(fmt.Sprintf("%v", v), ",", "."), 64)
		if err != nil {
			return 0
		}
		return f
	}
}

// FormatBRL renders an amount as Brazilian currency: 1234.5 -> "R$ 1.234,50".
func FormatBRL(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
