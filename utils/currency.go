package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount in minor units as a dollar string with
// thousands separators. Example: 1234550 -> "$12,345.50".
func FormatCurrency(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	units := minor / 100
	cents := minor % 100

	digits := fmt.Sprintf("%d", units)
	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	return fmt.Sprintf("%s$%s.%02d", sign, strings.Join(groups, ","), cents)
}
