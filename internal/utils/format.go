// Package utils holds small shared helpers: filesystem checks, TOML
// parsing with section-level recovery, and CLI number formatting.
package utils

import "fmt"

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return result
}
