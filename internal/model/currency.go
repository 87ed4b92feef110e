package model

import "fmt"

// FormatCurrency renders an amount for display: millions as $X.XXM,
// thousands as $X.XXK, anything below as $X.XX
func FormatCurrency(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.2fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%.2fK", amount/1_000)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}
