package common

import "fmt"

// FormatMoney renders a dollar amount in compact form: "$1.5T", "$2.3B",
// "$45.7M", or whole dollars below one million.
func FormatMoney(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.1fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatSignedPct renders a percentage with an explicit sign: "+0.85%", "-1.20%".
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatPct renders a percentage to one decimal: "12.5%".
func FormatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
