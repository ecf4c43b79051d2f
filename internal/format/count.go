package format

import (
	"fmt"
	"strconv"
)

// FormatCount renders a count in compact form: values below 1000 are
// printed verbatim, "1.0K" for thousands, "1.5M" for millions. One
// decimal place, standard float rounding. Callers map missing or
// negative values to 0 before calling; the function never clamps.
func FormatCount(n int) string {
	switch {
	case n < 1000:
		return strconv.Itoa(n)
	case n < 1_000_000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	}
}
