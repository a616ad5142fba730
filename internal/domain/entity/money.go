package entity

import (
	"strconv"
	"strings"
)

// formatAmount renders a monetary value as a comma-grouped, two-decimal
// string right-justified to at least width characters. Rounding is
// round-to-nearest, ties to even, over the exact binary value
// (strconv.FormatFloat), so identical inputs always produce identical bytes
// regardless of locale. The field grows when the value does not fit: numeric
// columns never truncate.
func formatAmount(v float64, width int) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	grouped := groupThousands(intPart)
	s = grouped + "." + frac
	if neg {
		s = "-" + s
	}

	if pad := width - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + (n-1)/3)
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// truncate hard-cuts s to at most max characters, no ellipsis.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
