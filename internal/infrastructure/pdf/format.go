package pdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// safeFloat collapses non-finite values to 0 so a single bad quantity or
// rate cannot poison every aggregate on the document.
func safeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// formatCurrency renders a dollar amount with thousands grouping and two
// decimals. The sign sits between the symbol and the digits ($-1,234.50).
func formatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0.00"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	if n := len(intPart); n > 3 {
		var b strings.Builder
		b.Grow(n + n/3)
		lead := n % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < n; i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if neg {
		return "$-" + intPart + frac
	}
	return "$" + intPart + frac
}

// formatQuantity drops the decimal point for whole quantities (3, not 3.0)
// and renders fractional ones with their shortest representation (2.5).
func formatQuantity(q float64) string {
	if math.IsNaN(q) || math.IsInf(q, 0) || q == 0 {
		return "0"
	}
	if q == math.Trunc(q) {
		return strconv.FormatFloat(q, 'f', 0, 64)
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// formatDate turns an ISO-8601 date or datetime into M/D/YYYY without
// leading zeros. Unparseable input is shown verbatim rather than dropped.
func formatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
		}
	}
	return raw
}

// parseDocumentTime anchors the PDF creation timestamp to the invoice's
// issue date. Unparseable or empty issue dates fall back to the epoch so
// rendering stays a pure function of its inputs.
func parseDocumentTime(issueDate string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, issueDate); err == nil {
			return t.UTC()
		}
	}
	return time.Unix(0, 0).UTC()
}

// titleCase upper-cases the first letter of every word run and lower-cases
// the rest (SERVICES -> Services).
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
