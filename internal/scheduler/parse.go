package scheduler

import (
	"strconv"
	"strings"
	"time"
)

// leadingInt extracts the leading numeric token of a reps string: "10" -> 10,
// "8-12" -> 8. Strings without a leading digit ("Al fallo", "AMRAP") fail.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseWeight extracts the leading decimal token of a weight string, with a
// comma accepted as decimal separator: "50" -> 50, "62,5" -> 62.5,
// "80kg" -> 80. Strings without a leading digit ("BW", "abc") fail.
func ParseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	dot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if (c == '.' || c == ',') && !dot && end > 0 {
			dot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	token := strings.ReplaceAll(s[:end], ",", ".")
	w, err := strconv.ParseFloat(strings.TrimSuffix(token, "."), 64)
	if err != nil {
		return 0, false
	}
	return w, true
}

// dateOnly truncates an instant to its calendar date in the instant's own
// location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayKey is the distinct-day bucket for a session instant.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
