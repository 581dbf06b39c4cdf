package util //nolint:revive // package name util hosts shared formatting helpers for CLI output

import (
	"fmt"
	"time"
)

// FormatSince formats the elapsed time since t for display, handling edge
// cases. Returns "—" for zero times and "now" for sub-second ages.
func FormatSince(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "—"
	}
	d := now.Sub(t)
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// FormatActive renders an account active flag for tabular output.
func FormatActive(active bool) string {
	if active {
		return "active"
	}
	return "disabled"
}
