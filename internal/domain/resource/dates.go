package resource

import (
	"strings"
	"time"
)

// EndDateFormat is the literal date layout used by import payloads and the
// spreadsheet export.
const EndDateFormat = "02/01/2006"

// ParseEndDate accepts DD/MM/YYYY first (the import format), then
// YYYY-MM-DD and RFC3339. Empty input and parse failures both return nil;
// a bad date on an import row degrades to "no end date" rather than
// failing the batch.
func ParseEndDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{EndDateFormat, "2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}
	return nil
}

// FormatEndDate renders a date as DD/MM/YYYY, or "" for nil.
func FormatEndDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(EndDateFormat)
}
