package display

import (
	"strings"
	"time"

	"github.com/kamusis/certview/internal/catalog"
)

const isoDate = "2006-01-02"

// FormatDate renders an ISO YYYY-MM-DD date as DD-MM-YYYY.
//
// Input that is not a calendar date is reordered token by token when it has
// three dash-separated parts, and returned unchanged otherwise.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(isoDate, s); err == nil {
		return t.Format("02-01-2006")
	}
	parts := strings.Split(s, "-")
	if len(parts) == 3 {
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return s
}

// RecordDate is the date shown for r: its formatted date, else its year.
func RecordDate(r *catalog.Record) string {
	if r.Date != "" {
		return FormatDate(r.Date)
	}
	return r.Year
}
