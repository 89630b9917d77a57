package utils

import (
	"strings"
	"time"
)

// NormalizePhone strips everything except digits and a leading plus. Empty
// input normalizes to empty.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2/1/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02-01-2006",
	time.RFC3339,
}

// ParseFlexibleDate tries the spreadsheet date formats seen in practice.
// Unparseable cells come back nil; import never fails on a bad date.
func ParseFlexibleDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
