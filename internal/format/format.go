package format

import (
	"strconv"
	"time"
)

// FmtDate formats a publication date as DD.MM.YYYY. Zero times format as "".
func FmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

// ISODate formats t for machine-readable attributes (datetime, JSON-LD).
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// Plural picks singular or plural by count, e.g. Plural(1, "article", "articles").
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
