package observability

import "unicode"

const defaultStringLimit = 256

// sanitizeString drops control characters and caps length so request data cannot forge log lines.
func sanitizeString(value string, limit int) string {
	if limit <= 0 {
		limit = defaultStringLimit
	}

	cleaned := make([]rune, 0, len(value))
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		cleaned = append(cleaned, r)
	}
	if len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return string(cleaned)
}

// SanitizeRoute cleans a route pattern or path for use as a log field or metric label.
func SanitizeRoute(route string) string {
	if route == "" {
		return "/"
	}
	return sanitizeString(route, 180)
}

// SanitizeMethod cleans an HTTP method.
func SanitizeMethod(method string) string {
	return sanitizeString(method, 10)
}

// SanitizeTags cleans tag values taken from a query string before logging them.
func SanitizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, sanitizeString(t, 64))
	}
	return out
}
