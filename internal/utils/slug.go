package utils

import (
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	disallowedRe   = regexp.MustCompile(`[^a-z0-9-]`)
	repeatedDashRe = regexp.MustCompile(`-+`)
)

// SanitizeFilename lowercases name, collapses whitespace runs into single
// hyphens, strips everything outside [a-z0-9-], collapses repeated hyphens
// and trims leading/trailing ones. Used to build deterministic export
// filenames from client names.
func SanitizeFilename(name string) string {
	s := strings.ToLower(name)
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = disallowedRe.ReplaceAllString(s, "")
	s = repeatedDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FormatDateForFilename renders a date as yyyymmdd.
func FormatDateForFilename(t time.Time) string {
	return t.Format("20060102")
}

// ParseDate accepts yyyy-mm-dd or RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
