package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Marathon Valencia", "marathon-valencia"},
		{"Marathon   Valencia  2026", "marathon-valencia-2026"},
		{"Club Atlético! Madrid", "club-atltico-madrid"},
		{"--Weird -- Name--", "weird-name"},
		{"UPPER_case and (parens)", "uppercase-and-parens"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestFormatDateForFilename(t *testing.T) {
	d := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "20260301", FormatDateForFilename(d))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	assert.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	d, err = ParseDate("2026-03-01T10:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("01/03/2026")
	assert.Error(t, err)
}
