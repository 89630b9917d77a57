package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+233 24 123 4567", "+233241234567"},
		{"024-123-4567", "0241234567"},
		{"(024) 123 4567", "0241234567"},
		{"24+123", "24123"}, // plus only survives at the front
		{"", ""},
		{"abc", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestParseFlexibleDate(t *testing.T) {
	got := ParseFlexibleDate("2001-02-14")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2001, 2, 14, 0, 0, 0, 0, time.UTC), *got)

	got = ParseFlexibleDate("14/02/2001")
	require.NotNil(t, got)
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 14, got.Day())

	got = ParseFlexibleDate("January 5, 1999")
	require.NotNil(t, got)
	assert.Equal(t, 1999, got.Year())

	assert.Nil(t, ParseFlexibleDate(""))
	assert.Nil(t, ParseFlexibleDate("not a date"))
}
