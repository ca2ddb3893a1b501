package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo24Hour(t *testing.T) {
	cases := map[string]string{
		"9:00 AM":  "09:00",
		"2:30 PM":  "14:30",
		"12:00 AM": "00:00",
		"12:00 PM": "12:00",
		"11:59 pm": "23:59",
		"09:30AM":  "09:30",
		"21:30":    "21:30",
		"00:00":    "00:00",
		" 6:15 PM ": "18:15",
	}

	for input, want := range cases {
		got, err := To24Hour(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestTo24HourRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "noon", "25:00", "13:00 PM"} {
		_, err := To24Hour(input)
		assert.Error(t, err, "input %q", input)
	}
}
