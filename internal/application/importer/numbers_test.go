package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"١٬٤٢٠٬٠٠٠", 1420000, true},
		{"1٬420٬000", 1420000, true},
		{"1,420,000", 1420000, true},
		{"٦٫٠٠", 6, true},
		{"۳۵۰٫۵", 350.5, true},
		{" 950000 ", 950000, true},
		{"", 0, false},
		{"   ", 0, false},
		{"غير متوفر", 0, false},
		{"-", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseNumber(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, tc.in)
	}
}

func TestParseInt_Truncates(t *testing.T) {
	got, ok := ParseInt("٣٫٩")
	assert.True(t, ok)
	assert.Equal(t, 3, got)

	got, ok = ParseInt("12")
	assert.True(t, ok)
	assert.Equal(t, 12, got)

	_, ok = ParseInt("")
	assert.False(t, ok)
}

func TestParsePercent(t *testing.T) {
	got, ok := ParsePercent("45%")
	assert.True(t, ok)
	assert.Equal(t, 45.0, got)

	got, ok = ParsePercent("٤٥٫٥٪")
	assert.True(t, ok)
	assert.Equal(t, 45.5, got)

	_, ok = ParsePercent("%")
	assert.False(t, ok)
}
