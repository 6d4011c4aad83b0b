package numparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		in       string
		fraction bool
		want     string
	}{
		{"42", false, "42"},
		{"  -7abc", false, "-7"},
		{"5.7", false, "5"},
		{"9.99", true, "9.99"},
		{".5", true, ".5"},
		{"1e3x", true, "1e3"},
		{"1e", true, "1"},
		{"abc", true, ""},
		{"-", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Prefix(tt.in, tt.fraction))
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"7", 7, true},
		{" 12 ", 12, true},
		{"3.7", 3, true},
		{"1e2", 1, true},
		{"5 units", 5, true},
		{"-4", -4, true},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Int(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloat(t *testing.T) {
	got, ok := Float("9.99 each")
	assert.True(t, ok)
	assert.Equal(t, 9.99, got)

	got, ok = Float("xx")
	assert.False(t, ok)
	assert.Zero(t, got)
}
