package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"millions", 2847392.50, "$2.85M"},
		{"exactly one million", 1_000_000, "$1.00M"},
		{"thousands", 1234, "$1.23K"},
		{"exactly one thousand", 1000, "$1.00K"},
		{"below one thousand", 42.5, "$42.50"},
		{"just under one thousand", 999.99, "$999.99"},
		{"zero", 0, "$0.00"},
		{"fractional", 0.7, "$0.70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}
