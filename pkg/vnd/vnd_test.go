package vnd

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{1500, "1.500 ₫"},
		{1500000, "1.500.000 ₫"},
		{100000000, "100.000.000 ₫"},
		{-750000, "-750.000 ₫"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Format(decimal.NewFromInt(c.amount)))
	}
}

func TestFormatRoundsFractions(t *testing.T) {
	assert.Equal(t, "1.001 ₫", Format(decimal.NewFromFloat(1000.5)))
}
