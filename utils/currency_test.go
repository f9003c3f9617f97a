package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1300, "$13.00"},
		{123456, "$1,234.56"},
		{1234550, "$12,345.50"},
		{100000000, "$1,000,000.00"},
		{-2500, "-$25.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.minor))
	}
}
