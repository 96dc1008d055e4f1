package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for _, s := range []string{"Asset", "Liability", "Equity", "Revenue", "Expense", "Non-Cash"} {
		c, ok := ParseCategory(s)
		assert.True(t, ok, s)
		assert.Equal(t, Category(s), c)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	for _, s := range []string{"", "asset", "NonCash", "Contra-Asset"} {
		_, ok := ParseCategory(s)
		assert.False(t, ok, "%q should not parse", s)
	}
}
