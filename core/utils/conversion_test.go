package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name   string
		val    any
		want   int64
		wantOK bool
	}{
		{"JSONNumber", json.Number("114"), 114, true},
		{"JSONNumberWholeFloat", json.Number("114.0"), 114, true},
		{"JSONNumberFraction", json.Number("1.5"), 0, false},
		{"Float", float64(42), 42, true},
		{"NaN", math.NaN(), 0, false},
		{"FloatAboveRange", 1e30, 0, false},
		{"FloatBelowRange", -1e30, 0, false},
		{"FloatTwoPow63", float64(1 << 63), 0, false},
		{"FloatMinInt64", float64(math.MinInt64), math.MinInt64, true},
		{"JSONNumberAboveRange", json.Number("1e30"), 0, false},
		{"String", " 7 ", 7, true},
		{"BadString", "seven", 0, false},
		{"Nil", nil, 0, false},
		{"Bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt64(tt.val)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToFloat(t *testing.T) {
	t.Run("Number", func(t *testing.T) {
		got := ToFloat(json.Number("12.5"))
		require.NotNil(t, got)
		assert.Equal(t, 12.5, *got)
	})

	t.Run("NilIsNil", func(t *testing.T) {
		assert.Nil(t, ToFloat(nil))
	})

	t.Run("NaNIsNil", func(t *testing.T) {
		assert.Nil(t, ToFloat(math.NaN()))
		assert.Nil(t, ToFloat("NaN"))
	})

	t.Run("Zero", func(t *testing.T) {
		got := ToFloat(json.Number("0"))
		require.NotNil(t, got)
		assert.Equal(t, 0.0, *got)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 111.11, Round2(1000/(10*0.9)))
	assert.Equal(t, 1.01, Round2(1.005000001))
	assert.Equal(t, -38.89, Round2(111.11-150))
}
