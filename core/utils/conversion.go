package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToInt64 converts a decoded JSON scalar to int64 using explicit type switching.
// It handles json.Number, floats, integers and numeric strings. ok is false for
// nil, non-numeric values and floats with a fractional part.
func ToInt64(val any) (int64, bool) {
	switch v := val.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// int64 holds [-2^63, 2^63)
	if f >= 1<<63 || f < -(1<<63) {
		return 0, false
	}
	return int64(f), true
}

// ToFloat converts a decoded JSON scalar to a float64 pointer.
// nil, NaN, infinities and unparsable values all yield nil, never zero.
func ToFloat(val any) *float64 {
	var f float64
	switch v := val.(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ToString converts a decoded JSON scalar to string.
// ok is false when val is nil or not a string/number.
func ToString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}
