package typeutils

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ToNumber coerces v into a numeric value. Integers and integer literals come
// back as int64, everything else numeric as float64. Null, empty, NaN and
// non-numeric input all return nil.
func ToNumber(v any) any {
	switch val := v.(type) {
	case nil, bool:
		return nil
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return cast.ToInt64(val)
	case uint, uint64:
		n, err := cast.ToUint64E(val)
		if err != nil || n > math.MaxInt64 {
			return cast.ToFloat64(val)
		}
		return int64(n)
	case float32, float64:
		f := cast.ToFloat64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case string:
		return parseNumber(val)
	default:
		f, err := cast.ToFloat64E(val)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	}
}

func parseNumber(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

// ToFloat returns the float64 form of an already coerced number.
func ToFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case int64:
		return float64(val), true
	case float64:
		return val, true
	default:
		return 0, false
	}
}

// ToTyped converts a raw CSV cell into the runtime type its schema column
// declares, keeping the raw string when it does not convert so a cleaning rule
// can decide what to do with it.
func ToTyped(raw string, numeric, integer bool) any {
	if raw == "" {
		return nil
	}
	if !numeric {
		return raw
	}

	n := parseNumber(raw)
	if n == nil {
		return raw
	}
	if integer {
		if f, ok := n.(float64); ok && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
			return int64(f)
		}
	}
	return n
}
