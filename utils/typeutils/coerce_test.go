package typeutils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNumber(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected any
	}{
		{"nil", nil, nil},
		{"bool", true, nil},
		{"int", 42, int64(42)},
		{"int32", int32(-7), int64(-7)},
		{"uint64 overflow", uint64(math.MaxUint64), float64(math.MaxUint64)},
		{"float", 12.5, 12.5},
		{"nan", math.NaN(), nil},
		{"inf", math.Inf(1), nil},
		{"integer string", "999999", int64(999999)},
		{"padded integer string", "  15 ", int64(15)},
		{"negative string", "-5", int64(-5)},
		{"decimal string", "10.25", 10.25},
		{"exponent string", "1e3", 1000.0},
		{"empty string", "", nil},
		{"text", "abc", nil},
		{"nan string", "NaN", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToNumber(tc.input))
		})
	}
}

func TestToFloat(t *testing.T) {
	f, ok := ToFloat(int64(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = ToFloat("3")
	assert.False(t, ok)

	_, ok = ToFloat(nil)
	assert.False(t, ok)
}

func TestToTyped(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		numeric  bool
		integer  bool
		expected any
	}{
		{"empty is null", "", true, true, nil},
		{"text column", "42", false, false, "42"},
		{"integer", "42", true, true, int64(42)},
		{"integral float in integer column", "42.0", true, true, int64(42)},
		{"fraction in integer column", "42.5", true, true, 42.5},
		{"number column", "19.99", true, false, 19.99},
		{"garbage stays raw", "n/a", true, true, "n/a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToTyped(tc.raw, tc.numeric, tc.integer))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	expected := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	for _, input := range []string{
		"2023-01-01 10:00:00",
		"2023-01-01T10:00:00Z",
		"2023-01-01T10:00:00",
		"2023/01/01 10:00:00",
		"01/01/2023 10:00:00",
	} {
		t.Run(input, func(t *testing.T) {
			parsed, err := ParseTimestamp(input)
			require.NoError(t, err)
			assert.True(t, expected.Equal(parsed))
		})
	}

	for _, input := range []string{"", "  ", "not-a-date", "2023-13-45 99:00:00"} {
		_, err := ParseTimestamp(input)
		assert.Error(t, err, input)
	}
}

func TestToTimestamp(t *testing.T) {
	at := time.Date(2022, 6, 1, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, at, ToTimestamp(at))
	assert.Equal(t, at, ToTimestamp(&at))
	assert.Nil(t, ToTimestamp((*time.Time)(nil)))
	assert.Equal(t, at, ToTimestamp("2022-06-01 08:30:00"))
	assert.Nil(t, ToTimestamp("yesterday"))
	assert.Nil(t, ToTimestamp(nil))
	assert.Nil(t, ToTimestamp(1654072200))
}
