package types

import (
	"fmt"
	"strconv"
	"time"
)

type DataType string

const (
	NULL      DataType = "null"
	INT64     DataType = "integer"
	FLOAT64   DataType = "number"
	STRING    DataType = "string"
	TIMESTAMP DataType = "timestamp"
	UNKNOWN   DataType = "unknown"
)

// Record is one row of a Dataset. A nil value is the null marker.
type Record map[string]any

// Clone copies the record. Values are scalars (string, int64, float64,
// time.Time) so a shallow copy of the map is a deep copy of the row.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsNull reports whether the column holds the null marker. Missing keys and
// empty strings count as null, matching how empty CSV cells are loaded.
func (r Record) IsNull(column string) bool {
	v, ok := r[column]
	if !ok || v == nil {
		return true
	}
	s, isString := v.(string)
	return isString && s == ""
}

// KindOf returns the DataType a runtime value currently carries.
func KindOf(v any) DataType {
	switch v.(type) {
	case nil:
		return NULL
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return INT64
	case float32, float64:
		return FLOAT64
	case string:
		return STRING
	case time.Time:
		return TIMESTAMP
	default:
		return UNKNOWN
	}
}

// Stringify renders a value the way it is written to CSV.
func Stringify(v any, timeLayout string) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(timeLayout)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
