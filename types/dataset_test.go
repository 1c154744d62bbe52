package types

import (
	"testing"
	"time"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetValidate(t *testing.T) {
	testCases := []struct {
		name    string
		dataset *Dataset
		wantErr bool
	}{
		{"order schema", NewOrderDataset(Record{constants.OrderID: int64(1)}), false},
		{"no rows", NewDataset([]string{"a"}), false},
		{"nil", nil, true},
		{"no columns", NewDataset(nil), true},
		{"duplicate column", NewDataset([]string{"a", "b", "a"}), true},
		{"blank column", NewDataset([]string{""}), true},
		{"nil row", NewDataset([]string{"a"}, Record{"a": 1}, nil), true},
		{"unknown key", NewDataset([]string{"a"}, Record{"z": 1}), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dataset.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDatasetClone(t *testing.T) {
	original := NewDataset([]string{"a", "b"}, Record{"a": 1, "b": "x"})
	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Rows[0]["a"] = 2
	clone.Columns[1] = "c"
	clone.Rows = append(clone.Rows, Record{"a": 3})

	assert.Equal(t, 1, original.Rows[0]["a"])
	assert.Equal(t, "b", original.Columns[1])
	assert.Equal(t, 1, original.Len())
}

func TestDatasetColumns(t *testing.T) {
	dataset := NewDataset([]string{"a", "b"}, Record{"a": 1}, Record{"a": 2, "b": "y"})

	assert.True(t, dataset.HasColumn("a"))
	assert.False(t, dataset.HasColumn("c"))
	assert.Equal(t, []string{"c", "d"}, dataset.MissingColumns("a", "c", "b", "d"))
	assert.Empty(t, dataset.MissingColumns("a"))
	assert.Equal(t, []any{nil, "y"}, dataset.Column("b"))
}

func TestRecordIsNull(t *testing.T) {
	record := Record{"nil": nil, "empty": "", "blank": " ", "zero": int64(0)}

	assert.True(t, record.IsNull("nil"))
	assert.True(t, record.IsNull("empty"))
	assert.True(t, record.IsNull("absent"))
	assert.False(t, record.IsNull("blank"))
	assert.False(t, record.IsNull("zero"))
}

func TestStringify(t *testing.T) {
	at := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		input    any
		expected string
	}{
		{nil, ""},
		{"text", "text"},
		{int64(-5), "-5"},
		{10000.0, "10000"},
		{0.1, "0.1"},
		{at, "2023-01-01 10:00:00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Stringify(tc.input, time.DateTime))
	}
}

func TestOrderSchema(t *testing.T) {
	columns := OrderColumns()
	require.Len(t, columns, 16)
	assert.Equal(t, constants.OrderID, columns[0])
	assert.Equal(t, constants.FailureReason, columns[15])

	column, ok := LookupColumn(constants.Price)
	require.True(t, ok)
	assert.Equal(t, FLOAT64, column.Type)

	_, ok = LookupColumn("discount")
	assert.False(t, ok)
}
