package cleaner

import (
	"testing"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	dataset := partialDataset()
	snapshot := dataset.Clone()

	summary := Describe(dataset)
	assert.Equal(t, snapshot, dataset)
	assert.Equal(t, 4, summary.Rows)
	assert.Equal(t, 4, summary.Head.Len())
	require.Len(t, summary.Columns, len(dataset.Columns))

	byName := map[string]ColumnSummary{}
	for _, column := range summary.Columns {
		byName[column.Name] = column
	}

	price := byName[constants.Price]
	assert.Equal(t, types.INT64, price.Kind)
	require.NotNil(t, price.Stats)
	assert.Equal(t, 4, price.Stats.Count)
	assert.InDelta(t, 4125.0, price.Stats.Mean, 1e-9)
	assert.Equal(t, -200.0, price.Stats.Min)
	assert.Equal(t, 15000.0, price.Stats.Max)
	assert.Greater(t, price.Stats.Std, 0.0)

	name := byName[constants.CustomerName]
	assert.Equal(t, types.STRING, name.Kind)
	assert.Equal(t, 3, name.NonNull)
	assert.Nil(t, name.Stats)
}

func TestDescribeKinds(t *testing.T) {
	testCases := []struct {
		name     string
		values   []any
		expected types.DataType
	}{
		{"all null", []any{nil, ""}, types.NULL},
		{"integers", []any{int64(1), int64(2)}, types.INT64},
		{"ints and floats widen", []any{int64(1), 2.5}, types.FLOAT64},
		{"numbers and strings", []any{int64(1), "x"}, MixedKind},
		{"strings with nulls", []any{"a", nil}, types.STRING},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dataset := types.NewDataset([]string{"col"})
			for _, v := range tc.values {
				dataset.Rows = append(dataset.Rows, types.Record{"col": v})
			}
			summary := Describe(dataset)
			require.Len(t, summary.Columns, 1)
			assert.Equal(t, tc.expected, summary.Columns[0].Kind)
		})
	}
}

func TestDescribeSingleValue(t *testing.T) {
	dataset := types.NewDataset([]string{"col"}, types.Record{"col": 3.5})
	stats := Describe(dataset).Columns[0].Stats
	require.NotNil(t, stats)
	assert.Equal(t, 3.5, stats.Mean)
	assert.Equal(t, 0.0, stats.Std)
}

func TestDescribeHeadLimit(t *testing.T) {
	dataset := types.NewOrderDataset()
	for i := 0; i < 8; i++ {
		dataset.Rows = append(dataset.Rows, validRow(types.Record{constants.OrderID: int64(i)}))
	}

	summary := Describe(dataset)
	assert.Equal(t, 8, summary.Rows)
	assert.Equal(t, headRows, summary.Head.Len())

	summary.Head.Rows[0][constants.CustomerName] = "changed"
	assert.Equal(t, "Neo", dataset.Rows[0][constants.CustomerName])
}

func TestInspectDoesNotChangeData(t *testing.T) {
	pipeline, err := NewPipeline(partialDataset())
	require.NoError(t, err)

	before := pipeline.CleanedData()
	pipeline.Inspect()
	require.NoError(t, pipeline.Err())
	assert.Equal(t, before, pipeline.CleanedData())
	assert.Empty(t, pipeline.Reports())
}
