package cleaner

import (
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/datazip-inc/rogue-records/utils/typeutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const headRows = 5

// MixedKind marks a column whose non-null values carry more than one type.
const MixedKind types.DataType = "mixed"

type NumericStats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type ColumnSummary struct {
	Name    string         `json:"name"`
	Kind    types.DataType `json:"kind"`
	NonNull int            `json:"non_null"`
	Stats   *NumericStats  `json:"stats,omitempty"`
}

// Summary is an exploratory overview of a dataset.
type Summary struct {
	Rows    int             `json:"rows"`
	Columns []ColumnSummary `json:"columns"`
	Head    *types.Dataset  `json:"head"`
}

// Describe builds a Summary of dataset without modifying it.
func Describe(dataset *types.Dataset) *Summary {
	summary := &Summary{
		Rows: dataset.Len(),
		Head: types.NewDataset(dataset.Columns),
	}

	for i := 0; i < headRows && i < dataset.Len(); i++ {
		summary.Head.Rows = append(summary.Head.Rows, dataset.Rows[i].Clone())
	}

	for _, name := range dataset.Columns {
		summary.Columns = append(summary.Columns, describeColumn(name, dataset))
	}
	return summary
}

func describeColumn(name string, dataset *types.Dataset) ColumnSummary {
	column := ColumnSummary{Name: name, Kind: types.NULL}

	var numbers []float64
	for _, row := range dataset.Rows {
		if row.IsNull(name) {
			continue
		}
		column.NonNull++

		kind := types.KindOf(row[name])
		switch {
		case column.Kind == types.NULL:
			column.Kind = kind
		case column.Kind == kind, column.Kind == MixedKind:
		case isNumeric(column.Kind) && isNumeric(kind):
			column.Kind = types.FLOAT64
		default:
			column.Kind = MixedKind
		}

		if f, ok := typeutils.ToFloat(typeutils.ToNumber(row[name])); ok && kind != types.STRING {
			numbers = append(numbers, f)
		}
	}

	if isNumeric(column.Kind) && len(numbers) > 0 {
		column.Stats = describeNumbers(numbers)
	}
	return column
}

func isNumeric(kind types.DataType) bool {
	return kind == types.INT64 || kind == types.FLOAT64
}

func describeNumbers(values []float64) *NumericStats {
	stats := &NumericStats{
		Count: len(values),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
	}
	if len(values) < 2 {
		stats.Mean = values[0]
		return stats
	}
	stats.Mean, stats.Std = stat.MeanStdDev(values, nil)
	return stats
}

// Inspect computes and logs a Summary of the current dataset. It never
// modifies the dataset and never stops the chain.
func (p *Pipeline) Inspect() *Pipeline {
	if p.err != nil {
		return p
	}

	p.summary = Describe(p.dataset)
	logger.Infof("dataset has %d rows and %d columns", p.summary.Rows, len(p.summary.Columns))
	for _, column := range p.summary.Columns {
		if column.Stats != nil {
			logger.Debugf("column %s (%s): non-null=%d mean=%.2f std=%.2f min=%.2f max=%.2f",
				column.Name, column.Kind, column.NonNull, column.Stats.Mean, column.Stats.Std, column.Stats.Min, column.Stats.Max)
			continue
		}
		logger.Debugf("column %s (%s): non-null=%d", column.Name, column.Kind, column.NonNull)
	}
	return p
}
