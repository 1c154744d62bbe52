package types

import (
	"fmt"
	"slices"
)

// Dataset is an ordered collection of records sharing one column header.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Record `json:"rows"`
}

func NewDataset(columns []string, rows ...Record) *Dataset {
	return &Dataset{
		Columns: slices.Clone(columns),
		Rows:    rows,
	}
}

// NewOrderDataset returns an empty dataset with the order schema header.
func NewOrderDataset(rows ...Record) *Dataset {
	return NewDataset(OrderColumns(), rows...)
}

func (d *Dataset) Len() int {
	return len(d.Rows)
}

func (d *Dataset) HasColumn(name string) bool {
	return slices.Contains(d.Columns, name)
}

// MissingColumns returns the subset of names absent from the header.
func (d *Dataset) MissingColumns(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !d.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	rows := make([]Record, len(d.Rows))
	for i, row := range d.Rows {
		rows[i] = row.Clone()
	}
	return &Dataset{
		Columns: slices.Clone(d.Columns),
		Rows:    rows,
	}
}

// Column returns the values of one column across all rows.
func (d *Dataset) Column(name string) []any {
	values := make([]any, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[name]
	}
	return values
}

// Validate checks that the dataset is a well-formed table: a non-empty header
// without duplicates and no row carrying a column outside the header.
func (d *Dataset) Validate() error {
	if d == nil {
		return fmt.Errorf("dataset is nil")
	}
	if len(d.Columns) == 0 {
		return fmt.Errorf("dataset has no columns")
	}

	seen := make(map[string]struct{}, len(d.Columns))
	for _, col := range d.Columns {
		if col == "" {
			return fmt.Errorf("dataset has an empty column name")
		}
		if _, exists := seen[col]; exists {
			return fmt.Errorf("duplicate column %q", col)
		}
		seen[col] = struct{}{}
	}

	for i, row := range d.Rows {
		if row == nil {
			return fmt.Errorf("row %d is nil", i)
		}
		for key := range row {
			if _, exists := seen[key]; !exists {
				return fmt.Errorf("row %d has column %q which is not in the header", i, key)
			}
		}
	}
	return nil
}
