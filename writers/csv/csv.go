package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils"
	"github.com/datazip-inc/rogue-records/utils/typeutils"
	"github.com/datazip-inc/rogue-records/writers"
)

// CSV reads and writes comma separated files with a header row.
type CSV struct{}

func (c *CSV) Extension() string {
	return constants.CSVFileExt
}

// Write writes the dataset to path, creating parent directories as needed.
func (c *CSV) Write(path string, dataset *types.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %s", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %s", path, err)
	}

	writeErr := WriteTo(file, dataset)
	return utils.ErrExecSequential(
		func() error { return writeErr },
		utils.ErrExecFormat("failed to close file: %s", file.Close),
	)
}

// WriteTo encodes the dataset as CSV. Nulls become empty cells and timestamps
// are written with the DATETIME layout.
func WriteTo(w io.Writer, dataset *types.Dataset) error {
	out := stdcsv.NewWriter(w)
	if err := out.Write(dataset.Columns); err != nil {
		return fmt.Errorf("failed to write header: %s", err)
	}

	line := make([]string, len(dataset.Columns))
	for i, row := range dataset.Rows {
		for j, col := range dataset.Columns {
			line[j] = types.Stringify(row[col], constants.DatetimeLayout)
		}
		if err := out.Write(line); err != nil {
			return fmt.Errorf("failed to write row %d: %s", i, err)
		}
	}

	out.Flush()
	return out.Error()
}

// Read loads a CSV file into a dataset. See ReadFrom.
func Read(path string) (*types.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %s", path, err)
	}
	defer file.Close()

	dataset, err := ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %s", path, err)
	}
	return dataset, nil
}

// ReadFrom decodes CSV with a header row. Empty cells load as null. Cells of
// integer and number columns of the order schema load as int64/float64 when
// they parse, and stay raw strings otherwise; every other cell is a string.
func ReadFrom(r io.Reader) (*types.Dataset, error) {
	in := stdcsv.NewReader(r)

	header, err := in.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, err
	}

	kinds := make([]types.DataType, len(header))
	for i, name := range header {
		kinds[i] = types.STRING
		if col, ok := types.LookupColumn(name); ok {
			kinds[i] = col.Type
		}
	}

	dataset := types.NewDataset(header)
	for {
		line, err := in.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(types.Record, len(header))
		for i, cell := range line {
			numeric := kinds[i] == types.INT64 || kinds[i] == types.FLOAT64
			row[header[i]] = typeutils.ToTyped(cell, numeric, kinds[i] == types.INT64)
		}
		dataset.Rows = append(dataset.Rows, row)
	}

	return dataset, nil
}

func init() {
	writers.RegisteredWriters[types.CSV] = func() writers.Writer {
		return new(CSV)
	}
}
