package cleaner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/writers/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 7, 9, 14, 3, 27, 0, time.Local)

func fixedClock() time.Time {
	return fixedNow
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "cleaned")

	pipeline, err := NewPipeline(partialDataset(), WithClock(fixedClock))
	require.NoError(t, err)

	result := pipeline.Canonical(true).Save(dir)
	require.True(t, result.OK, result.Message)
	assert.NoError(t, result.Err)
	assert.Equal(t, filepath.Join(dir, "cleaned_20240709_140327.csv"), result.Path)
	assert.Equal(t, 3, result.Rows)
	assert.Contains(t, result.Message, result.Path)

	saved, err := csv.Read(result.Path)
	require.NoError(t, err)
	assert.Equal(t, partialDataset().Columns, saved.Columns)
	require.Equal(t, 3, saved.Len())
	assert.Equal(t, constants.UnknownCustomer, saved.Rows[1][constants.CustomerName])
	assert.Equal(t, int64(10000), saved.Rows[1][constants.Price])
	assert.Equal(t, "2023-01-02 11:00:00", saved.Rows[1][constants.Datetime])
}

func TestSaveSameSecondOverwrites(t *testing.T) {
	dir := t.TempDir()

	first, err := NewPipeline(partialDataset(), WithClock(fixedClock))
	require.NoError(t, err)
	require.True(t, first.Save(dir).OK)

	second, err := NewPipeline(partialDataset(), WithClock(fixedClock))
	require.NoError(t, err)
	result := second.DropInvalidPaymentType().Save(dir)
	require.True(t, result.OK)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	saved, err := csv.Read(result.Path)
	require.NoError(t, err)
	assert.Equal(t, 3, saved.Len())
}

func TestSaveFailures(t *testing.T) {
	t.Run("directory is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "occupied")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		pipeline, err := NewPipeline(partialDataset())
		require.NoError(t, err)

		result := pipeline.Save(file)
		assert.False(t, result.OK)
		assert.Error(t, result.Err)
		assert.Empty(t, result.Path)
		assert.NotEmpty(t, result.Message)
	})

	t.Run("stopped pipeline", func(t *testing.T) {
		dir := t.TempDir()
		dataset := types.NewDataset([]string{constants.OrderID}, types.Record{constants.OrderID: int64(1)})

		pipeline, err := NewPipeline(dataset)
		require.NoError(t, err)

		result := pipeline.FixNegativeQty().Save(dir)
		assert.False(t, result.OK)
		assert.ErrorIs(t, result.Err, ErrMissingColumn)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unknown format", func(t *testing.T) {
		pipeline, err := NewPipeline(partialDataset(), WithFormat("xlsx"))
		require.NoError(t, err)

		result := pipeline.Save(t.TempDir())
		assert.False(t, result.OK)
		assert.Contains(t, result.Message, "xlsx")
	})

	t.Run("parquet needs the order schema", func(t *testing.T) {
		pipeline, err := NewPipeline(partialDataset(), WithFormat(types.Parquet))
		require.NoError(t, err)

		result := pipeline.Save(t.TempDir())
		assert.False(t, result.OK)
	})
}

func TestSaveParquet(t *testing.T) {
	dir := t.TempDir()
	dataset := types.NewOrderDataset(
		validRow(nil),
		validRow(types.Record{constants.OrderID: int64(2), constants.Qty: int64(-4)}),
	)

	pipeline, err := NewPipeline(dataset, WithFormat(types.Parquet), WithClock(fixedClock))
	require.NoError(t, err)

	result := pipeline.Canonical(true).Save(dir)
	require.True(t, result.OK, result.Message)
	assert.Equal(t, filepath.Join(dir, "cleaned_20240709_140327.parquet"), result.Path)

	info, err := os.Stat(result.Path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
