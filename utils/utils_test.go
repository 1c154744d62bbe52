package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampedFileName(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	assert.Equal(t, "cleaned_20240102_030405.csv", TimestampedFileName("cleaned", "csv", at))
	assert.Equal(t, "rogue_20240102_030405.parquet", TimestampedFileName("rogue", ".parquet", at))
}

func TestParseFileTimestamp(t *testing.T) {
	testCases := []struct {
		name     string
		file     string
		expected bool
	}{
		{"valid", "rogue_20231231_235959.csv", true},
		{"other prefix", "cleaned_20231231_235959.csv", false},
		{"other extension", "rogue_20231231_235959.parquet", false},
		{"no timestamp", "rogue.csv", false},
		{"bad date", "rogue_20231331_235959.csv", false},
		{"suffix after extension", "rogue_20231231_235959.csv.bak", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			at, ok := ParseFileTimestamp(tc.file, "rogue", "csv")
			assert.Equal(t, tc.expected, ok)
			if ok {
				assert.Equal(t, 2023, at.Year())
			}
		})
	}
}

func TestLatestFile(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"rogue_20230101_000000.csv",
		"rogue_20240601_120000.csv",
		"rogue_20240105_235959.csv",
		"cleaned_20250101_000000.csv",
		"rogue_20990101_000000.txt",
		"notes.csv",
	}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("a\n"), 0o600))
	}
	// a directory that looks like a match is ignored
	require.NoError(t, os.Mkdir(filepath.Join(dir, "rogue_20991231_000000.csv"), 0o755))

	latest, err := LatestFile(dir, "rogue", "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rogue_20240601_120000.csv"), latest)

	latest, err = LatestFile(dir, "cleaned", "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cleaned_20250101_000000.csv"), latest)
}

func TestLatestFileMixedExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"cleaned_20240101_000000.csv",
		"cleaned_20240301_000000.parquet",
		"cleaned_20240201_000000.csv",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("a\n"), 0o600))
	}

	latest, err := LatestFile(dir, "cleaned", "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cleaned_20240201_000000.csv"), latest)

	latest, err = LatestFile(dir, "cleaned", "csv", "parquet")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cleaned_20240301_000000.parquet"), latest)
}

func TestLatestFileErrors(t *testing.T) {
	_, err := LatestFile(t.TempDir(), "rogue", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rogue files found")

	_, err = LatestFile(filepath.Join(t.TempDir(), "missing"), "rogue", "csv")
	assert.Error(t, err)
}

func TestUnmarshalFile(t *testing.T) {
	type config struct {
		Bucket string `json:"bucket" validate:"required"`
	}

	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"bucket":"orders"}`), 0o600))
	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{}`), 0o600))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))

	var cfg config
	require.NoError(t, UnmarshalFile(valid, &cfg, true))
	assert.Equal(t, "orders", cfg.Bucket)

	assert.Error(t, UnmarshalFile(empty, &config{}, true))
	assert.NoError(t, UnmarshalFile(empty, &config{}, false))
	assert.Error(t, UnmarshalFile(broken, &config{}, false))
	assert.Error(t, UnmarshalFile(filepath.Join(dir, "none.json"), &config{}, false))
}

func TestUnmarshal(t *testing.T) {
	type target struct {
		Region string `json:"region"`
		Port   int    `json:"port"`
	}

	var out target
	require.NoError(t, Unmarshal(map[string]any{"region": "ap-south-1", "port": 9000}, &out))
	assert.Equal(t, target{Region: "ap-south-1", Port: 9000}, out)
}
