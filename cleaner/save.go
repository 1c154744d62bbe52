package cleaner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/utils"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/datazip-inc/rogue-records/writers"

	// file formats available to Save
	_ "github.com/datazip-inc/rogue-records/writers/csv"
	_ "github.com/datazip-inc/rogue-records/writers/parquet"
)

// SaveResult is the outcome of Save. Save never returns an error or panics;
// callers check OK.
type SaveResult struct {
	OK      bool   `json:"ok"`
	Path    string `json:"path,omitempty"`
	Rows    int    `json:"rows"`
	Err     error  `json:"-"`
	Message string `json:"message"`
}

// Save writes the current dataset into dir as cleaned_<YYYYMMDD>_<HHMMSS>.<ext>,
// the timestamp taken at call time. dir is created when missing. Two saves in
// the same second target the same name and the later one wins.
func (p *Pipeline) Save(dir string) SaveResult {
	if p.err != nil {
		return failed(fmt.Errorf("pipeline stopped before save: %w", p.err))
	}

	writer, err := writers.NewWriter(p.options.Format)
	if err != nil {
		return failed(err)
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return failed(fmt.Errorf("failed to create directory %s: %w", dir, err))
	}

	fileName := utils.TimestampedFileName(constants.CleanedFilePrefix, writer.Extension(), p.options.Now())
	path := filepath.Join(dir, fileName)
	if err := writer.Write(path, p.dataset); err != nil {
		return failed(fmt.Errorf("an error occurred while saving the file: %w", err))
	}

	message := fmt.Sprintf("data cleaning completed, cleaned data saved to '%s'", path)
	logger.Info(message)
	return SaveResult{
		OK:      true,
		Path:    path,
		Rows:    p.dataset.Len(),
		Message: message,
	}
}

func failed(err error) SaveResult {
	logger.Error(err)
	return SaveResult{
		OK:      false,
		Err:     err,
		Message: err.Error(),
	}
}
