package writers

import (
	"fmt"
	"strings"

	"github.com/datazip-inc/rogue-records/types"
)

// Writer persists a dataset to a local file in one file format.
type Writer interface {
	// Extension is the file extension, without the dot.
	Extension() string
	Write(path string, dataset *types.Dataset) error
}

type NewFunc func() Writer

var RegisteredWriters = map[types.FileFormat]NewFunc{}

// NewWriter returns the registered writer for format.
func NewWriter(format types.FileFormat) (Writer, error) {
	newFunc, found := RegisteredWriters[types.FileFormat(strings.ToLower(string(format)))]
	if !found {
		return nil, fmt.Errorf("invalid file format has been passed [%s]", format)
	}
	return newFunc(), nil
}
