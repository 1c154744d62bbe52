package cleaner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput matches every InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingColumn matches every MissingColumnError.
	ErrMissingColumn = errors.New("missing column")
)

// InvalidInputError is returned by NewPipeline when the dataset is not a
// well-formed table.
type InvalidInputError struct {
	Reason error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *InvalidInputError) Unwrap() error {
	return e.Reason
}

// MissingColumnError is returned by a rule whose required columns are absent.
// It is a configuration error: the dataset is left as it was.
type MissingColumnError struct {
	Rule    string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("rule %s: column(s) %s missing in the dataset", e.Rule, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
