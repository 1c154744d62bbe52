package utils

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// ErrExec runs the functions concurrently and returns the first error. Functions
// that have not started when ctx is cancelled are skipped.
func ErrExec(ctx context.Context, functions ...func(ctx context.Context) error) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for _, one := range functions {
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
				return one(groupCtx)
			}
		})
	}

	return group.Wait()
}

// ErrExecSequential runs every function in order and accumulates all errors.
func ErrExecSequential(functions ...func() error) error {
	var multErr error

	for _, one := range functions {
		if err := one(); err != nil {
			multErr = multierror.Append(multErr, err)
		}
	}

	return multErr
}

// ErrExecFormat formats the error returned from a function according to the provided format string.
func ErrExecFormat(format string, function func() error) func() error {
	return func() error {
		if err := function(); err != nil {
			return fmt.Errorf(format, err)
		}
		return nil
	}
}
