// Package memory implements the repositories over the fixed sample
// dataset. The repositories never write, so they are safe for concurrent
// use without locking.
package memory

import (
	"context"
	"errors"
)

// cloneSlice copies the outer slice so callers cannot reorder or overwrite
// the seeded records.
func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}

// Check reports whether the dataset holds the records every screen lists.
func (d *Dataset) Check() error {
	switch {
	case d == nil:
		return errors.New("dataset not loaded")
	case len(d.Patients) == 0, len(d.Appointments) == 0, len(d.Staff) == 0,
		len(d.Records) == 0, len(d.Invoices) == 0:
		return errors.New("dataset is missing records")
	}
	return nil
}
