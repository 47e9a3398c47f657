// Package staging holds at most one record that is being created or edited, outside the
// collection it belongs to, until it is committed or discarded.
package staging

import (
	"context"
	"errors"
	"sync"
)

var ErrIdle = errors.New("no record is staged")

// Options describes an entity kind: its blank template, its sentinel id convention and
// how a finished record is committed.
type Options[T any] struct {
	// Blank returns the template staged by BeginCreate.
	Blank func() T
	// IsNew reports whether the record still carries the sentinel id.
	IsNew func(T) bool
	// AssignID returns the record with a freshly generated permanent id.
	AssignID func(T) T
	// Validate runs before an id is assigned. Optional.
	Validate func(T) error
	// Commit writes the record to its collection.
	Commit func(ctx context.Context, record T) error
}

type Controller[T any] struct {
	opts Options[T]

	mu     sync.Mutex
	staged *T
}

func New[T any](opts Options[T]) *Controller[T] {
	return &Controller[T]{opts: opts}
}

// BeginCreate stages a blank record, discarding anything staged before.
func (c *Controller[T]) BeginCreate() T {
	return c.BeginEdit(c.opts.Blank())
}

// BeginEdit stages a copy of record, discarding anything staged before.
func (c *Controller[T]) BeginEdit(record T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.staged = &record
	return record
}

// Staged returns the staged record, or false when idle.
func (c *Controller[T]) Staged() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		var zero T
		return zero, false
	}
	return *c.staged, true
}

// Update applies fn to the staged record.
func (c *Controller[T]) Update(fn func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		var zero T
		return zero, ErrIdle
	}
	next := *c.staged
	fn(&next)
	c.staged = &next
	return next, nil
}

// Cancel discards the staged record. It reports whether anything was staged.
func (c *Controller[T]) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	had := c.staged != nil
	c.staged = nil
	return had
}

// Save validates and commits the staged record, assigning a permanent id first when it
// still carries the sentinel. The controller returns to idle only after a successful
// commit; on error the record stays staged so it can be corrected.
// Saving while idle is a no-op and returns false.
func (c *Controller[T]) Save(ctx context.Context) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if c.staged == nil {
		return zero, false, nil
	}
	record := *c.staged

	if c.opts.Validate != nil {
		if err := c.opts.Validate(record); err != nil {
			return zero, true, err
		}
	}
	if c.opts.IsNew(record) {
		record = c.opts.AssignID(record)
	}
	if err := c.opts.Commit(ctx, record); err != nil {
		return zero, true, err
	}

	c.staged = nil
	return record, true, nil
}
