// Package memory provides the process-lifetime Resource Store. Records live in
// an ordered slice and are lost on restart.
//
// The store hands out the stored pointers themselves, so a use case that
// mutates a record obtained from FindByID changes what the next List or
// FindByID returns. The mutex only keeps slice access race-free under
// concurrent HTTP handlers; it gives no cross-request consistency.
package memory

import (
	"fmt"
	"slices"
	"sync"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

type record interface {
	comparable
	ID() string
	AssignID(id string) error
	Validate() error
}

type collection[T record] struct {
	mu     sync.RWMutex
	name   string
	items  []T
	nextID kernel.IDGenerator
}

func newCollection[T record](name string, nextID kernel.IDGenerator) *collection[T] {
	if nextID == nil {
		nextID = kernel.NewID
	}
	return &collection[T]{
		name:   name,
		items:  make([]T, 0),
		nextID: nextID,
	}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

func (c *collection[T]) findByID(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], nil
	}

	var zero T
	return zero, errs.NewObjectNotFoundError(c.name, id)
}

func (c *collection[T]) insert(item T) error {
	if err := item.Validate(); err != nil {
		return err
	}

	id, err := c.nextID()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(id) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%s is already used in %s", id, c.name))
	}
	if err = item.AssignID(id); err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

func (c *collection[T]) update(item T) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(item.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError(c.name, item.ID())
	}

	// A caller holding a stale copy replaces the stored record.
	if c.items[i] != item {
		c.items[i] = item
	}
	return nil
}

func (c *collection[T]) removeByID(id string, precondition func(T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return errs.NewObjectNotFoundError(c.name, id)
	}

	if precondition != nil {
		if err := precondition(c.items[i]); err != nil {
			return err
		}
	}

	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

func (c *collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.ID() == id
	})
}
