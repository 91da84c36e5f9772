package repository

import (
	"sync"

	"anoa.com/useremployee/pkg/apperror"
	"github.com/google/uuid"
)

// Record is anything the store can hold. Records are identified by a
// surrogate key assigned at creation; positions are derived for display and
// shift on delete.
type Record interface {
	RecordID() uuid.UUID
	DisplayName() string
}

// Collection is an ordered in-memory sequence of records. It lives for the
// process lifetime only; nothing is persisted.
type Collection[T Record] struct {
	mu    sync.RWMutex
	items []T
}

func NewCollection[T Record]() *Collection[T] {
	return &Collection[T]{}
}

// List returns a snapshot copy in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) At(index int) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, apperror.ErrOutOfRange
	}
	return c.items[index], nil
}

func (c *Collection[T]) Append(record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, record)
}

func (c *Collection[T]) ReplaceAt(index int, record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return apperror.ErrOutOfRange
	}
	c.items[index] = record
	return nil
}

func (c *Collection[T]) RemoveAt(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return apperror.ErrOutOfRange
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// ByID looks a record up by its surrogate key and reports its current
// position.
func (c *Collection[T]) ByID(id uuid.UUID) (T, int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i, item := range c.items {
		if item.RecordID() == id {
			return item, i, nil
		}
	}

	var zero T
	return zero, -1, apperror.ErrNotFound
}

// IndexOf returns the current position of a record, or -1.
func (c *Collection[T]) IndexOf(id uuid.UUID) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i, item := range c.items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}

// ReplaceAll swaps the whole sequence.
func (c *Collection[T]) ReplaceAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)
}
