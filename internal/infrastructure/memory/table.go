package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
)

// Table is an append-only in-memory record table. Rows are kept in insertion
// order and created_at strictly increases within a table.
type Table[T any] struct {
	mu    sync.RWMutex
	rows  []T
	clock *Clock
}

// NewTable creates an empty table on the shared clock
func NewTable[T any]() *Table[T] {
	return NewTableWithClock[T](defaultClock)
}

// NewTableWithClock creates an empty table stamping rows from clock
func NewTableWithClock[T any](clock *Clock) *Table[T] {
	return &Table[T]{clock: clock}
}

// Insert assigns an ID and creation timestamp, then stores the row built from them
func (t *Table[T]) Insert(build func(id entities.RecordID, createdAt string) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	createdAt := entities.FormatTimestamp(t.clock.Next())
	row := build(entities.RecordID(uuid.NewString()), createdAt)
	t.rows = append(t.rows, row)
	return row
}

// Recent returns up to limit rows, newest first. A non-positive limit returns nothing.
func (t *Table[T]) Recent(limit int) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if limit <= 0 {
		return []T{}
	}
	if limit > len(t.rows) {
		limit = len(t.rows)
	}

	out := make([]T, 0, limit)
	for i := len(t.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, t.rows[i])
	}
	return out
}
