package service

import (
	"context"
	"sort"
	"sync"

	"anoa.com/useremployee/internal/repository"
	"anoa.com/useremployee/pkg/apperror"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortMode string

const (
	SortInsertion SortMode = "insertion"
	SortNameAsc   SortMode = "nameAsc"
)

// Row pairs a record with its original 1-based position in the collection.
// Positions shift on delete; the record ID is the stable handle.
type Row[T repository.Record] struct {
	Position      int
	Record        T
	Duplicate     bool
	PendingDelete bool
}

// TablePresenter derives the display order for one table and owns its
// per-table UI state: the sort mode and the single pending delete
// confirmation. Deletion itself is delegated back to the owning form via
// the onDelete callback, the same way the original tables hand the action
// up to their parent.
type TablePresenter[T repository.Record] struct {
	mu       sync.Mutex
	coll     *repository.Collection[T]
	keyOf    func(T) string
	onDelete func(ctx context.Context, id uuid.UUID) error
	collator *collate.Collator

	mode    SortMode
	pending uuid.UUID
}

// NewTablePresenter builds a presenter over coll. keyOf may be nil when the
// table has no duplicate decoration (the user table doesn't).
func NewTablePresenter[T repository.Record](
	coll *repository.Collection[T],
	keyOf func(T) string,
	onDelete func(ctx context.Context, id uuid.UUID) error,
) *TablePresenter[T] {
	return &TablePresenter[T]{
		coll:     coll,
		keyOf:    keyOf,
		onDelete: onDelete,
		collator: collate.New(language.Und),
		mode:     SortInsertion,
	}
}

func (t *TablePresenter[T]) Mode() SortMode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// ToggleSort flips between insertion order and ascending name order. There
// is no third ordering.
func (t *TablePresenter[T]) ToggleSort() SortMode {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mode == SortInsertion {
		t.mode = SortNameAsc
	} else {
		t.mode = SortInsertion
	}
	return t.mode
}

// Rows renders the current collection in the active sort order. Duplicate
// flags are recomputed from the full collection on every render.
func (t *TablePresenter[T]) Rows() []Row[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	items := t.coll.List()

	var counts map[string]int
	if t.keyOf != nil {
		counts = duplicateKeyCounts(items, t.keyOf)
	}

	rows := make([]Row[T], len(items))
	for i, item := range items {
		rows[i] = Row[T]{
			Position:      i + 1,
			Record:        item,
			PendingDelete: item.RecordID() == t.pending,
		}
		if counts != nil {
			rows[i].Duplicate = counts[t.keyOf(item)] >= 2
		}
	}

	if t.mode == SortNameAsc {
		// Stable: ties keep their relative insertion order.
		sort.SliceStable(rows, func(i, j int) bool {
			return t.collator.CompareString(rows[i].Record.DisplayName(), rows[j].Record.DisplayName()) < 0
		})
	}

	return rows
}

// RequestDelete puts one row into pending-confirmation state. A new request
// displaces any prior pending row without confirming it.
func (t *TablePresenter[T]) RequestDelete(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Checked under the lock so the record cannot vanish between the
	// existence check and setting the pending marker.
	if t.coll.IndexOf(id) < 0 {
		return apperror.ErrNotFound
	}
	t.pending = id
	return nil
}

// ConfirmDelete removes the pending record and clears the pending state.
func (t *TablePresenter[T]) ConfirmDelete(ctx context.Context) error {
	t.mu.Lock()
	id := t.pending
	t.pending = uuid.Nil
	t.mu.Unlock()

	if id == uuid.Nil {
		return apperror.ErrNoPendingDelete
	}
	return t.onDelete(ctx, id)
}

// CancelDelete clears the pending state without mutating anything.
func (t *TablePresenter[T]) CancelDelete() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = uuid.Nil
}
