package repository

import (
	"testing"
	"time"

	"anoa.com/useremployee/internal/model"
	"anoa.com/useremployee/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newUser(name, phone string) model.UserRecord {
	return model.UserRecord{
		ID:        uuid.New(),
		Name:      name,
		Gender:    model.GenderMale,
		Phone:     phone,
		Address:   model.Address{Line1: "MG Road", Pin: "411001", District: "Pune", State: "Maharashtra"},
		CreatedAt: time.Now(),
	}
}

func TestCollection_AppendAndList(t *testing.T) {
	coll := NewCollection[model.UserRecord]()
	require.Equal(t, 0, coll.Len())

	a := newUser("Alice Rao", "9123456780")
	b := newUser("Bob Lee", "9123456781")
	coll.Append(a)
	coll.Append(b)

	items := coll.List()
	require.Len(t, items, 2)
	require.Equal(t, a.ID, items[0].RecordID())
	require.Equal(t, b.ID, items[1].RecordID())

	// List returns a snapshot; mutating it must not touch the collection.
	items[0].Name = "Mutated"
	got, err := coll.At(0)
	require.NoError(t, err)
	require.Equal(t, "Alice Rao", got.Name)
}

func TestCollection_ReplaceAt(t *testing.T) {
	coll := NewCollection[model.UserRecord]()
	a := newUser("Alice Rao", "9123456780")
	coll.Append(a)

	updated := a
	updated.Name = "Alice Kumar"
	require.NoError(t, coll.ReplaceAt(0, updated))

	got, err := coll.At(0)
	require.NoError(t, err)
	require.Equal(t, "Alice Kumar", got.Name)
	require.Equal(t, 1, coll.Len())
}

func TestCollection_RemoveAtShiftsPositions(t *testing.T) {
	coll := NewCollection[model.UserRecord]()
	a := newUser("Alice Rao", "9123456780")
	b := newUser("Bob Lee", "9123456781")
	c := newUser("Carol Sen", "9123456782")
	coll.Append(a)
	coll.Append(b)
	coll.Append(c)

	require.NoError(t, coll.RemoveAt(1))
	require.Equal(t, 2, coll.Len())
	require.Equal(t, 1, coll.IndexOf(c.ID))
	require.Equal(t, -1, coll.IndexOf(b.ID))
}

func TestCollection_OutOfRangeRejected(t *testing.T) {
	coll := NewCollection[model.UserRecord]()
	coll.Append(newUser("Alice Rao", "9123456780"))

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past end", 1},
		{"far past end", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, coll.ReplaceAt(tt.index, newUser("X Y", "9000000000")), apperror.ErrOutOfRange)
			require.ErrorIs(t, coll.RemoveAt(tt.index), apperror.ErrOutOfRange)
			_, err := coll.At(tt.index)
			require.ErrorIs(t, err, apperror.ErrOutOfRange)
			require.Equal(t, 1, coll.Len())
		})
	}
}

func TestCollection_ByID(t *testing.T) {
	coll := NewCollection[model.UserRecord]()
	a := newUser("Alice Rao", "9123456780")
	coll.Append(a)

	got, index, err := coll.ByID(a.ID)
	require.NoError(t, err)
	require.Equal(t, 0, index)
	require.Equal(t, a.Name, got.Name)

	_, _, err = coll.ByID(uuid.New())
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCollection_ReplaceAll(t *testing.T) {
	coll := NewCollection[model.UserRecord]()
	coll.Append(newUser("Alice Rao", "9123456780"))

	replacement := []model.UserRecord{
		newUser("Bob Lee", "9123456781"),
		newUser("Carol Sen", "9123456782"),
	}
	coll.ReplaceAll(replacement)

	require.Equal(t, 2, coll.Len())
	got, err := coll.At(0)
	require.NoError(t, err)
	require.Equal(t, "Bob Lee", got.Name)
}
