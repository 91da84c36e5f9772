package service

import (
	"context"
	"testing"
	"time"

	"anoa.com/useremployee/internal/dto"
	"anoa.com/useremployee/internal/model"
	"anoa.com/useremployee/internal/repository"
	"anoa.com/useremployee/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newEmployeeForm(t *testing.T) (EmployeeFormService, *repository.Store, *Handoff) {
	t.Helper()
	store := repository.NewStore()
	handoff := NewHandoff()
	return NewEmployeeFormService(store, handoff, NoopNotifier{}, testConfig()), store, handoff
}

func seedEmployee(store *repository.Store, name, code string) model.EmployeeRecord {
	record := model.EmployeeRecord{
		ID:         uuid.New(),
		Name:       name,
		Department: model.DepartmentHR,
		Code:       code,
		Profile:    model.ProfileIntern,
		CreatedAt:  time.Now(),
	}
	store.Employees.Append(record)
	return record
}

func TestEmployeeSubmit_MissingName(t *testing.T) {
	svc, store, _ := newEmployeeForm(t)

	draft := dto.InitialEmployeeDraft()
	draft.Name = ""
	draft.Code = "ABC"
	svc.Update(context.Background(), draft)

	err := svc.Submit(context.Background())

	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "name")
	require.Equal(t, "Name is required", ve.Fields["name"])
	require.Equal(t, 0, store.Employees.Len())
}

func TestEmployeeSubmit_MissingCode(t *testing.T) {
	svc, store, _ := newEmployeeForm(t)

	draft := dto.InitialEmployeeDraft()
	draft.Name = "Asha"
	draft.Code = "   "
	svc.Update(context.Background(), draft)

	err := svc.Submit(context.Background())

	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "code")
	require.Equal(t, 0, store.Employees.Len())
}

func TestEmployeeSubmit_RejectsValuesOutsideClosedSets(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *dto.EmployeeDraft)
		field  string
	}{
		{"unknown department", func(d *dto.EmployeeDraft) { d.Department = "Legal" }, "department"},
		{"unknown profile", func(d *dto.EmployeeDraft) { d.Profile = "Freelance" }, "profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := newEmployeeForm(t)
			draft := dto.InitialEmployeeDraft()
			draft.Name = "Asha"
			draft.Code = "E1"
			tt.mutate(&draft)
			svc.Update(context.Background(), draft)

			err := svc.Submit(context.Background())

			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Contains(t, ve.Fields, tt.field)
			require.Contains(t, ve.Fields[tt.field], "is not a valid option")
			require.Equal(t, 0, store.Employees.Len())
		})
	}
}

func TestEmployeeSubmit_BusyRejectsConcurrentTriggers(t *testing.T) {
	store := repository.NewStore()
	cfg := testConfig()
	cfg.SaveDelay = 250 * time.Millisecond
	svc := NewEmployeeFormService(store, NewHandoff(), NoopNotifier{}, cfg)
	existing := seedEmployee(store, "Asha", "E1")

	draft := dto.InitialEmployeeDraft()
	draft.Name = "Ravi"
	draft.Code = "E2"
	svc.Update(context.Background(), draft)

	done := make(chan error, 1)
	go func() { done <- svc.Submit(context.Background()) }()

	// Give the first submit time to enter its save window.
	time.Sleep(50 * time.Millisecond)

	require.ErrorIs(t, svc.Submit(context.Background()), apperror.ErrBusy)
	require.ErrorIs(t, svc.Reset(context.Background()), apperror.ErrBusy)
	_, err := svc.BeginEdit(context.Background(), existing.ID)
	require.ErrorIs(t, err, apperror.ErrBusy)

	require.NoError(t, <-done)
	require.Equal(t, 2, store.Employees.Len())
}

func TestEmployeeSubmit_DuplicateCodeCaseInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		incoming string
	}{
		{"same case", "X1", "X1"},
		{"lower vs upper", "X1", "x1"},
		{"mixed case", "ABC123", "abc123"},
		{"surrounding spaces", "X1", " x1 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := newEmployeeForm(t)
			seedEmployee(store, "A", tt.existing)

			draft := dto.InitialEmployeeDraft()
			draft.Name = "B"
			draft.Code = tt.incoming
			view := svc.Update(context.Background(), draft)
			require.True(t, view.DuplicateCode)

			err := svc.Submit(context.Background())

			var de *apperror.DuplicateKeyError
			require.ErrorAs(t, err, &de)
			require.Equal(t, "code", de.Field)
			require.Equal(t, 1, store.Employees.Len())
		})
	}
}

func TestEmployeeSubmit_TrimsNameStoresCodeAsTyped(t *testing.T) {
	svc, store, _ := newEmployeeForm(t)

	draft := dto.InitialEmployeeDraft()
	draft.Name = "  Asha Patil  "
	draft.Code = "e42"
	svc.Update(context.Background(), draft)
	require.NoError(t, svc.Submit(context.Background()))

	record, err := store.Employees.At(0)
	require.NoError(t, err)
	require.Equal(t, "Asha Patil", record.Name)
	require.Equal(t, "e42", record.Code)
	require.Equal(t, model.DepartmentEngineering, record.Department)
	require.Equal(t, model.ProfileFullTime, record.Profile)
}

func TestEmployeeSubmit_EditExcludesOwnCode(t *testing.T) {
	svc, store, _ := newEmployeeForm(t)
	record := seedEmployee(store, "Asha", "E1")

	draft, err := svc.BeginEdit(context.Background(), record.ID)
	require.NoError(t, err)
	require.Equal(t, "E1", draft.Code)

	// Resubmitting the same code while editing that record is not a
	// collision.
	view := svc.Update(context.Background(), draft)
	require.False(t, view.DuplicateCode)
	require.NoError(t, svc.Submit(context.Background()))
	require.Equal(t, 1, store.Employees.Len())
}

func TestEmployeeSubmit_EditRoundTrip(t *testing.T) {
	svc, store, _ := newEmployeeForm(t)
	before := seedEmployee(store, "Asha", "E1")

	_, err := svc.BeginEdit(context.Background(), before.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Submit(context.Background()))

	require.Equal(t, 1, store.Employees.Len())
	after, err := store.Employees.At(0)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestEmployeeReset(t *testing.T) {
	svc, _, _ := newEmployeeForm(t)

	draft := dto.InitialEmployeeDraft()
	draft.Name = "Asha"
	draft.Department = string(model.DepartmentSales)
	svc.Update(context.Background(), draft)

	require.NoError(t, svc.Reset(context.Background()))

	view := svc.View(context.Background())
	require.Equal(t, dto.InitialEmployeeDraft(), view.Draft)
	require.Empty(t, view.Errors)
	require.Nil(t, view.EditID)
	require.False(t, view.Dirty)
}

func TestEmployeeView_ConsumesHandoff(t *testing.T) {
	svc, _, handoff := newEmployeeForm(t)

	handoff.Put("Jane Doe")
	view := svc.View(context.Background())
	require.Equal(t, "Jane Doe", view.Draft.Name)

	// The slot is one-shot; a second render keeps the draft but finds the
	// slot empty.
	view = svc.View(context.Background())
	require.Equal(t, "Jane Doe", view.Draft.Name)
	_, ok := handoff.Take()
	require.False(t, ok)
}

func TestEmployeeView_FlagsDuplicateRows(t *testing.T) {
	svc, store, _ := newEmployeeForm(t)
	seedEmployee(store, "A", "X1")
	seedEmployee(store, "B", "x1")
	seedEmployee(store, "C", "Y2")

	view := svc.View(context.Background())
	require.Len(t, view.Rows, 3)
	require.True(t, view.Rows[0].Duplicate)
	require.True(t, view.Rows[1].Duplicate)
	require.False(t, view.Rows[2].Duplicate)
}
