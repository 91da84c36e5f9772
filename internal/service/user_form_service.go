package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"anoa.com/useremployee/internal/config"
	"anoa.com/useremployee/internal/dto"
	"anoa.com/useremployee/internal/model"
	"anoa.com/useremployee/internal/repository"
	"anoa.com/useremployee/pkg/apperror"
	"anoa.com/useremployee/pkg/validator"
	"github.com/google/uuid"
)

type UserFormService interface {
	View(ctx context.Context) dto.UserFormView
	Update(ctx context.Context, draft dto.UserDraft) dto.UserFormView
	Submit(ctx context.Context) error
	Reset(ctx context.Context) error
	BeginEdit(ctx context.Context, id uuid.UUID) (dto.UserDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleCollapse(ctx context.Context) bool
	GoToEmployee(ctx context.Context) (string, error)
	Table() *TablePresenter[model.UserRecord]
}

// userFormService owns the transient user edit buffer and drives all user
// record mutations against the store.
type userFormService struct {
	mu       sync.Mutex
	store    *repository.Store
	handoff  *Handoff
	notifier Notifier
	cfg      *config.Config
	table    *TablePresenter[model.UserRecord]

	draft     dto.UserDraft
	errors    map[string]string
	editID    *uuid.UUID
	duplicate bool
	collapsed bool
	busy      bool
}

func NewUserFormService(store *repository.Store, handoff *Handoff, notifier Notifier, cfg *config.Config) UserFormService {
	s := &userFormService{
		store:    store,
		handoff:  handoff,
		notifier: notifier,
		cfg:      cfg,
		draft:    dto.InitialUserDraft(),
	}
	// The user table carries no duplicate decoration, so no key func.
	s.table = NewTablePresenter(store.Users, nil, s.Delete)
	return s
}

func (s *userFormService) Table() *TablePresenter[model.UserRecord] {
	return s.table
}

func (s *userFormService) View(ctx context.Context) dto.UserFormView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *userFormService) viewLocked() dto.UserFormView {
	rows := s.table.Rows()
	rowResponses := make([]dto.UserRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = dto.UserRowResponse{
			Position:      row.Position,
			Record:        row.Record,
			PendingDelete: row.PendingDelete,
		}
	}

	return dto.UserFormView{
		Draft:          s.draft,
		Errors:         s.errors,
		EditID:         s.editID,
		DuplicatePhone: s.duplicate,
		Dirty:          s.draft != dto.InitialUserDraft(),
		Collapsed:      s.collapsed,
		SortMode:       string(s.table.Mode()),
		Rows:           rowResponses,
	}
}

// Update replaces the edit buffer and recomputes the live duplicate-phone
// flag. Field errors are dropped for fields the client just touched, the
// way the form clears an error when its field regains focus.
func (s *userFormService) Update(ctx context.Context, draft dto.UserDraft) dto.UserFormView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.errors != nil {
		clearChangedFieldErrors(s.errors, map[string][2]string{
			"firstName":    {s.draft.FirstName, draft.FirstName},
			"lastName":     {s.draft.LastName, draft.LastName},
			"phone":        {s.draft.Phone, draft.Phone},
			"addressLine1": {s.draft.AddressLine1, draft.AddressLine1},
			"pin":          {s.draft.Pin, draft.Pin},
		})
	}

	s.draft = draft
	s.duplicate = s.phoneTakenLocked(draft.Phone)
	return s.viewLocked()
}

func (s *userFormService) phoneTakenLocked(phone string) bool {
	if phone == "" {
		return false
	}
	exclude := -1
	if s.editID != nil {
		exclude = s.store.Users.IndexOf(*s.editID)
	}
	return hasDuplicateKey(s.store.Users.List(), func(u model.UserRecord) string {
		return userPhoneKey(u.Phone)
	}, userPhoneKey(phone), exclude)
}

// Submit validates the buffer, rejects duplicate phones, then appends or
// replaces in place. The artificial save delay runs before the mutation and
// the form stays busy for its duration.
func (s *userFormService) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return apperror.ErrBusy
	}

	draft := s.draft
	normalized := draft
	normalized.FirstName = strings.TrimSpace(draft.FirstName)
	normalized.LastName = strings.TrimSpace(draft.LastName)
	normalized.AddressLine1 = strings.TrimSpace(draft.AddressLine1)

	if fields := validator.ValidateDraft(normalized); fields != nil {
		s.errors = fields
		s.mu.Unlock()
		return &apperror.ValidationError{Fields: fields}
	}

	if s.phoneTakenLocked(draft.Phone) {
		s.duplicate = true
		s.mu.Unlock()
		return &apperror.DuplicateKeyError{Field: "phone", Key: draft.Phone}
	}

	editID := s.editID
	s.busy = true
	s.mu.Unlock()

	// Presentational delay; always runs to completion.
	time.Sleep(s.cfg.SaveDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.busy = false }()

	record := model.UserRecord{
		Name:   normalized.FirstName + " " + normalized.LastName,
		Gender: model.Gender(draft.Gender),
		Phone:  draft.Phone,
		Address: model.Address{
			Line1:    normalized.AddressLine1,
			Line2:    draft.AddressLine2,
			Pin:      draft.Pin,
			District: draft.District,
			State:    draft.State,
		},
	}

	if editID == nil {
		record.ID = uuid.New()
		record.CreatedAt = time.Now()
		s.store.Users.Append(record)
		s.notifier.Notify(ctx, "user_saved", "User saved")
	} else {
		existing, index, err := s.store.Users.ByID(*editID)
		if err != nil {
			return err
		}
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if err := s.store.Users.ReplaceAt(index, record); err != nil {
			return err
		}
		s.notifier.Notify(ctx, "user_updated", "User updated")
		s.editID = nil
	}

	s.draft = dto.InitialUserDraft()
	s.errors = nil
	s.duplicate = false
	return nil
}

// Reset restores the buffer to its initial template. When the form is
// already clean the trigger is a no-op and skips the delay entirely.
func (s *userFormService) Reset(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return apperror.ErrBusy
	}
	if s.draft == dto.InitialUserDraft() && s.editID == nil && len(s.errors) == 0 {
		s.mu.Unlock()
		return nil
	}
	s.busy = true
	s.mu.Unlock()

	time.Sleep(s.cfg.UserResetDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = dto.InitialUserDraft()
	s.errors = nil
	s.editID = nil
	s.duplicate = false
	s.busy = false
	return nil
}

// BeginEdit copies a stored record back into the buffer. The composite name
// splits at the first space: first token becomes the first name, the rest
// the last name. Lossy for names with multiple internal spaces.
func (s *userFormService) BeginEdit(ctx context.Context, id uuid.UUID) (dto.UserDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A save in flight resets the buffer when it lands; loading a record
	// into the buffer now would be clobbered.
	if s.busy {
		return dto.UserDraft{}, apperror.ErrBusy
	}

	record, _, err := s.store.Users.ByID(id)
	if err != nil {
		return dto.UserDraft{}, err
	}

	first, last, _ := strings.Cut(record.Name, " ")

	s.draft = dto.UserDraft{
		FirstName:    first,
		LastName:     last,
		Gender:       string(record.Gender),
		Phone:        record.Phone,
		AddressLine1: record.Address.Line1,
		AddressLine2: record.Address.Line2,
		Pin:          record.Address.Pin,
		District:     record.Address.District,
		State:        record.Address.State,
	}
	s.editID = &id
	s.duplicate = false
	s.collapsed = false
	return s.draft, nil
}

func (s *userFormService) Delete(ctx context.Context, id uuid.UUID) error {
	_, index, err := s.store.Users.ByID(id)
	if err != nil {
		return err
	}
	if err := s.store.Users.RemoveAt(index); err != nil {
		return err
	}
	s.notifier.Notify(ctx, "user_deleted", "User deleted")
	return nil
}

func (s *userFormService) ToggleCollapse(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collapsed = !s.collapsed
	return s.collapsed
}

// GoToEmployee stages the composed name for the employee form, waits out
// the navigation delay, then reports the target path.
func (s *userFormService) GoToEmployee(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return "", apperror.ErrBusy
	}
	name := strings.TrimSpace(s.draft.FirstName + " " + s.draft.LastName)
	s.busy = true
	s.mu.Unlock()

	s.handoff.Put(name)
	time.Sleep(s.cfg.NavigateDelay)

	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
	return "/employeeForm", nil
}

// clearChangedFieldErrors drops the stale error for any field whose value
// changed in this update.
func clearChangedFieldErrors(errs map[string]string, fields map[string][2]string) {
	for key, pair := range fields {
		if pair[0] != pair[1] {
			delete(errs, key)
		}
	}
}
