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

type EmployeeFormService interface {
	// View consumes a pending handoff name into the draft before rendering.
	View(ctx context.Context) dto.EmployeeFormView
	Update(ctx context.Context, draft dto.EmployeeDraft) dto.EmployeeFormView
	Submit(ctx context.Context) error
	Reset(ctx context.Context) error
	BeginEdit(ctx context.Context, id uuid.UUID) (dto.EmployeeDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleCollapse(ctx context.Context) bool
	Table() *TablePresenter[model.EmployeeRecord]
}

type employeeFormService struct {
	mu       sync.Mutex
	store    *repository.Store
	handoff  *Handoff
	notifier Notifier
	cfg      *config.Config
	table    *TablePresenter[model.EmployeeRecord]

	draft     dto.EmployeeDraft
	errors    map[string]string
	editID    *uuid.UUID
	duplicate bool
	collapsed bool
	busy      bool
}

// NewEmployeeFormService wires the employee form. The employee form never
// surfaces toasts, so callers pass the no-op notifier; the asymmetry with
// the user form is deliberate and visible here.
func NewEmployeeFormService(store *repository.Store, handoff *Handoff, notifier Notifier, cfg *config.Config) EmployeeFormService {
	s := &employeeFormService{
		store:    store,
		handoff:  handoff,
		notifier: notifier,
		cfg:      cfg,
		draft:    dto.InitialEmployeeDraft(),
	}
	s.table = NewTablePresenter(store.Employees, func(e model.EmployeeRecord) string {
		return employeeCodeKey(e.Code)
	}, s.Delete)
	return s
}

func (s *employeeFormService) Table() *TablePresenter[model.EmployeeRecord] {
	return s.table
}

func (s *employeeFormService) View(ctx context.Context) dto.EmployeeFormView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name, ok := s.handoff.Take(); ok && name != "" {
		s.draft.Name = name
	}
	return s.viewLocked()
}

func (s *employeeFormService) viewLocked() dto.EmployeeFormView {
	rows := s.table.Rows()
	rowResponses := make([]dto.EmployeeRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = dto.EmployeeRowResponse{
			Position:      row.Position,
			Record:        row.Record,
			Duplicate:     row.Duplicate,
			PendingDelete: row.PendingDelete,
		}
	}

	return dto.EmployeeFormView{
		Draft:         s.draft,
		Errors:        s.errors,
		EditID:        s.editID,
		DuplicateCode: s.duplicate,
		Dirty:         s.draft != dto.InitialEmployeeDraft(),
		Collapsed:     s.collapsed,
		SortMode:      string(s.table.Mode()),
		Rows:          rowResponses,
	}
}

func (s *employeeFormService) Update(ctx context.Context, draft dto.EmployeeDraft) dto.EmployeeFormView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.errors != nil {
		clearChangedFieldErrors(s.errors, map[string][2]string{
			"name": {s.draft.Name, draft.Name},
			"code": {s.draft.Code, draft.Code},
		})
	}

	s.draft = draft
	s.duplicate = s.codeTakenLocked(draft.Code)
	return s.viewLocked()
}

func (s *employeeFormService) codeTakenLocked(code string) bool {
	if strings.TrimSpace(code) == "" {
		return false
	}
	exclude := -1
	if s.editID != nil {
		exclude = s.store.Employees.IndexOf(*s.editID)
	}
	return hasDuplicateKey(s.store.Employees.List(), func(e model.EmployeeRecord) string {
		return employeeCodeKey(e.Code)
	}, employeeCodeKey(code), exclude)
}

func (s *employeeFormService) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return apperror.ErrBusy
	}

	draft := s.draft
	normalized := draft
	normalized.Name = strings.TrimSpace(draft.Name)
	normalized.Code = strings.TrimSpace(draft.Code)

	if fields := validator.ValidateDraft(normalized); fields != nil {
		s.errors = fields
		s.mu.Unlock()
		return &apperror.ValidationError{Fields: fields}
	}

	if s.codeTakenLocked(draft.Code) {
		s.duplicate = true
		s.mu.Unlock()
		return &apperror.DuplicateKeyError{Field: "code", Key: draft.Code}
	}

	editID := s.editID
	s.busy = true
	s.mu.Unlock()

	time.Sleep(s.cfg.SaveDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.busy = false }()

	// Name is trimmed on save; code is stored as typed.
	record := model.EmployeeRecord{
		Name:       normalized.Name,
		Department: model.Department(draft.Department),
		Code:       draft.Code,
		Profile:    model.Profile(draft.Profile),
	}

	if editID == nil {
		record.ID = uuid.New()
		record.CreatedAt = time.Now()
		s.store.Employees.Append(record)
		s.notifier.Notify(ctx, "employee_saved", "Employee saved")
	} else {
		existing, index, err := s.store.Employees.ByID(*editID)
		if err != nil {
			return err
		}
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if err := s.store.Employees.ReplaceAt(index, record); err != nil {
			return err
		}
		s.notifier.Notify(ctx, "employee_updated", "Employee updated")
		s.editID = nil
	}

	s.draft = dto.InitialEmployeeDraft()
	s.errors = nil
	s.duplicate = false
	return nil
}

func (s *employeeFormService) Reset(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return apperror.ErrBusy
	}
	if s.draft == dto.InitialEmployeeDraft() && s.editID == nil && len(s.errors) == 0 {
		s.mu.Unlock()
		return nil
	}
	s.busy = true
	s.mu.Unlock()

	time.Sleep(s.cfg.EmployeeResetDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = dto.InitialEmployeeDraft()
	s.errors = nil
	s.editID = nil
	s.duplicate = false
	s.busy = false
	return nil
}

func (s *employeeFormService) BeginEdit(ctx context.Context, id uuid.UUID) (dto.EmployeeDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return dto.EmployeeDraft{}, apperror.ErrBusy
	}

	record, _, err := s.store.Employees.ByID(id)
	if err != nil {
		return dto.EmployeeDraft{}, err
	}

	s.draft = dto.EmployeeDraft{
		Name:       record.Name,
		Department: string(record.Department),
		Code:       record.Code,
		Profile:    string(record.Profile),
	}
	s.editID = &id
	s.duplicate = false
	s.collapsed = false
	return s.draft, nil
}

func (s *employeeFormService) Delete(ctx context.Context, id uuid.UUID) error {
	_, index, err := s.store.Employees.ByID(id)
	if err != nil {
		return err
	}
	if err := s.store.Employees.RemoveAt(index); err != nil {
		return err
	}
	s.notifier.Notify(ctx, "employee_deleted", "Employee deleted")
	return nil
}

func (s *employeeFormService) ToggleCollapse(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collapsed = !s.collapsed
	return s.collapsed
}
