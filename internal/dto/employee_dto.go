package dto

import (
	"anoa.com/useremployee/internal/model"
	"github.com/google/uuid"
)

type EmployeeDraft struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"oneof=Engineering HR Sales Marketing Finance"`
	Code       string `json:"code" validate:"required"`
	Profile    string `json:"profile" validate:"oneof=Full-time Part-time Contract Intern"`
}

// InitialEmployeeDraft is the template the form starts from and resets to.
func InitialEmployeeDraft() EmployeeDraft {
	return EmployeeDraft{
		Department: string(model.DepartmentEngineering),
		Profile:    string(model.ProfileFullTime),
	}
}

type EmployeeRowResponse struct {
	Position      int                  `json:"position"`
	Record        model.EmployeeRecord `json:"record"`
	Duplicate     bool                 `json:"duplicate"`
	PendingDelete bool                 `json:"pending_delete"`
}

type EmployeeFormView struct {
	Draft         EmployeeDraft         `json:"draft"`
	Errors        map[string]string     `json:"errors,omitempty"`
	EditID        *uuid.UUID            `json:"edit_id,omitempty"`
	DuplicateCode bool                  `json:"duplicate_code"`
	Dirty         bool                  `json:"dirty"`
	Collapsed     bool                  `json:"collapsed"`
	SortMode      string                `json:"sort_mode"`
	Rows          []EmployeeRowResponse `json:"rows"`
}
