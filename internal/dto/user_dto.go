package dto

import (
	"anoa.com/useremployee/internal/model"
	"github.com/google/uuid"
)

// UserDraft is the transient edit buffer for the user form. Field rules
// mirror the form: first/last name and address line 1 required, phone is an
// Indian mobile number, pin is a 6-digit postal code.
type UserDraft struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Gender       string `json:"gender" validate:"oneof=male female other"`
	Phone        string `json:"phone" validate:"required,mobile"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	Pin          string `json:"pin" validate:"required,pincode"`
	District     string `json:"district" validate:"oneof=Pune Mumbai Nashik Nagpur Solapur"`
	State        string `json:"state" validate:"oneof=Maharashtra Gujarat Karnataka 'Tamil Nadu' Delhi"`
}

// InitialUserDraft is the template the form starts from and resets to.
func InitialUserDraft() UserDraft {
	return UserDraft{
		Gender:   string(model.GenderMale),
		District: "Pune",
		State:    "Maharashtra",
	}
}

type UserRowResponse struct {
	Position      int              `json:"position"`
	Record        model.UserRecord `json:"record"`
	PendingDelete bool             `json:"pending_delete"`
}

type UserFormView struct {
	Draft          UserDraft         `json:"draft"`
	Errors         map[string]string `json:"errors,omitempty"`
	EditID         *uuid.UUID        `json:"edit_id,omitempty"`
	DuplicatePhone bool              `json:"duplicate_phone"`
	Dirty          bool              `json:"dirty"`
	Collapsed      bool              `json:"collapsed"`
	SortMode       string            `json:"sort_mode"`
	Rows           []UserRowResponse `json:"rows"`
}
