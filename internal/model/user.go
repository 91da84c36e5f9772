package model

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Pin      string `json:"pin"`
	District string `json:"district"`
	State    string `json:"state"`
}

// UserRecord stores the composite display name as saved from the form.
// Splitting it back into first/last on edit is lossy for names with more
// than one internal space.
type UserRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Gender    Gender    `json:"gender"`
	Phone     string    `json:"phone"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func (u UserRecord) RecordID() uuid.UUID { return u.ID }

func (u UserRecord) DisplayName() string { return u.Name }
