package model

import (
	"time"

	"github.com/google/uuid"
)

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentHR          Department = "HR"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentFinance     Department = "Finance"
)

type Profile string

const (
	ProfileFullTime Profile = "Full-time"
	ProfilePartTime Profile = "Part-time"
	ProfileContract Profile = "Contract"
	ProfileIntern   Profile = "Intern"
)

type EmployeeRecord struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Department Department `json:"department"`
	Code       string     `json:"code"`
	Profile    Profile    `json:"profile"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (e EmployeeRecord) RecordID() uuid.UUID { return e.ID }

func (e EmployeeRecord) DisplayName() string { return e.Name }
