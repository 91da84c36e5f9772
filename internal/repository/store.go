package repository

import "anoa.com/useremployee/internal/model"

// Store holds the two record collections for the session. It is passed
// explicitly to every owner instead of living in ambient package state, so
// mutation rights are visible at call sites.
type Store struct {
	Users     *Collection[model.UserRecord]
	Employees *Collection[model.EmployeeRecord]
}

func NewStore() *Store {
	return &Store{
		Users:     NewCollection[model.UserRecord](),
		Employees: NewCollection[model.EmployeeRecord](),
	}
}
