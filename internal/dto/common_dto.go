package dto

import "github.com/google/uuid"

type RecordURI struct {
	ID uuid.UUID `uri:"id" binding:"required"`
}

type HomeAction struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type HomeView struct {
	Title   string       `json:"title"`
	Actions []HomeAction `json:"actions"`
}

type NavigateResponse struct {
	Path string `json:"path"`
}
