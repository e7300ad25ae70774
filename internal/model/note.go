package model

import "time"

// Note is a single user note as persisted by the store.
// ID and the timestamps are assigned by the repository on creation.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote carries the caller-supplied fields of a note that is about to be created.
// It is validated at the HTTP boundary before it reaches the service.
type NewNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
