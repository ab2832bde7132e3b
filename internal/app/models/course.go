package models

import "time"

// Course represents a subject that can be offered (e.g. English, Math).
// Names are unique within the collection, compared trimmed and case-insensitively.
type Course struct {
	ID        string    `json:"id" example:"4f2a7c1e"`
	Name      string    `json:"name" example:"English"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
