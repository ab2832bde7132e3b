package models

import "time"

// CourseType represents a kind of course delivery (e.g. Individual, Group).
// Names are unique within the collection, compared trimmed and case-insensitively.
type CourseType struct {
	ID        string    `json:"id" example:"b1c8f9d2"`
	Name      string    `json:"name" example:"Individual"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
