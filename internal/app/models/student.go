package models

import "time"

// Student holds contact details for a registered person. Only the first name
// is mandatory; there is no uniqueness constraint on students.
type Student struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName" example:"Ada"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email,omitempty" example:"ada@example.com"`
	Phone     string    `json:"phone,omitempty" example:"+90 555 123 4567"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
