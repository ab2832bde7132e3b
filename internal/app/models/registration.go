package models

import "time"

// RegistrationStatus is the lifecycle state of a registration. Cancellation
// is a status transition, not a removal, so history is kept.
type RegistrationStatus string

const (
	StatusRegistered RegistrationStatus = "registered"
	StatusCancelled  RegistrationStatus = "cancelled"
)

// Registration links a student to a course offering. At most one registration
// with status "registered" may exist per (StudentID, OfferingID) pair at
// creation time; only "registered" rows count toward an offering's capacity.
type Registration struct {
	ID           string             `json:"id"`
	StudentID    string             `json:"studentId"`
	OfferingID   string             `json:"offeringId"`
	RegisteredAt time.Time          `json:"registeredAt"`
	Status       RegistrationStatus `json:"status" example:"registered"`
}
