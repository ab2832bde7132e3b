package models

import "time"

// CourseOffering pairs a course type with a course. The (CourseTypeID,
// CourseID) combination is unique across the collection. DisplayName is the
// stored projection "<course type name> - <course name>" and is recomputed by
// the reducer whenever either referenced name changes.
type CourseOffering struct {
	ID           string    `json:"id"`
	CourseTypeID string    `json:"courseTypeId"`
	CourseID     string    `json:"courseId"`
	DisplayName  string    `json:"displayName" example:"Individual - English"`
	Capacity     *int      `json:"capacity,omitempty"` // nil means unlimited
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
