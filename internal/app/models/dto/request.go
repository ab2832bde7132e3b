package dto

// CreateCourseTypeRequest is the payload for creating or renaming a course
// type. The domain rules (trim, uniqueness) live in the service; the binding
// tags only reject malformed payloads early.
type CreateCourseTypeRequest struct {
	Name string `json:"name" binding:"required" example:"Group"`
}

// CreateCourseRequest is the payload for creating or renaming a course.
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required" example:"Math"`
}

// OfferingRequest is the payload for creating or updating an offering.
// Capacity is optional; when present it must be positive.
type OfferingRequest struct {
	CourseTypeID string `json:"courseTypeId" binding:"required"`
	CourseID     string `json:"courseId" binding:"required"`
	Capacity     *int   `json:"capacity,omitempty"`
}

// StudentRequest is the payload for creating or updating a student.
type StudentRequest struct {
	FirstName string `json:"firstName" binding:"required" example:"Ada"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// RegisterRequest registers a student against an offering: either an
// existing student by id, or a new student created inline from the name and
// contact fields.
type RegisterRequest struct {
	OfferingID string `json:"offeringId" binding:"required"`
	StudentID  string `json:"studentId,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// SetViewRequest switches the current view.
type SetViewRequest struct {
	View string `json:"view" binding:"required" example:"offerings"`
}

// SelectionRequest sets or clears (empty id) a list filter.
type SelectionRequest struct {
	ID string `json:"id"`
}

// ToastRequest displays a toast notification.
type ToastRequest struct {
	Message string `json:"message" binding:"required"`
	Type    string `json:"type,omitempty" example:"success"`
}

// ConfirmDialogRequest opens the confirmation prompt with a tagged pending
// action.
type ConfirmDialogRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Kind    string `json:"kind" binding:"required" example:"DELETE_COURSE_TYPE"`
	ID      string `json:"id" binding:"required"`
}
