// Package store holds the application state: the five normalized data
// collections plus transient UI state. All mutation goes through a single
// dispatch entry point that reduces tagged actions into brand-new state
// values; nothing is modified in place, so readers always observe a
// consistent snapshot.
package store

import "github.com/sauravjha/registrar/internal/app/models"

// View identifies the list the operator is currently looking at.
type View string

const (
	ViewCourseTypes   View = "course-types"
	ViewCourses       View = "courses"
	ViewOfferings     View = "offerings"
	ViewRegistrations View = "registrations"
)

// ToastType is the visual flavor of a toast notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

// Toast is a transient notification. It auto-dismisses after a fixed delay
// unless a newer toast preempts it.
type Toast struct {
	Message string    `json:"message"`
	Type    ToastType `json:"type"`
}

// PendingAction is the tagged value held by an open confirm dialog. The
// confirm handler resolves it into the corresponding action; no callbacks
// live in state.
type PendingAction struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id"`
}

// ConfirmDialog models the confirmation prompt shown before destructive
// operations.
type ConfirmDialog struct {
	IsOpen  bool           `json:"isOpen"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Pending *PendingAction `json:"pending,omitempty"`
}

// UIState is the transient, never-persisted part of the state tree.
type UIState struct {
	SelectedCourseTypeID string        `json:"selectedCourseTypeId,omitempty"`
	SelectedOfferingID   string        `json:"selectedOfferingId,omitempty"`
	CurrentView          View          `json:"currentView"`
	Toast                *Toast        `json:"toast,omitempty"`
	ConfirmDialog        ConfirmDialog `json:"confirmDialog"`
}

// State is the full application state tree. It is a value type: dispatching
// produces a new State rather than mutating the previous one.
type State struct {
	CourseTypes     []models.CourseType     `json:"courseTypes"`
	Courses         []models.Course         `json:"courses"`
	CourseOfferings []models.CourseOffering `json:"courseOfferings"`
	Students        []models.Student        `json:"students"`
	Registrations   []models.Registration   `json:"registrations"`
	UI              UIState                 `json:"ui"`
}

// NewState returns the initial state: empty collections, course types view.
func NewState() State {
	return State{
		UI: UIState{CurrentView: ViewCourseTypes},
	}
}

// Data extracts the persistable portion of the state. UI state is excluded
// by construction.
func (s State) Data() models.Snapshot {
	return models.Snapshot{
		CourseTypes:     s.CourseTypes,
		Courses:         s.Courses,
		CourseOfferings: s.CourseOfferings,
		Students:        s.Students,
		Registrations:   s.Registrations,
	}
}

// RegisteredCount returns the number of registrations with status
// "registered" for the given offering. Cancelled rows do not count.
func (s State) RegisteredCount(offeringID string) int {
	count := 0
	for _, r := range s.Registrations {
		if r.OfferingID == offeringID && r.Status == models.StatusRegistered {
			count++
		}
	}
	return count
}

// FindCourseType returns the course type with the given id, or nil.
func (s State) FindCourseType(id string) *models.CourseType {
	for i := range s.CourseTypes {
		if s.CourseTypes[i].ID == id {
			ct := s.CourseTypes[i]
			return &ct
		}
	}
	return nil
}

// FindCourse returns the course with the given id, or nil.
func (s State) FindCourse(id string) *models.Course {
	for i := range s.Courses {
		if s.Courses[i].ID == id {
			c := s.Courses[i]
			return &c
		}
	}
	return nil
}

// FindOffering returns the offering with the given id, or nil.
func (s State) FindOffering(id string) *models.CourseOffering {
	for i := range s.CourseOfferings {
		if s.CourseOfferings[i].ID == id {
			o := s.CourseOfferings[i]
			return &o
		}
	}
	return nil
}

// FindStudent returns the student with the given id, or nil.
func (s State) FindStudent(id string) *models.Student {
	for i := range s.Students {
		if s.Students[i].ID == id {
			st := s.Students[i]
			return &st
		}
	}
	return nil
}

// FindRegistration returns the registration with the given id, or nil.
func (s State) FindRegistration(id string) *models.Registration {
	for i := range s.Registrations {
		if s.Registrations[i].ID == id {
			r := s.Registrations[i]
			return &r
		}
	}
	return nil
}
