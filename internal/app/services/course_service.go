package services

import (
	"strings"
	"time"

	"github.com/sauravjha/registrar/internal/app/models"
	"github.com/sauravjha/registrar/internal/app/store"
	"github.com/sauravjha/registrar/internal/pkg/apperrors"
	"github.com/sauravjha/registrar/internal/pkg/idgen"
	"github.com/sauravjha/registrar/internal/pkg/validation"
)

// CourseService handles course operations.
type CourseService struct {
	store *store.Store
}

// NewCourseService creates a new course service instance
func NewCourseService(st *store.Store) *CourseService {
	return &CourseService{store: st}
}

// List returns all courses.
func (s *CourseService) List() []models.Course {
	return s.store.State().Courses
}

// Get retrieves a course by id.
func (s *CourseService) Get(id string) (*models.Course, error) {
	c := s.store.State().FindCourse(id)
	if c == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

// Create validates and adds a new course. Validation and dispatch run
// atomically so concurrent creates cannot both pass the uniqueness check.
func (s *CourseService) Create(name string) (models.Course, error) {
	var course models.Course
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		existingNames := make([]string, 0, len(state.Courses))
		for _, c := range state.Courses {
			existingNames = append(existingNames, c.Name)
		}

		if result := validation.ValidateCourse(name, existingNames); !result.IsValid {
			return nil, apperrors.NewValidationError(result.Errors...)
		}

		now := time.Now().UTC()
		course = models.Course{
			ID:        idgen.New(),
			Name:      strings.TrimSpace(name),
			CreatedAt: now,
			UpdatedAt: now,
		}

		return []store.Action{
			store.AddCourse{Course: course},
			store.ShowToast{Toast: store.Toast{
				Message: "Course created successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	if err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// Update validates and replaces an existing course. Dependent offering
// display names are recomputed by the reducer.
func (s *CourseService) Update(id, name string) (models.Course, error) {
	var updated models.Course
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		existing := state.FindCourse(id)
		if existing == nil {
			return nil, apperrors.ErrCourseNotFound
		}

		// Exclude the record being edited from its own uniqueness check.
		existingNames := make([]string, 0, len(state.Courses))
		for _, c := range state.Courses {
			if c.ID != id {
				existingNames = append(existingNames, c.Name)
			}
		}

		if result := validation.ValidateCourse(name, existingNames); !result.IsValid {
			return nil, apperrors.NewValidationError(result.Errors...)
		}

		updated = *existing
		updated.Name = strings.TrimSpace(name)
		updated.UpdatedAt = time.Now().UTC()

		return []store.Action{
			store.UpdateCourse{Course: updated},
			store.ShowToast{Toast: store.Toast{
				Message: "Course updated successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	if err != nil {
		return models.Course{}, err
	}
	return updated, nil
}

// Delete removes a course together with its offerings and their
// registrations.
func (s *CourseService) Delete(id string) error {
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		if state.FindCourse(id) == nil {
			return nil, apperrors.ErrCourseNotFound
		}
		return []store.Action{
			store.DeleteCourse{ID: id},
			store.ShowToast{Toast: store.Toast{
				Message: "Course deleted successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	return err
}
