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

// CourseTypeService handles course type operations.
type CourseTypeService struct {
	store *store.Store
}

// NewCourseTypeService creates a new course type service instance
func NewCourseTypeService(st *store.Store) *CourseTypeService {
	return &CourseTypeService{store: st}
}

// List returns all course types.
func (s *CourseTypeService) List() []models.CourseType {
	return s.store.State().CourseTypes
}

// Get retrieves a course type by id.
func (s *CourseTypeService) Get(id string) (*models.CourseType, error) {
	ct := s.store.State().FindCourseType(id)
	if ct == nil {
		return nil, apperrors.ErrCourseTypeNotFound
	}
	return ct, nil
}

// Create validates and adds a new course type. Validation and dispatch run
// atomically so concurrent creates cannot both pass the uniqueness check.
func (s *CourseTypeService) Create(name string) (models.CourseType, error) {
	var courseType models.CourseType
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		existingNames := make([]string, 0, len(state.CourseTypes))
		for _, ct := range state.CourseTypes {
			existingNames = append(existingNames, ct.Name)
		}

		if result := validation.ValidateCourseType(name, existingNames); !result.IsValid {
			return nil, apperrors.NewValidationError(result.Errors...)
		}

		now := time.Now().UTC()
		courseType = models.CourseType{
			ID:        idgen.New(),
			Name:      strings.TrimSpace(name),
			CreatedAt: now,
			UpdatedAt: now,
		}

		return []store.Action{
			store.AddCourseType{CourseType: courseType},
			store.ShowToast{Toast: store.Toast{
				Message: "Course type created successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	if err != nil {
		return models.CourseType{}, err
	}
	return courseType, nil
}

// Update validates and replaces an existing course type. Dependent offering
// display names are recomputed by the reducer.
func (s *CourseTypeService) Update(id, name string) (models.CourseType, error) {
	var updated models.CourseType
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		existing := state.FindCourseType(id)
		if existing == nil {
			return nil, apperrors.ErrCourseTypeNotFound
		}

		// Exclude the record being edited from its own uniqueness check.
		existingNames := make([]string, 0, len(state.CourseTypes))
		for _, ct := range state.CourseTypes {
			if ct.ID != id {
				existingNames = append(existingNames, ct.Name)
			}
		}

		if result := validation.ValidateCourseType(name, existingNames); !result.IsValid {
			return nil, apperrors.NewValidationError(result.Errors...)
		}

		updated = *existing
		updated.Name = strings.TrimSpace(name)
		updated.UpdatedAt = time.Now().UTC()

		return []store.Action{
			store.UpdateCourseType{CourseType: updated},
			store.ShowToast{Toast: store.Toast{
				Message: "Course type updated successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	if err != nil {
		return models.CourseType{}, err
	}
	return updated, nil
}

// Delete removes a course type together with its offerings and their
// registrations.
func (s *CourseTypeService) Delete(id string) error {
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		if state.FindCourseType(id) == nil {
			return nil, apperrors.ErrCourseTypeNotFound
		}
		return []store.Action{
			store.DeleteCourseType{ID: id},
			store.ShowToast{Toast: store.Toast{
				Message: "Course type deleted successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	return err
}
