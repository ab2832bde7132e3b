package services

import (
	"time"

	"github.com/sauravjha/registrar/internal/app/models"
	"github.com/sauravjha/registrar/internal/app/store"
	"github.com/sauravjha/registrar/internal/pkg/apperrors"
	"github.com/sauravjha/registrar/internal/pkg/idgen"
)

// OfferingService handles course offering operations.
type OfferingService struct {
	store *store.Store
}

// NewOfferingService creates a new offering service instance
func NewOfferingService(st *store.Store) *OfferingService {
	return &OfferingService{store: st}
}

// List returns offerings, optionally filtered by course type.
func (s *OfferingService) List(courseTypeID string) []models.CourseOffering {
	offerings := s.store.State().CourseOfferings
	if courseTypeID == "" {
		return offerings
	}
	filtered := make([]models.CourseOffering, 0, len(offerings))
	for _, o := range offerings {
		if o.CourseTypeID == courseTypeID {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// Available returns offerings a new registration can target: those without a
// capacity, or whose registered count is still below it.
func (s *OfferingService) Available() []models.CourseOffering {
	state := s.store.State()
	available := make([]models.CourseOffering, 0, len(state.CourseOfferings))
	for _, o := range state.CourseOfferings {
		if o.Capacity == nil || state.RegisteredCount(o.ID) < *o.Capacity {
			available = append(available, o)
		}
	}
	return available
}

// Get retrieves an offering by id.
func (s *OfferingService) Get(id string) (*models.CourseOffering, error) {
	o := s.store.State().FindOffering(id)
	if o == nil {
		return nil, apperrors.ErrOfferingNotFound
	}
	return o, nil
}

// validateOffering checks references, pair uniqueness and capacity. excludeID
// is the offering being edited, empty on create.
func (s *OfferingService) validateOffering(state store.State, courseTypeID, courseID string, capacity *int, excludeID string) (*models.CourseType, *models.Course, error) {
	var errors []string

	if courseTypeID == "" {
		errors = append(errors, "Course type is required")
	}
	if courseID == "" {
		errors = append(errors, "Course is required")
	}
	if len(errors) > 0 {
		return nil, nil, apperrors.NewValidationError(errors...)
	}

	courseType := state.FindCourseType(courseTypeID)
	if courseType == nil {
		return nil, nil, apperrors.ErrCourseTypeNotFound
	}
	course := state.FindCourse(courseID)
	if course == nil {
		return nil, nil, apperrors.ErrCourseNotFound
	}

	for _, o := range state.CourseOfferings {
		if o.ID != excludeID && o.CourseTypeID == courseTypeID && o.CourseID == courseID {
			return nil, nil, apperrors.ErrOfferingPairExists
		}
	}

	if capacity != nil && *capacity <= 0 {
		return nil, nil, apperrors.ErrInvalidCapacity
	}

	return courseType, course, nil
}

// Create validates and adds a new offering. The display name is computed
// from the referenced names at creation time. Validation and dispatch run
// atomically so concurrent creates cannot both pass the pair check.
func (s *OfferingService) Create(courseTypeID, courseID string, capacity *int) (models.CourseOffering, error) {
	var offering models.CourseOffering
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		courseType, course, err := s.validateOffering(state, courseTypeID, courseID, capacity, "")
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		offering = models.CourseOffering{
			ID:           idgen.New(),
			CourseTypeID: courseTypeID,
			CourseID:     courseID,
			DisplayName:  store.DisplayName(courseType.Name, course.Name),
			Capacity:     capacity,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		return []store.Action{
			store.AddOffering{Offering: offering},
			store.ShowToast{Toast: store.Toast{
				Message: "Course offering created successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	if err != nil {
		return models.CourseOffering{}, err
	}
	return offering, nil
}

// Update validates and replaces an existing offering.
func (s *OfferingService) Update(id, courseTypeID, courseID string, capacity *int) (models.CourseOffering, error) {
	var updated models.CourseOffering
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		existing := state.FindOffering(id)
		if existing == nil {
			return nil, apperrors.ErrOfferingNotFound
		}

		courseType, course, err := s.validateOffering(state, courseTypeID, courseID, capacity, id)
		if err != nil {
			return nil, err
		}

		updated = *existing
		updated.CourseTypeID = courseTypeID
		updated.CourseID = courseID
		updated.DisplayName = store.DisplayName(courseType.Name, course.Name)
		updated.Capacity = capacity
		updated.UpdatedAt = time.Now().UTC()

		return []store.Action{
			store.UpdateOffering{Offering: updated},
			store.ShowToast{Toast: store.Toast{
				Message: "Course offering updated successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	if err != nil {
		return models.CourseOffering{}, err
	}
	return updated, nil
}

// Delete removes an offering together with its registrations.
func (s *OfferingService) Delete(id string) error {
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		if state.FindOffering(id) == nil {
			return nil, apperrors.ErrOfferingNotFound
		}
		return []store.Action{
			store.DeleteOffering{ID: id},
			store.ShowToast{Toast: store.Toast{
				Message: "Course offering deleted successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	return err
}
