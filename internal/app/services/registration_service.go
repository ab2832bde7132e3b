package services

import (
	"time"

	"github.com/sauravjha/registrar/internal/app/models"
	"github.com/sauravjha/registrar/internal/app/store"
	"github.com/sauravjha/registrar/internal/pkg/apperrors"
	"github.com/sauravjha/registrar/internal/pkg/idgen"
)

// RegistrationService handles registration operations: registering students
// against offerings, cancellation and removal.
type RegistrationService struct {
	store *store.Store
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(st *store.Store) *RegistrationService {
	return &RegistrationService{store: st}
}

// List returns registrations, optionally filtered by offering.
func (s *RegistrationService) List(offeringID string) []models.Registration {
	registrations := s.store.State().Registrations
	if offeringID == "" {
		return registrations
	}
	filtered := make([]models.Registration, 0, len(registrations))
	for _, r := range registrations {
		if r.OfferingID == offeringID {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Get retrieves a registration by id.
func (s *RegistrationService) Get(id string) (*models.Registration, error) {
	r := s.store.State().FindRegistration(id)
	if r == nil {
		return nil, apperrors.ErrRegistrationNotFound
	}
	return r, nil
}

// RegisterInput describes a registration request: an offering plus either an
// existing student id or the details of a student to create inline.
type RegisterInput struct {
	OfferingID string
	StudentID  string // existing student; empty means create one
	FirstName  string
	LastName   string
	Email      string
	Phone      string
}

// Register creates a registration with status "registered". The target
// offering must not be at capacity and the student must not already hold a
// registered row for it. When no student id is given, a student is created
// from the provided details in the same step. The checks and the dispatch
// share one critical section; two concurrent requests racing for the last
// seat cannot both get in.
func (s *RegistrationService) Register(input RegisterInput) (models.Registration, error) {
	var registration models.Registration
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		if input.OfferingID == "" {
			return nil, apperrors.NewValidationError("Please select a course offering")
		}
		offering := state.FindOffering(input.OfferingID)
		if offering == nil {
			return nil, apperrors.ErrOfferingNotFound
		}

		if offering.Capacity != nil && state.RegisteredCount(offering.ID) >= *offering.Capacity {
			return nil, apperrors.ErrOfferingAtCapacity
		}

		var actions []store.Action

		studentID := input.StudentID
		if studentID != "" {
			if state.FindStudent(studentID) == nil {
				return nil, apperrors.ErrStudentNotFound
			}
			for _, r := range state.Registrations {
				if r.StudentID == studentID && r.OfferingID == offering.ID && r.Status == models.StatusRegistered {
					return nil, apperrors.ErrDuplicateRegistration
				}
			}
		} else {
			student, err := buildStudent(input.FirstName, input.LastName, input.Email, input.Phone)
			if err != nil {
				return nil, err
			}
			actions = append(actions, store.AddStudent{Student: student})
			studentID = student.ID
		}

		registration = models.Registration{
			ID:           idgen.New(),
			StudentID:    studentID,
			OfferingID:   offering.ID,
			RegisteredAt: time.Now().UTC(),
			Status:       models.StatusRegistered,
		}

		return append(actions,
			store.AddRegistration{Registration: registration},
			store.ShowToast{Toast: store.Toast{
				Message: "Student registered successfully for " + offering.DisplayName,
				Type:    store.ToastSuccess,
			}},
		), nil
	})
	if err != nil {
		return models.Registration{}, err
	}
	return registration, nil
}

// Cancel transitions a registration to status "cancelled". The row is kept.
func (s *RegistrationService) Cancel(id string) (models.Registration, error) {
	var cancelled models.Registration
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		existing := state.FindRegistration(id)
		if existing == nil {
			return nil, apperrors.ErrRegistrationNotFound
		}
		if existing.Status == models.StatusCancelled {
			return nil, apperrors.ErrRegistrationCancelled
		}

		cancelled = *existing
		cancelled.Status = models.StatusCancelled

		return []store.Action{
			store.UpdateRegistration{Registration: cancelled},
			store.ShowToast{Toast: store.Toast{
				Message: "Registration cancelled successfully",
				Type:    store.ToastSuccess,
			}},
		}, nil
	})
	if err != nil {
		return models.Registration{}, err
	}
	return cancelled, nil
}

// Delete removes a registration outright, distinct from cancellation.
func (s *RegistrationService) Delete(id string) error {
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		if state.FindRegistration(id) == nil {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return []store.Action{store.DeleteRegistration{ID: id}}, nil
	})
	return err
}
