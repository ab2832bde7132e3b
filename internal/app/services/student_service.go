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

// StudentService handles student operations.
type StudentService struct {
	store *store.Store
}

// NewStudentService creates a new student service instance
func NewStudentService(st *store.Store) *StudentService {
	return &StudentService{store: st}
}

// List returns all students.
func (s *StudentService) List() []models.Student {
	return s.store.State().Students
}

// Get retrieves a student by id.
func (s *StudentService) Get(id string) (*models.Student, error) {
	st := s.store.State().FindStudent(id)
	if st == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

// buildStudent validates the fields and returns a student record with a
// fresh id and timestamps, without dispatching. Optional fields are stored
// trimmed; empty optional fields stay empty.
func buildStudent(firstName, lastName, email, phone string) (models.Student, error) {
	if result := validation.ValidateStudent(firstName, lastName, email, phone); !result.IsValid {
		return models.Student{}, apperrors.NewValidationError(result.Errors...)
	}

	now := time.Now().UTC()
	return models.Student{
		ID:        idgen.New(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Create validates and adds a new student.
func (s *StudentService) Create(firstName, lastName, email, phone string) (models.Student, error) {
	var student models.Student
	_, err := s.store.Update(func(store.State) ([]store.Action, error) {
		var err error
		student, err = buildStudent(firstName, lastName, email, phone)
		if err != nil {
			return nil, err
		}
		return []store.Action{store.AddStudent{Student: student}}, nil
	})
	if err != nil {
		return models.Student{}, err
	}
	return student, nil
}

// Update validates and replaces an existing student.
func (s *StudentService) Update(id, firstName, lastName, email, phone string) (models.Student, error) {
	var updated models.Student
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		existing := state.FindStudent(id)
		if existing == nil {
			return nil, apperrors.ErrStudentNotFound
		}

		if result := validation.ValidateStudent(firstName, lastName, email, phone); !result.IsValid {
			return nil, apperrors.NewValidationError(result.Errors...)
		}

		updated = *existing
		updated.FirstName = strings.TrimSpace(firstName)
		updated.LastName = strings.TrimSpace(lastName)
		updated.Email = strings.TrimSpace(email)
		updated.Phone = strings.TrimSpace(phone)
		updated.UpdatedAt = time.Now().UTC()

		return []store.Action{store.UpdateStudent{Student: updated}}, nil
	})
	if err != nil {
		return models.Student{}, err
	}
	return updated, nil
}

// Delete removes a student together with their registrations.
func (s *StudentService) Delete(id string) error {
	_, err := s.store.Update(func(state store.State) ([]store.Action, error) {
		if state.FindStudent(id) == nil {
			return nil, apperrors.ErrStudentNotFound
		}
		return []store.Action{store.DeleteStudent{ID: id}}, nil
	})
	return err
}
