package services

import (
	"github.com/sauravjha/registrar/internal/app/store"
	"github.com/sauravjha/registrar/internal/pkg/apperrors"
)

// UIService handles the transient UI portion of the state: current view,
// selections, toasts and the confirm-dialog flow. None of these operations
// ever persist anything.
type UIService struct {
	store *store.Store
}

// NewUIService creates a new UI service instance
func NewUIService(st *store.Store) *UIService {
	return &UIService{store: st}
}

// UI returns the current UI state.
func (s *UIService) UI() store.UIState {
	return s.store.State().UI
}

// SetView switches the current view.
func (s *UIService) SetView(view store.View) error {
	switch view {
	case store.ViewCourseTypes, store.ViewCourses, store.ViewOfferings, store.ViewRegistrations:
	default:
		return apperrors.ErrUnknownView
	}
	s.store.Dispatch(store.SetView{View: view})
	return nil
}

// SelectCourseType sets or clears the course type filter.
func (s *UIService) SelectCourseType(id string) {
	s.store.Dispatch(store.SetSelectedCourseType{ID: id})
}

// SelectOffering sets or clears the offering filter.
func (s *UIService) SelectOffering(id string) {
	s.store.Dispatch(store.SetSelectedOffering{ID: id})
}

// ShowToast displays a toast; it auto-dismisses after the configured delay.
func (s *UIService) ShowToast(message string, toastType store.ToastType) {
	switch toastType {
	case store.ToastSuccess, store.ToastError, store.ToastInfo:
	default:
		toastType = store.ToastInfo
	}
	s.store.Dispatch(store.ShowToast{Toast: store.Toast{Message: message, Type: toastType}})
}

// HideToast dismisses the current toast; hiding an absent toast is a no-op.
func (s *UIService) HideToast() {
	s.store.Dispatch(store.HideToast{})
}

// ShowConfirmDialog opens the confirmation prompt with a tagged pending
// action to run on confirm.
func (s *UIService) ShowConfirmDialog(title, message string, pending store.PendingAction) error {
	switch pending.Kind {
	case store.KindDeleteCourseType, store.KindDeleteCourse, store.KindDeleteOffering,
		store.KindDeleteStudent, store.KindDeleteRegistration, store.KindCancelRegistration:
	default:
		return apperrors.NewBadRequestError("unsupported pending action kind")
	}
	s.store.Dispatch(store.ShowConfirmDialog{Title: title, Message: message, Pending: pending})
	return nil
}

// HideConfirmDialog dismisses the prompt without running the pending action.
func (s *UIService) HideConfirmDialog() {
	s.store.Dispatch(store.HideConfirmDialog{})
}

// Confirm runs the pending action and closes the dialog, then shows the
// matching success toast the way the original flow did. No toast appears
// when the pending target had already disappeared and nothing ran.
func (s *UIService) Confirm() error {
	_, resolved, err := s.store.Confirm()
	if err != nil {
		return err
	}

	if resolved != nil {
		if message := confirmToast(resolved.Kind); message != "" {
			s.store.Dispatch(store.ShowToast{Toast: store.Toast{
				Message: message,
				Type:    store.ToastSuccess,
			}})
		}
	}
	return nil
}

func confirmToast(kind store.Kind) string {
	switch kind {
	case store.KindDeleteCourseType:
		return "Course type deleted successfully"
	case store.KindDeleteCourse:
		return "Course deleted successfully"
	case store.KindDeleteOffering:
		return "Course offering deleted successfully"
	case store.KindDeleteStudent:
		return "Student deleted successfully"
	case store.KindDeleteRegistration:
		return "Registration deleted successfully"
	case store.KindCancelRegistration:
		return "Registration cancelled successfully"
	default:
		return ""
	}
}
