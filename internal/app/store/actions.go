package store

import (
	"strings"

	"github.com/sauravjha/registrar/internal/app/models"
)

// Kind tags an action. The string values double as the persistence switch:
// ADD_/UPDATE_/DELETE_ prefixed kinds and LOAD_DATA trigger a snapshot save,
// UI kinds never do.
type Kind string

const (
	KindSetView               Kind = "SET_VIEW"
	KindSetSelectedCourseType Kind = "SET_SELECTED_COURSE_TYPE"
	KindSetSelectedOffering   Kind = "SET_SELECTED_OFFERING"
	KindShowToast             Kind = "SHOW_TOAST"
	KindHideToast             Kind = "HIDE_TOAST"
	KindShowConfirmDialog     Kind = "SHOW_CONFIRM_DIALOG"
	KindHideConfirmDialog     Kind = "HIDE_CONFIRM_DIALOG"

	KindAddCourseType    Kind = "ADD_COURSE_TYPE"
	KindUpdateCourseType Kind = "UPDATE_COURSE_TYPE"
	KindDeleteCourseType Kind = "DELETE_COURSE_TYPE"

	KindAddCourse    Kind = "ADD_COURSE"
	KindUpdateCourse Kind = "UPDATE_COURSE"
	KindDeleteCourse Kind = "DELETE_COURSE"

	KindAddOffering    Kind = "ADD_OFFERING"
	KindUpdateOffering Kind = "UPDATE_OFFERING"
	KindDeleteOffering Kind = "DELETE_OFFERING"

	KindAddStudent    Kind = "ADD_STUDENT"
	KindUpdateStudent Kind = "UPDATE_STUDENT"
	KindDeleteStudent Kind = "DELETE_STUDENT"

	KindAddRegistration    Kind = "ADD_REGISTRATION"
	KindUpdateRegistration Kind = "UPDATE_REGISTRATION"
	KindDeleteRegistration Kind = "DELETE_REGISTRATION"

	KindLoadData Kind = "LOAD_DATA"

	// KindCancelRegistration only appears as a pending confirm-dialog value.
	// Confirming resolves it to an UPDATE_REGISTRATION with status cancelled.
	KindCancelRegistration Kind = "CANCEL_REGISTRATION"
)

// persists reports whether an action of the given kind mutates the data
// collections and therefore triggers a save.
func persists(k Kind) bool {
	s := string(k)
	return strings.HasPrefix(s, "ADD_") ||
		strings.HasPrefix(s, "UPDATE_") ||
		strings.HasPrefix(s, "DELETE_") ||
		k == KindLoadData
}

// Action is a tagged mutation dispatched against the store. The set of
// actions is closed; all implementations live in this package.
type Action interface {
	Kind() Kind
	isAction()
}

// UI actions

type SetView struct{ View View }

type SetSelectedCourseType struct{ ID string }

type SetSelectedOffering struct{ ID string }

type ShowToast struct{ Toast Toast }

type HideToast struct{}

type ShowConfirmDialog struct {
	Title   string
	Message string
	Pending PendingAction
}

type HideConfirmDialog struct{}

// Data actions carry the already-validated record with id and timestamps
// pre-populated by the caller; the store trusts its callers and does not
// re-validate.

type AddCourseType struct{ CourseType models.CourseType }

type UpdateCourseType struct{ CourseType models.CourseType }

type DeleteCourseType struct{ ID string }

type AddCourse struct{ Course models.Course }

type UpdateCourse struct{ Course models.Course }

type DeleteCourse struct{ ID string }

type AddOffering struct{ Offering models.CourseOffering }

type UpdateOffering struct{ Offering models.CourseOffering }

type DeleteOffering struct{ ID string }

type AddStudent struct{ Student models.Student }

type UpdateStudent struct{ Student models.Student }

type DeleteStudent struct{ ID string }

type AddRegistration struct{ Registration models.Registration }

type UpdateRegistration struct{ Registration models.Registration }

type DeleteRegistration struct{ ID string }

// LoadData replaces all five data collections wholesale, leaving UI state
// untouched. Used at startup to hydrate from storage.
type LoadData struct{ Snapshot models.Snapshot }

func (SetView) Kind() Kind               { return KindSetView }
func (SetSelectedCourseType) Kind() Kind { return KindSetSelectedCourseType }
func (SetSelectedOffering) Kind() Kind   { return KindSetSelectedOffering }
func (ShowToast) Kind() Kind             { return KindShowToast }
func (HideToast) Kind() Kind             { return KindHideToast }
func (ShowConfirmDialog) Kind() Kind     { return KindShowConfirmDialog }
func (HideConfirmDialog) Kind() Kind     { return KindHideConfirmDialog }
func (AddCourseType) Kind() Kind         { return KindAddCourseType }
func (UpdateCourseType) Kind() Kind      { return KindUpdateCourseType }
func (DeleteCourseType) Kind() Kind      { return KindDeleteCourseType }
func (AddCourse) Kind() Kind             { return KindAddCourse }
func (UpdateCourse) Kind() Kind          { return KindUpdateCourse }
func (DeleteCourse) Kind() Kind          { return KindDeleteCourse }
func (AddOffering) Kind() Kind           { return KindAddOffering }
func (UpdateOffering) Kind() Kind        { return KindUpdateOffering }
func (DeleteOffering) Kind() Kind        { return KindDeleteOffering }
func (AddStudent) Kind() Kind            { return KindAddStudent }
func (UpdateStudent) Kind() Kind         { return KindUpdateStudent }
func (DeleteStudent) Kind() Kind         { return KindDeleteStudent }
func (AddRegistration) Kind() Kind       { return KindAddRegistration }
func (UpdateRegistration) Kind() Kind    { return KindUpdateRegistration }
func (DeleteRegistration) Kind() Kind    { return KindDeleteRegistration }
func (LoadData) Kind() Kind              { return KindLoadData }

func (SetView) isAction()               {}
func (SetSelectedCourseType) isAction() {}
func (SetSelectedOffering) isAction()   {}
func (ShowToast) isAction()             {}
func (HideToast) isAction()             {}
func (ShowConfirmDialog) isAction()     {}
func (HideConfirmDialog) isAction()     {}
func (AddCourseType) isAction()         {}
func (UpdateCourseType) isAction()      {}
func (DeleteCourseType) isAction()      {}
func (AddCourse) isAction()             {}
func (UpdateCourse) isAction()          {}
func (DeleteCourse) isAction()          {}
func (AddOffering) isAction()           {}
func (UpdateOffering) isAction()        {}
func (DeleteOffering) isAction()        {}
func (AddStudent) isAction()            {}
func (UpdateStudent) isAction()         {}
func (DeleteStudent) isAction()         {}
func (AddRegistration) isAction()       {}
func (UpdateRegistration) isAction()    {}
func (DeleteRegistration) isAction()    {}
func (LoadData) isAction()              {}
