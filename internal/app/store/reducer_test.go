package store

import (
	"testing"

	"github.com/sauravjha/registrar/internal/app/models"
)

func intPtr(v int) *int { return &v }

// fixtureState builds a small consistent data set: two course types, two
// courses, two offerings and registrations against the first offering.
func fixtureState() State {
	state := NewState()
	state.CourseTypes = []models.CourseType{
		{ID: "ct1", Name: "Group"},
		{ID: "ct2", Name: "Individual"},
	}
	state.Courses = []models.Course{
		{ID: "c1", Name: "Math"},
		{ID: "c2", Name: "English"},
	}
	state.CourseOfferings = []models.CourseOffering{
		{ID: "o1", CourseTypeID: "ct1", CourseID: "c1", DisplayName: "Group - Math", Capacity: intPtr(2)},
		{ID: "o2", CourseTypeID: "ct2", CourseID: "c2", DisplayName: "Individual - English"},
	}
	state.Students = []models.Student{
		{ID: "s1", FirstName: "Ada"},
		{ID: "s2", FirstName: "Grace"},
	}
	state.Registrations = []models.Registration{
		{ID: "r1", StudentID: "s1", OfferingID: "o1", Status: models.StatusRegistered},
		{ID: "r2", StudentID: "s2", OfferingID: "o1", Status: models.StatusRegistered},
	}
	return state
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := fixtureState()
	_ = Reduce(before, DeleteCourseType{ID: "ct1"})

	if len(before.CourseTypes) != 2 || len(before.CourseOfferings) != 2 || len(before.Registrations) != 2 {
		t.Fatal("input state was mutated")
	}
}

func TestUpdateCourseRecomputesDisplayNames(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, UpdateCourse{Course: models.Course{ID: "c1", Name: "Mathematics"}})

	if got := next.CourseOfferings[0].DisplayName; got != "Group - Mathematics" {
		t.Fatalf("offering display name = %q, want %q", got, "Group - Mathematics")
	}
	// The unrelated offering keeps its label.
	if got := next.CourseOfferings[1].DisplayName; got != "Individual - English" {
		t.Fatalf("unrelated offering display name changed: %q", got)
	}
}

func TestUpdateCourseTypeRecomputesDisplayNames(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, UpdateCourseType{CourseType: models.CourseType{ID: "ct1", Name: "Seminar"}})

	if got := next.CourseOfferings[0].DisplayName; got != "Seminar - Math" {
		t.Fatalf("offering display name = %q, want %q", got, "Seminar - Math")
	}
}

func TestDeleteCourseTypeCascades(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, DeleteCourseType{ID: "ct1"})

	if len(next.CourseTypes) != 1 || next.CourseTypes[0].ID != "ct2" {
		t.Fatalf("course types after delete: %+v", next.CourseTypes)
	}
	if len(next.CourseOfferings) != 1 || next.CourseOfferings[0].ID != "o2" {
		t.Fatalf("offerings after delete: %+v", next.CourseOfferings)
	}
	if len(next.Registrations) != 0 {
		t.Fatalf("registrations of doomed offering survived: %+v", next.Registrations)
	}
}

func TestDeleteCourseCascades(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, DeleteCourse{ID: "c1"})

	if len(next.Courses) != 1 || next.Courses[0].ID != "c2" {
		t.Fatalf("courses after delete: %+v", next.Courses)
	}
	if len(next.CourseOfferings) != 1 || next.CourseOfferings[0].ID != "o2" {
		t.Fatalf("offerings after delete: %+v", next.CourseOfferings)
	}
	if len(next.Registrations) != 0 {
		t.Fatalf("registrations after delete: %+v", next.Registrations)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, DeleteStudent{ID: "s1"})

	if len(next.Students) != 1 {
		t.Fatalf("students after delete: %+v", next.Students)
	}
	if len(next.Registrations) != 1 || next.Registrations[0].ID != "r2" {
		t.Fatalf("registrations after delete: %+v", next.Registrations)
	}
}

func TestDeleteOfferingCascades(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, DeleteOffering{ID: "o1"})

	if len(next.CourseOfferings) != 1 {
		t.Fatalf("offerings after delete: %+v", next.CourseOfferings)
	}
	if len(next.Registrations) != 0 {
		t.Fatalf("registrations after delete: %+v", next.Registrations)
	}
	// Unreferenced students stay.
	if len(next.Students) != 2 {
		t.Fatalf("students after offering delete: %+v", next.Students)
	}
}

func TestUpdateWithUnknownIDIsNoOp(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, UpdateCourse{Course: models.Course{ID: "missing", Name: "Nope"}})

	if len(next.Courses) != 2 || next.Courses[0].Name != "Math" || next.Courses[1].Name != "English" {
		t.Fatalf("courses changed for unknown id: %+v", next.Courses)
	}
}

func TestToastActions(t *testing.T) {
	state := NewState()

	next := Reduce(state, ShowToast{Toast: Toast{Message: "hi", Type: ToastInfo}})
	if next.UI.Toast == nil || next.UI.Toast.Message != "hi" {
		t.Fatalf("toast not set: %+v", next.UI.Toast)
	}

	next = Reduce(next, HideToast{})
	if next.UI.Toast != nil {
		t.Fatal("toast not cleared")
	}

	// Hiding with no toast present stays a no-op.
	next = Reduce(next, HideToast{})
	if next.UI.Toast != nil {
		t.Fatal("hide of absent toast produced a toast")
	}
}

func TestConfirmDialogActions(t *testing.T) {
	state := NewState()

	next := Reduce(state, ShowConfirmDialog{
		Title:   "Delete Course",
		Message: "Are you sure?",
		Pending: PendingAction{Kind: KindDeleteCourse, ID: "c1"},
	})
	dialog := next.UI.ConfirmDialog
	if !dialog.IsOpen || dialog.Pending == nil || dialog.Pending.ID != "c1" {
		t.Fatalf("dialog not opened: %+v", dialog)
	}

	next = Reduce(next, HideConfirmDialog{})
	if next.UI.ConfirmDialog.IsOpen || next.UI.ConfirmDialog.Pending != nil {
		t.Fatalf("dialog not reset: %+v", next.UI.ConfirmDialog)
	}
}

func TestLoadDataReplacesCollectionsOnly(t *testing.T) {
	state := NewState()
	state.UI.CurrentView = ViewRegistrations
	state.UI.SelectedOfferingID = "o9"

	snapshot := fixtureState().Data()
	next := Reduce(state, LoadData{Snapshot: snapshot})

	if len(next.CourseTypes) != 2 || len(next.Registrations) != 2 {
		t.Fatalf("collections not loaded: %+v", next.Data())
	}
	if next.UI.CurrentView != ViewRegistrations || next.UI.SelectedOfferingID != "o9" {
		t.Fatalf("UI state was touched by LoadData: %+v", next.UI)
	}
}

func TestRegisteredCountIgnoresCancelled(t *testing.T) {
	state := fixtureState()
	state.Registrations = append(state.Registrations,
		models.Registration{ID: "r3", StudentID: "s1", OfferingID: "o1", Status: models.StatusCancelled})

	if got := state.RegisteredCount("o1"); got != 2 {
		t.Fatalf("RegisteredCount = %d, want 2", got)
	}
	if got := state.RegisteredCount("o2"); got != 0 {
		t.Fatalf("RegisteredCount = %d, want 0", got)
	}
}

func TestPersistsByKind(t *testing.T) {
	persisting := []Kind{KindAddCourseType, KindUpdateCourse, KindDeleteRegistration, KindLoadData}
	for _, k := range persisting {
		if !persists(k) {
			t.Errorf("persists(%s) = false, want true", k)
		}
	}
	transient := []Kind{KindSetView, KindShowToast, KindHideToast, KindShowConfirmDialog, KindHideConfirmDialog, KindSetSelectedCourseType}
	for _, k := range transient {
		if persists(k) {
			t.Errorf("persists(%s) = true, want false", k)
		}
	}
}
