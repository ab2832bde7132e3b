package services

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sauravjha/registrar/internal/app/store"
	"github.com/sauravjha/registrar/internal/pkg/apperrors"
	"github.com/sauravjha/registrar/internal/storage"
)

// testEnv wires every service against one store backed by an in-memory slot.
type testEnv struct {
	store         *store.Store
	slot          *storage.MemorySlot
	courseTypes   *CourseTypeService
	courses       *CourseService
	offerings     *OfferingService
	students      *StudentService
	registrations *RegistrationService
	ui            *UIService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	slot := storage.NewMemorySlot()
	st := store.New(slot, zerolog.Nop())
	t.Cleanup(st.Close)

	return &testEnv{
		store:         st,
		slot:          slot,
		courseTypes:   NewCourseTypeService(st),
		courses:       NewCourseService(st),
		offerings:     NewOfferingService(st),
		students:      NewStudentService(st),
		registrations: NewRegistrationService(st),
		ui:            NewUIService(st),
	}
}

func intPtr(v int) *int { return &v }

func TestCourseTypeCreateTrimsAndToasts(t *testing.T) {
	env := newTestEnv(t)

	ct, err := env.courseTypes.Create("  Individual  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ct.Name != "Individual" {
		t.Fatalf("name = %q, want trimmed", ct.Name)
	}
	if ct.ID == "" {
		t.Fatal("missing generated id")
	}

	toast := env.store.State().UI.Toast
	if toast == nil || toast.Message != "Course type created successfully" || toast.Type != store.ToastSuccess {
		t.Fatalf("toast = %+v", toast)
	}
}

func TestCourseTypeDuplicateNameRejected(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.courseTypes.Create("Group"); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := env.courseTypes.Create(" group ")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) || verr.Messages[0] != "Course type name must be unique" {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestCourseTypeUpdateExcludesOwnName(t *testing.T) {
	env := newTestEnv(t)
	ct, err := env.courseTypes.Create("Group")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Re-saving under its own name must not collide with itself.
	if _, err := env.courseTypes.Update(ct.ID, "Group"); err != nil {
		t.Fatalf("update with own name: %v", err)
	}
	// But colliding with a sibling still fails.
	if _, err := env.courseTypes.Create("Individual"); err != nil {
		t.Fatalf("create sibling: %v", err)
	}
	if _, err := env.courseTypes.Update(ct.ID, "Individual"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected uniqueness failure, got %v", err)
	}
}

func TestCourseRenameUpdatesOfferingDisplayName(t *testing.T) {
	env := newTestEnv(t)
	ct, _ := env.courseTypes.Create("Group")
	course, _ := env.courses.Create("Math")
	offering, err := env.offerings.Create(ct.ID, course.ID, nil)
	if err != nil {
		t.Fatalf("create offering: %v", err)
	}
	if offering.DisplayName != "Group - Math" {
		t.Fatalf("display name = %q", offering.DisplayName)
	}

	if _, err := env.courses.Update(course.ID, "Mathematics"); err != nil {
		t.Fatalf("rename course: %v", err)
	}

	got, err := env.offerings.Get(offering.ID)
	if err != nil {
		t.Fatalf("get offering: %v", err)
	}
	if got.DisplayName != "Group - Mathematics" {
		t.Fatalf("display name after rename = %q", got.DisplayName)
	}
}

func TestOfferingPairUniqueness(t *testing.T) {
	env := newTestEnv(t)
	ct, _ := env.courseTypes.Create("Group")
	course, _ := env.courses.Create("Math")
	if _, err := env.offerings.Create(ct.ID, course.ID, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := env.offerings.Create(ct.ID, course.ID, nil); !errors.Is(err, apperrors.ErrOfferingPairExists) {
		t.Fatalf("err = %v, want ErrOfferingPairExists", err)
	}
}

func TestOfferingUpdateKeepsOwnPair(t *testing.T) {
	env := newTestEnv(t)
	ct, _ := env.courseTypes.Create("Group")
	course, _ := env.courses.Create("Math")
	offering, err := env.offerings.Create(ct.ID, course.ID, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Updating an offering onto its own pair is allowed.
	if _, err := env.offerings.Update(offering.ID, ct.ID, course.ID, intPtr(8)); err != nil {
		t.Fatalf("update onto own pair: %v", err)
	}
	got, _ := env.offerings.Get(offering.ID)
	if got.Capacity == nil || *got.Capacity != 8 {
		t.Fatalf("capacity not updated: %+v", got.Capacity)
	}
}

func TestOfferingInvalidReferencesAndCapacity(t *testing.T) {
	env := newTestEnv(t)
	ct, _ := env.courseTypes.Create("Group")
	course, _ := env.courses.Create("Math")

	if _, err := env.offerings.Create("missing", course.ID, nil); !errors.Is(err, apperrors.ErrCourseTypeNotFound) {
		t.Fatalf("err = %v, want ErrCourseTypeNotFound", err)
	}
	if _, err := env.offerings.Create(ct.ID, "missing", nil); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
	if _, err := env.offerings.Create(ct.ID, course.ID, intPtr(0)); !errors.Is(err, apperrors.ErrInvalidCapacity) {
		t.Fatalf("err = %v, want ErrInvalidCapacity", err)
	}
}

func TestRegisterInlineStudent(t *testing.T) {
	env := newTestEnv(t)
	ct, _ := env.courseTypes.Create("Individual")
	course, _ := env.courses.Create("English")
	offering, _ := env.offerings.Create(ct.ID, course.ID, nil)

	reg, err := env.registrations.Register(RegisterInput{
		OfferingID: offering.ID,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	state := env.store.State()
	if len(state.Students) != 1 || state.Students[0].FirstName != "Ada" {
		t.Fatalf("inline student not created: %+v", state.Students)
	}
	if reg.StudentID != state.Students[0].ID {
		t.Fatal("registration not linked to the created student")
	}
	toast := state.UI.Toast
	if toast == nil || toast.Message != "Student registered successfully for Individual - English" {
		t.Fatalf("toast = %+v", toast)
	}
}

func TestRegisterCapacityEnforcedAndFreedByCancel(t *testing.T) {
	env := newTestEnv(t)
	ct, _ := env.courseTypes.Create("Group")
	course, _ := env.courses.Create("Math")
	offering, _ := env.offerings.Create(ct.ID, course.ID, intPtr(2))

	first, err := env.registrations.Register(RegisterInput{OfferingID: offering.ID, FirstName: "Ada"})
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := env.registrations.Register(RegisterInput{OfferingID: offering.ID, FirstName: "Grace"}); err != nil {
		t.Fatalf("second register: %v", err)
	}

	if _, err := env.registrations.Register(RegisterInput{OfferingID: offering.ID, FirstName: "Edsger"}); !errors.Is(err, apperrors.ErrOfferingAtCapacity) {
		t.Fatalf("err = %v, want ErrOfferingAtCapacity", err)
	}
	// A full offering disappears from the available list.
	if available := env.offerings.Available(); len(available) != 0 {
		t.Fatalf("full offering still listed as available: %+v", available)
	}

	// Cancelling frees a seat without removing the row.
	if _, err := env.registrations.Cancel(first.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if len(env.store.State().Registrations) != 2 {
		t.Fatal("cancel removed the registration row")
	}
	if _, err := env.registrations.Register(RegisterInput{OfferingID: offering.ID, FirstName: "Edsger"}); err != nil {
		t.Fatalf("register after cancel: %v", err)
	}
}

func TestRegisterDuplicateStudentRejected(t *testing.T) {
	env := newTestEnv(t)
	ct, _ := env.courseTypes.Create("Group")
	course, _ := env.courses.Create("Math")
	offering, _ := env.offerings.Create(ct.ID, course.ID, nil)
	student, err := env.students.Create("Ada", "", "", "")
	if err != nil {
		t.Fatalf("create student: %v", err)
	}

	if _, err := env.registrations.Register(RegisterInput{OfferingID: offering.ID, StudentID: student.ID}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := env.registrations.Register(RegisterInput{OfferingID: offering.ID, StudentID: student.ID}); !errors.Is(err, apperrors.ErrDuplicateRegistration) {
		t.Fatalf("err = %v, want ErrDuplicateRegistration", err)
	}
}

func TestConcurrentRegisterNeverOverfills(t *testing.T) {
	env := newTestEnv(t)
	ct, err := env.courseTypes.Create("Group")
	if err != nil {
		t.Fatalf("create course type: %v", err)
	}
	course, err := env.courses.Create("Math")
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	offering, err := env.offerings.Create(ct.ID, course.ID, intPtr(1))
	if err != nil {
		t.Fatalf("create offering: %v", err)
	}

	const attempts = 16
	studentIDs := make([]string, attempts)
	for i := range studentIDs {
		student, err := env.students.Create("Ada", fmt.Sprintf("Lovelace%d", i), "", "")
		if err != nil {
			t.Fatalf("create student %d: %v", i, err)
		}
		studentIDs[i] = student.ID
	}

	var wg sync.WaitGroup
	var registered atomic.Int64
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(studentID string) {
			defer wg.Done()
			_, err := env.registrations.Register(RegisterInput{
				OfferingID: offering.ID,
				StudentID:  studentID,
			})
			switch {
			case err == nil:
				registered.Add(1)
			case errors.Is(err, apperrors.ErrOfferingAtCapacity):
			default:
				t.Errorf("register: %v", err)
			}
		}(studentIDs[i])
	}
	wg.Wait()

	if got := registered.Load(); got != 1 {
		t.Fatalf("registrations that got the single seat = %d, want 1", got)
	}
	if got := env.store.State().RegisteredCount(offering.ID); got != 1 {
		t.Fatalf("capacity-1 offering holds %d registered rows", got)
	}
}

func TestConcurrentCreateKeepsNamesUnique(t *testing.T) {
	env := newTestEnv(t)

	const attempts = 8
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.courseTypes.Create("Group"); err != nil {
				var validationErr *apperrors.ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("create: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	if got := len(env.store.State().CourseTypes); got != 1 {
		t.Fatalf("concurrent creates produced %d course types with the same name", got)
	}
}

func TestCancelAlreadyCancelled(t *testing.T) {
	env := newTestEnv(t)
	ct, _ := env.courseTypes.Create("Group")
	course, _ := env.courses.Create("Math")
	offering, _ := env.offerings.Create(ct.ID, course.ID, nil)
	reg, err := env.registrations.Register(RegisterInput{OfferingID: offering.ID, FirstName: "Ada"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := env.registrations.Cancel(reg.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := env.registrations.Cancel(reg.ID); !errors.Is(err, apperrors.ErrRegistrationCancelled) {
		t.Fatalf("err = %v, want ErrRegistrationCancelled", err)
	}
}

func TestDeleteCourseTypeCascadesThroughService(t *testing.T) {
	env := newTestEnv(t)
	ct, _ := env.courseTypes.Create("Group")
	course, _ := env.courses.Create("Math")
	offering, _ := env.offerings.Create(ct.ID, course.ID, nil)
	if _, err := env.registrations.Register(RegisterInput{OfferingID: offering.ID, FirstName: "Ada"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := env.courseTypes.Delete(ct.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	state := env.store.State()
	if len(state.CourseTypes) != 0 || len(state.CourseOfferings) != 0 || len(state.Registrations) != 0 {
		t.Fatalf("cascade incomplete: %+v", state.Data())
	}
	// The student is untouched by the cascade.
	if len(state.Students) != 1 {
		t.Fatalf("student removed by course type cascade: %+v", state.Students)
	}
}

func TestStudentValidation(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.students.Create("", "", "", ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
	if _, err := env.students.Create("Ada", "", "not-an-email", ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
	if _, err := env.students.Create("Ada", "Lovelace", "ada@example.com", "+1 555 000 1234"); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestUIServiceViewWhitelist(t *testing.T) {
	env := newTestEnv(t)

	if err := env.ui.SetView(store.ViewOfferings); err != nil {
		t.Fatalf("set view: %v", err)
	}
	if got := env.store.State().UI.CurrentView; got != store.ViewOfferings {
		t.Fatalf("view = %s", got)
	}
	if err := env.ui.SetView(store.View("dashboard")); !errors.Is(err, apperrors.ErrUnknownView) {
		t.Fatalf("err = %v, want ErrUnknownView", err)
	}
}

func TestUIServiceConfirmFlow(t *testing.T) {
	env := newTestEnv(t)
	course, _ := env.courses.Create("Math")

	err := env.ui.ShowConfirmDialog("Delete Course", "Are you sure?", store.PendingAction{
		Kind: store.KindDeleteCourse,
		ID:   course.ID,
	})
	if err != nil {
		t.Fatalf("show dialog: %v", err)
	}

	if err := env.ui.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	state := env.store.State()
	if len(state.Courses) != 0 {
		t.Fatalf("course survived confirmed delete: %+v", state.Courses)
	}
	if state.UI.Toast == nil || state.UI.Toast.Message != "Course deleted successfully" {
		t.Fatalf("toast = %+v", state.UI.Toast)
	}
	if state.UI.ConfirmDialog.IsOpen {
		t.Fatal("dialog still open")
	}
}

func TestUIServiceConfirmDanglingTargetShowsNoToast(t *testing.T) {
	env := newTestEnv(t)

	err := env.ui.ShowConfirmDialog("Delete Course", "Are you sure?", store.PendingAction{
		Kind: store.KindDeleteCourse,
		ID:   "gone",
	})
	if err != nil {
		t.Fatalf("show dialog: %v", err)
	}

	if err := env.ui.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	ui := env.store.State().UI
	if ui.ConfirmDialog.IsOpen {
		t.Fatal("dialog still open after dangling confirm")
	}
	if ui.Toast != nil {
		t.Fatalf("success toast shown although nothing ran: %+v", ui.Toast)
	}
}

func TestUIServiceConfirmWithoutDialog(t *testing.T) {
	env := newTestEnv(t)
	if err := env.ui.Confirm(); !errors.Is(err, apperrors.ErrNoPendingAction) {
		t.Fatalf("err = %v, want ErrNoPendingAction", err)
	}
}

func TestUIServiceRejectsUnknownPendingKind(t *testing.T) {
	env := newTestEnv(t)
	err := env.ui.ShowConfirmDialog("Nope", "Nope", store.PendingAction{Kind: store.KindAddCourse, ID: "x"})
	if err == nil {
		t.Fatal("non-destructive pending kind accepted")
	}
}

func TestPersistenceThroughServices(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.courseTypes.Create("Group"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// One save for the data action; the toast must not save.
	if got := env.slot.Saves(); got != 1 {
		t.Fatalf("saves = %d, want 1", got)
	}
	env.ui.SelectCourseType("anything")
	if got := env.slot.Saves(); got != 1 {
		t.Fatalf("selection persisted, saves = %d", got)
	}
}
