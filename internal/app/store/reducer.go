package store

import "github.com/sauravjha/registrar/internal/app/models"

// Reduce computes the next state for an action. It is pure: inputs are never
// mutated, collections that change are rebuilt into fresh slices. An action
// referencing an id that no longer exists reduces to a no-op for that part of
// the update.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetView:
		state.UI.CurrentView = a.View
		return state

	case SetSelectedCourseType:
		state.UI.SelectedCourseTypeID = a.ID
		return state

	case SetSelectedOffering:
		state.UI.SelectedOfferingID = a.ID
		return state

	case ShowToast:
		toast := a.Toast
		state.UI.Toast = &toast
		return state

	case HideToast:
		state.UI.Toast = nil
		return state

	case ShowConfirmDialog:
		pending := a.Pending
		state.UI.ConfirmDialog = ConfirmDialog{
			IsOpen:  true,
			Title:   a.Title,
			Message: a.Message,
			Pending: &pending,
		}
		return state

	case HideConfirmDialog:
		state.UI.ConfirmDialog = ConfirmDialog{}
		return state

	case AddCourseType:
		state.CourseTypes = appended(state.CourseTypes, a.CourseType)
		return state

	case UpdateCourseType:
		state.CourseTypes = replacedByID(state.CourseTypes, a.CourseType.ID,
			func(ct models.CourseType) string { return ct.ID }, a.CourseType)
		// Recompute display names for every offering referencing this type.
		state.CourseOfferings = mapped(state.CourseOfferings, func(o models.CourseOffering) models.CourseOffering {
			if o.CourseTypeID == a.CourseType.ID {
				o.DisplayName = DisplayName(a.CourseType.Name, courseName(state.Courses, o.CourseID))
			}
			return o
		})
		return state

	case DeleteCourseType:
		doomed := offeringIDsByCourseType(state.CourseOfferings, a.ID)
		state.CourseTypes = filtered(state.CourseTypes, func(ct models.CourseType) bool { return ct.ID != a.ID })
		state.CourseOfferings = filtered(state.CourseOfferings, func(o models.CourseOffering) bool { return o.CourseTypeID != a.ID })
		state.Registrations = filtered(state.Registrations, func(r models.Registration) bool { return !doomed[r.OfferingID] })
		return state

	case AddCourse:
		state.Courses = appended(state.Courses, a.Course)
		return state

	case UpdateCourse:
		state.Courses = replacedByID(state.Courses, a.Course.ID,
			func(c models.Course) string { return c.ID }, a.Course)
		state.CourseOfferings = mapped(state.CourseOfferings, func(o models.CourseOffering) models.CourseOffering {
			if o.CourseID == a.Course.ID {
				o.DisplayName = DisplayName(courseTypeName(state.CourseTypes, o.CourseTypeID), a.Course.Name)
			}
			return o
		})
		return state

	case DeleteCourse:
		doomed := offeringIDsByCourse(state.CourseOfferings, a.ID)
		state.Courses = filtered(state.Courses, func(c models.Course) bool { return c.ID != a.ID })
		state.CourseOfferings = filtered(state.CourseOfferings, func(o models.CourseOffering) bool { return o.CourseID != a.ID })
		state.Registrations = filtered(state.Registrations, func(r models.Registration) bool { return !doomed[r.OfferingID] })
		return state

	case AddOffering:
		state.CourseOfferings = appended(state.CourseOfferings, a.Offering)
		return state

	case UpdateOffering:
		state.CourseOfferings = replacedByID(state.CourseOfferings, a.Offering.ID,
			func(o models.CourseOffering) string { return o.ID }, a.Offering)
		return state

	case DeleteOffering:
		state.CourseOfferings = filtered(state.CourseOfferings, func(o models.CourseOffering) bool { return o.ID != a.ID })
		state.Registrations = filtered(state.Registrations, func(r models.Registration) bool { return r.OfferingID != a.ID })
		return state

	case AddStudent:
		state.Students = appended(state.Students, a.Student)
		return state

	case UpdateStudent:
		state.Students = replacedByID(state.Students, a.Student.ID,
			func(s models.Student) string { return s.ID }, a.Student)
		return state

	case DeleteStudent:
		state.Students = filtered(state.Students, func(s models.Student) bool { return s.ID != a.ID })
		state.Registrations = filtered(state.Registrations, func(r models.Registration) bool { return r.StudentID != a.ID })
		return state

	case AddRegistration:
		state.Registrations = appended(state.Registrations, a.Registration)
		return state

	case UpdateRegistration:
		state.Registrations = replacedByID(state.Registrations, a.Registration.ID,
			func(r models.Registration) string { return r.ID }, a.Registration)
		return state

	case DeleteRegistration:
		state.Registrations = filtered(state.Registrations, func(r models.Registration) bool { return r.ID != a.ID })
		return state

	case LoadData:
		state.CourseTypes = a.Snapshot.CourseTypes
		state.Courses = a.Snapshot.Courses
		state.CourseOfferings = a.Snapshot.CourseOfferings
		state.Students = a.Snapshot.Students
		state.Registrations = a.Snapshot.Registrations
		return state

	default:
		return state
	}
}

// DisplayName builds the stored offering label from its parts.
func DisplayName(courseTypeName, courseName string) string {
	return courseTypeName + " - " + courseName
}

func courseName(courses []models.Course, id string) string {
	for _, c := range courses {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func courseTypeName(courseTypes []models.CourseType, id string) string {
	for _, ct := range courseTypes {
		if ct.ID == id {
			return ct.Name
		}
	}
	return ""
}

func offeringIDsByCourseType(offerings []models.CourseOffering, courseTypeID string) map[string]bool {
	ids := make(map[string]bool)
	for _, o := range offerings {
		if o.CourseTypeID == courseTypeID {
			ids[o.ID] = true
		}
	}
	return ids
}

func offeringIDsByCourse(offerings []models.CourseOffering, courseID string) map[string]bool {
	ids := make(map[string]bool)
	for _, o := range offerings {
		if o.CourseID == courseID {
			ids[o.ID] = true
		}
	}
	return ids
}

// appended returns a fresh slice with v at the end; the input is untouched.
func appended[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

// replacedByID returns a fresh slice where the element whose id matches is
// replaced with v. No match means no change beyond the copy.
func replacedByID[T any](s []T, id string, idOf func(T) string, v T) []T {
	out := make([]T, len(s))
	for i, e := range s {
		if idOf(e) == id {
			out[i] = v
		} else {
			out[i] = e
		}
	}
	return out
}

// mapped returns a fresh slice with f applied to every element.
func mapped[T any](s []T, f func(T) T) []T {
	out := make([]T, len(s))
	for i, e := range s {
		out[i] = f(e)
	}
	return out
}

// filtered returns a fresh slice with only the elements keep approves.
func filtered[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
