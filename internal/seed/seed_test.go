package seed

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/sauravjha/registrar/internal/app/models"
	"github.com/sauravjha/registrar/internal/app/store"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	st := store.New(nil, zerolog.Nop())
	t.Cleanup(st.Close)

	CreateDefaultData(st, zerolog.Nop())

	state := st.State()
	if len(state.CourseTypes) != 1 || state.CourseTypes[0].Name != "Individual" {
		t.Fatalf("course types = %+v", state.CourseTypes)
	}
	if len(state.Courses) != 1 || state.Courses[0].Name != "English" {
		t.Fatalf("courses = %+v", state.Courses)
	}
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	st := store.New(nil, zerolog.Nop())
	t.Cleanup(st.Close)
	st.Dispatch(store.AddCourse{Course: models.Course{ID: "c1", Name: "Existing"}})

	CreateDefaultData(st, zerolog.Nop())

	state := st.State()
	if len(state.CourseTypes) != 0 {
		t.Fatalf("seed ran against a non-empty store: %+v", state.CourseTypes)
	}
	if len(state.Courses) != 1 {
		t.Fatalf("courses = %+v", state.Courses)
	}
}
