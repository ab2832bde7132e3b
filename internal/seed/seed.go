package seed

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/sauravjha/registrar/internal/app/models"
	"github.com/sauravjha/registrar/internal/app/store"
	"github.com/sauravjha/registrar/internal/pkg/idgen"
)

// CreateDefaultData seeds a starter course type and course so a fresh
// install has something to build offerings from. It only runs against an
// empty store, so an existing snapshot is never touched.
func CreateDefaultData(st *store.Store, lgr zerolog.Logger) {
	if !st.State().Data().IsEmpty() {
		return
	}

	lgr.Info().Msg("Empty data set detected, seeding sample data...")

	now := time.Now().UTC()
	st.Dispatch(store.AddCourseType{CourseType: models.CourseType{
		ID:        idgen.New(),
		Name:      "Individual",
		CreatedAt: now,
		UpdatedAt: now,
	}})
	st.Dispatch(store.AddCourse{Course: models.Course{
		ID:        idgen.New(),
		Name:      "English",
		CreatedAt: now,
		UpdatedAt: now,
	}})
}
