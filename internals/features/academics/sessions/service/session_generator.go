// file: internals/features/academics/sessions/service/session_generator.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	am "mali_scheduler_backend/internals/features/academics/model"
)

var ErrCourseNotFound = errors.New("course not found")

// DateSource expands a course into its session dates (holidays applied).
type DateSource interface {
	SessionDates(ctx context.Context, course am.CourseModel) ([]time.Time, error)
}

type Generator struct {
	Store SessionStore
	Dates DateSource
}

func NewGenerator(db *gorm.DB, dates DateSource) *Generator {
	return &Generator{Store: NewGormSessionStore(db), Dates: dates}
}

type GenerateResult struct {
	Dates          int
	Created        int
	Replaced       int
	SkippedModules []string
}

/* =========================
   Pure planning
   ========================= */

// PlanSessions builds one session per date for every module, numbered 1..n
// per module. Modules listed in skip are left alone.
func PlanSessions(course am.CourseModel, modules []am.ModuleModel, dates []time.Time, skip map[uuid.UUID]bool, professors map[uuid.UUID]string) []am.SessionModel {
	if len(dates) == 0 {
		return nil
	}
	var rows []am.SessionModel
	for _, m := range modules {
		if skip[m.ModuleID] {
			continue
		}
		snap := buildSnapshot(course, m, professors)
		for i, d := range dates {
			rows = append(rows, am.SessionModel{
				SessionModuleID: m.ModuleID,
				SessionNumber:   i + 1,
				SessionDate:     time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
				SessionStatus:   am.SessionProgramada,
				SessionSnapshot: snap,
			})
		}
	}
	return rows
}

func buildSnapshot(course am.CourseModel, m am.ModuleModel, professors map[uuid.UUID]string) datatypes.JSONMap {
	snap := datatypes.JSONMap{
		"course_id":   course.CourseID.String(),
		"course_name": course.CourseName,
		"module_id":   m.ModuleID.String(),
		"module_name": m.ModuleName,
	}
	if course.CourseSchedule != nil {
		snap["schedule"] = *course.CourseSchedule
	}
	if course.CourseCategory != nil {
		snap["category"] = *course.CourseCategory
	}
	if m.ModuleOrder != nil {
		snap["module_order"] = *m.ModuleOrder
	}
	if m.ModuleProfessorID != nil {
		snap["professor_id"] = m.ModuleProfessorID.String()
		if name, ok := professors[*m.ModuleProfessorID]; ok {
			snap["professor_name"] = name
		}
	}
	return snap
}

/* =========================
   Generate (DB)
   ========================= */

// GenerateForCourse materializes sessions for every module of a course.
// Modules that already have sessions are skipped unless replace is set.
// A course without start date or schedule yields zero rows and no error.
func (g *Generator) GenerateForCourse(ctx context.Context, courseID uuid.UUID, replace bool) (GenerateResult, error) {
	var res GenerateResult

	course, err := g.Store.CourseWithModules(ctx, courseID)
	if err != nil {
		return res, err
	}
	if !course.HasSchedule() || len(course.Modules) == 0 {
		return res, nil
	}

	dates, err := g.Dates.SessionDates(ctx, course)
	if err != nil {
		return res, fmt.Errorf("expand schedule: %w", err)
	}
	res.Dates = len(dates)

	moduleIDs := make([]uuid.UUID, 0, len(course.Modules))
	profIDs := []uuid.UUID{}
	for _, m := range course.Modules {
		moduleIDs = append(moduleIDs, m.ModuleID)
		if m.ModuleProfessorID != nil {
			profIDs = append(profIDs, *m.ModuleProfessorID)
		}
	}

	err = g.Store.Tx(ctx, func(w SessionWriter) error {
		skip := map[uuid.UUID]bool{}
		if replace {
			n, err := w.DeleteModuleSessions(moduleIDs)
			if err != nil {
				return err
			}
			res.Replaced = n
		} else {
			existing, err := w.ModulesWithSessions(moduleIDs)
			if err != nil {
				return err
			}
			for _, id := range existing {
				skip[id] = true
			}
		}
		for _, m := range course.Modules {
			if skip[m.ModuleID] {
				res.SkippedModules = append(res.SkippedModules, m.ModuleName)
			}
		}

		professors, err := w.ProfessorNames(profIDs)
		if err != nil {
			return err
		}

		created, err := w.InsertSessions(PlanSessions(course, course.Modules, dates, skip, professors))
		if err != nil {
			return err
		}
		res.Created = created
		return nil
	})
	if err != nil {
		return GenerateResult{}, err
	}
	return res, nil
}

// GenerateMissing fills sessions for active scheduled courses; modules that
// already have sessions are left untouched.
func (g *Generator) GenerateMissing(ctx context.Context) (courses, created int, err error) {
	ids, err := g.Store.ScheduledCourseIDs(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, id := range ids {
		if ctx.Err() != nil {
			return courses, created, ctx.Err()
		}
		res, err := g.GenerateForCourse(ctx, id, false)
		if err != nil {
			log.Printf("[SESSION-SYNC] course %s: %v", id, err)
			continue
		}
		courses++
		created += res.Created
	}
	return courses, created, nil
}
