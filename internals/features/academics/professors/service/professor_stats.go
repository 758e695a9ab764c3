// file: internals/features/academics/professors/service/professor_stats.go
package service

import (
	"strings"

	"github.com/google/uuid"

	am "mali_scheduler_backend/internals/features/academics/model"
	d "mali_scheduler_backend/internals/features/academics/professors/dto"
)

func ComputeSyllabusStats(modules []am.ModuleModel) d.SyllabusStats {
	var s d.SyllabusStats
	for _, m := range modules {
		switch m.SyllabusKey() {
		case "hay_documento":
			s.HayDocumento++
		case "no_hay_documento":
			s.NoHayDocumento++
		default:
			s.Pendiente++
		}
	}
	return s
}

// TotalHours ignores modules without hours.
func TotalHours(modules []am.ModuleModel) int {
	total := 0
	for _, m := range modules {
		if m.ModuleHours != nil && *m.ModuleHours > 0 {
			total += *m.ModuleHours
		}
	}
	return total
}

func ModuleRows(modules []am.ModuleModel, courseNames map[uuid.UUID]string) []d.ProfessorModuleResponse {
	out := make([]d.ProfessorModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, d.ProfessorModuleResponse{
			ID:             m.ModuleID,
			Name:           m.ModuleName,
			CourseID:       m.ModuleCourseID,
			CourseName:     courseNames[m.ModuleCourseID],
			Order:          m.ModuleOrder,
			Hours:          m.ModuleHours,
			SyllabusStatus: m.ModuleSyllabusStatus,
			Observations:   m.ModuleObservations,
		})
	}
	return out
}

type BulkPlan struct {
	Create  []am.ProfessorModel
	Skipped []string
}

// PlanBulkProfessors skips names that already exist (or repeat in the batch)
// and links only course names that resolve.
func PlanBulkProfessors(entries []d.BulkProfessorEntry, existing map[string]bool, courses map[string]am.CourseModel) BulkPlan {
	var plan BulkPlan
	seen := map[string]bool{}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		if existing[name] || seen[name] {
			plan.Skipped = append(plan.Skipped, name)
			continue
		}
		seen[name] = true

		p := am.ProfessorModel{ProfessorName: name, ProfessorIsActive: true}
		linked := map[uuid.UUID]bool{}
		for _, cn := range e.CourseNames {
			c, ok := courses[strings.TrimSpace(cn)]
			if !ok || linked[c.CourseID] {
				continue
			}
			linked[c.CourseID] = true
			p.Courses = append(p.Courses, c)
		}
		plan.Create = append(plan.Create, p)
	}
	return plan
}
