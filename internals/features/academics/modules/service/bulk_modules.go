// file: internals/features/academics/modules/service/bulk_modules.go
package service

import (
	"strings"

	d "mali_scheduler_backend/internals/features/academics/modules/dto"
	am "mali_scheduler_backend/internals/features/academics/model"
)

// PlanBulkModules decides which modules to insert. courses is keyed by exact
// course name and must carry its existing modules. Unknown courses and
// (course, module name) pairs that already exist, in the DB or earlier in
// the same payload, are skipped. Orders already used in a course are dropped
// to NULL instead of failing the whole load.
func PlanBulkModules(courses map[string]am.CourseModel, entries []d.BulkModuleEntry) ([]am.ModuleModel, []string) {
	var create []am.ModuleModel
	created := []string{}

	seenName := map[moduleKey]bool{}
	seenOrder := map[orderKey]bool{}
	for _, c := range courses {
		for _, m := range c.Modules {
			seenName[moduleKey{c.CourseName, m.ModuleName}] = true
			if m.ModuleOrder != nil {
				seenOrder[orderKey{c.CourseName, *m.ModuleOrder}] = true
			}
		}
	}

	for _, e := range entries {
		course, ok := courses[strings.TrimSpace(e.CourseName)]
		if !ok {
			continue
		}
		for _, item := range e.Modules {
			name := strings.TrimSpace(item.Name)
			if name == "" || seenName[moduleKey{course.CourseName, name}] {
				continue
			}
			seenName[moduleKey{course.CourseName, name}] = true

			order := item.Order
			if order != nil {
				if seenOrder[orderKey{course.CourseName, *order}] {
					order = nil
				} else {
					seenOrder[orderKey{course.CourseName, *order}] = true
				}
			}

			create = append(create, am.ModuleModel{
				ModuleCourseID: course.CourseID,
				ModuleName:     name,
				ModuleOrder:    order,
			})
			created = append(created, course.CourseName+" - "+name)
		}
	}
	return create, created
}

type moduleKey struct{ course, name string }

type orderKey struct {
	course string
	order  int
}
