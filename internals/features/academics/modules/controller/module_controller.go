// file: internals/features/academics/modules/controller/module_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	am "mali_scheduler_backend/internals/features/academics/model"
	d "mali_scheduler_backend/internals/features/academics/modules/dto"
	svc "mali_scheduler_backend/internals/features/academics/modules/service"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
	helper "mali_scheduler_backend/internals/helpers"
)

type ModuleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    ssvc.Invalidator
}

func NewModuleController(db *gorm.DB, v *validator.Validate, cache ssvc.Invalidator) *ModuleController {
	if cache == nil {
		cache = ssvc.NoopCache{}
	}
	return &ModuleController{DB: db, Validate: v, Cache: cache}
}

/* =========================
   POST /modules/bulk-load/
   ========================= */

func (ctl *ModuleController) BulkLoad(c *fiber.Ctx) error {
	var entries []d.BulkModuleEntry
	if err := c.BodyParser(&entries); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	for _, e := range entries {
		if err := ctl.Validate.Struct(e); err != nil {
			return helper.WriteValidationError(c, err)
		}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSpace(e.CourseName))
	}

	var created []string
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var courses []am.CourseModel
		if err := tx.Preload("Modules").
			Where("course_name IN ?", names).
			Find(&courses).Error; err != nil {
			return err
		}
		byName := make(map[string]am.CourseModel, len(courses))
		for _, course := range courses {
			byName[course.CourseName] = course
		}

		var rows []am.ModuleModel
		rows, created = svc.PlanBulkModules(byName, entries)
		if len(rows) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&rows, 200).Error
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	if len(created) > 0 {
		ctl.Cache.Invalidate(c.UserContext())
	}
	return helper.JsonCreated(c, "Modules loaded", d.BulkModuleResponse{CreatedModules: created})
}

/* =========================
   PATCH /modules/:id
   ========================= */

func (ctl *ModuleController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req d.ModulePatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}

	var mod am.ModuleModel
	if err := ctl.DB.WithContext(c.UserContext()).Where("module_id = ?", id).First(&mod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Module not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := req.Apply(&mod); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Omit(clause.Associations).Save(&mod).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())

	return helper.JsonUpdated(c, "Module updated", d.FromModel(mod))
}

/* =========================
   GET /coursemodules/academic-view
   ========================= */

func (ctl *ModuleController) AcademicView(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).
		Table("modules AS m").
		Select(`m.module_id,
			co.course_id,
			co.course_name,
			m.module_name,
			m.module_order,
			p.professor_id,
			p.professor_name,
			m.module_syllabus_status AS syllabus_status,
			m.module_observations AS observations,
			m.module_hours AS hours`).
		Joins("JOIN courses co ON co.course_id = m.module_course_id").
		Joins("LEFT JOIN professors p ON p.professor_id = m.module_professor_id")

	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		cid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid course_id")
		}
		tx = tx.Where("co.course_id = ?", cid)
	}
	if status := strings.ToLower(strings.TrimSpace(c.Query("syllabus_status"))); status != "" {
		if status == am.SyllabusPendiente {
			tx = tx.Where("m.module_syllabus_status IS NULL")
		} else {
			tx = tx.Where("m.module_syllabus_status = ?", status)
		}
	}

	var rows []d.AcademicRow
	if err := tx.Order("co.course_name ASC, m.module_order ASC NULLS LAST, m.module_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if rows == nil {
		rows = []d.AcademicRow{}
	}
	return helper.JsonList(c, "ok", rows, nil)
}
