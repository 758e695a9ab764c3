// file: internals/features/academics/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	am "mali_scheduler_backend/internals/features/academics/model"
	d "mali_scheduler_backend/internals/features/academics/sessions/dto"
	svc "mali_scheduler_backend/internals/features/academics/sessions/service"
	helper "mali_scheduler_backend/internals/helpers"
	"mali_scheduler_backend/internals/helpers/dbtime"
)

type SessionController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Generator *svc.Generator
}

func NewSessionController(db *gorm.DB, v *validator.Validate, gen *svc.Generator) *SessionController {
	return &SessionController{DB: db, Validate: v, Generator: gen}
}

func (ctl *SessionController) findSession(c *fiber.Ctx) (am.SessionModel, error) {
	var s am.SessionModel
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return s, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	err = ctl.DB.WithContext(c.UserContext()).Where("session_id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s, fiber.NewError(http.StatusNotFound, "Session not found")
	}
	return s, err
}

/* =========================
   POST /sessions/
   ========================= */

func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req d.SessionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}
	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var n int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&am.ModuleModel{}).
		Where("module_id = ?", row.SessionModuleID).Count(&n).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Module not found")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Session created", d.FromModel(row))
}

/* =========================
   GET /sessions/?module_id&status&from&to
   ========================= */

func (ctl *SessionController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 100, 1000)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&am.SessionModel{})
	if s := strings.TrimSpace(c.Query("module_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "module_id is not a valid UUID")
		}
		tx = tx.Where("session_module_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !am.IsValidSessionStatus(s) {
			return helper.JsonError(c, http.StatusBadRequest, d.ErrInvalidStatus.Error())
		}
		tx = tx.Where("session_status = ?", s)
	}
	if s := strings.TrimSpace(c.Query("from")); s != "" {
		from, err := dbtime.ParseDate(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		tx = tx.Where("session_date >= ?", from)
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		to, err := dbtime.ParseDate(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		tx = tx.Where("session_date <= ?", to)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rows []am.SessionModel
	if err := tx.Order("session_date ASC, session_number ASC").
		Offset(pg.Skip).Limit(pg.Limit).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	p := helper.BuildPagination(total, pg.Skip, pg.Limit)
	return helper.JsonList(c, "ok", d.FromModels(rows), &p)
}

/* =========================
   GET /sessions/by-module/:module_id
   ========================= */

func (ctl *SessionController) ByModule(c *fiber.Ctx) error {
	moduleID, err := helper.ParseUUIDParam(c, "module_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []am.SessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("session_module_id = ?", moduleID).
		Order("session_number ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "ok", d.FromModels(rows), nil)
}

/* =========================
   PUT /sessions/:id (partial)
   ========================= */

func (ctl *SessionController) Update(c *fiber.Ctx) error {
	var req d.SessionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}
	s, err := ctl.findSession(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := req.Apply(&s); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&s).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Session updated", d.FromModel(s))
}

/* =========================
   DELETE /sessions/:id
   ========================= */

func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	s, err := ctl.findSession(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&s).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Session deleted", fiber.Map{"id": s.SessionID})
}

/* =========================
   POST /courses/:id/sessions/generate?replace=bool
   ========================= */

func (ctl *SessionController) Generate(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	replace := helper.QueryBool(c, "replace", false)

	res, err := ctl.Generator.GenerateForCourse(c.UserContext(), courseID, replace)
	if errors.Is(err, svc.ErrCourseNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "Course not found")
	}
	if err != nil {
		return helper.WritePGError(c, err)
	}
	skipped := res.SkippedModules
	if skipped == nil {
		skipped = []string{}
	}
	return helper.JsonCreated(c, "Sessions generated", d.GenerateResponse{
		CourseID:       courseID,
		Dates:          res.Dates,
		Created:        res.Created,
		Replaced:       res.Replaced,
		SkippedModules: skipped,
	})
}
