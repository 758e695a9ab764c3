// file: internals/features/academics/professors/controller/professor_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	am "mali_scheduler_backend/internals/features/academics/model"
	md "mali_scheduler_backend/internals/features/academics/modules/dto"
	d "mali_scheduler_backend/internals/features/academics/professors/dto"
	svc "mali_scheduler_backend/internals/features/academics/professors/service"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
	helper "mali_scheduler_backend/internals/helpers"
	"mali_scheduler_backend/internals/helpers/dbtime"
)

/* =========================
   Controller & Constructor
   ========================= */

type ProfessorController struct {
	DB       *gorm.DB
	Store    svc.ProfessorStore
	Validate *validator.Validate
	Cache    ssvc.Invalidator
}

func NewProfessorController(db *gorm.DB, v *validator.Validate, cache ssvc.Invalidator) *ProfessorController {
	if cache == nil {
		cache = ssvc.NoopCache{}
	}
	return &ProfessorController{DB: db, Store: svc.NewGormProfessorStore(db), Validate: v, Cache: cache}
}

func withCourses(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Courses", func(q *gorm.DB) *gorm.DB {
		return q.Order("course_name ASC")
	})
}

func loadProfessor(tx *gorm.DB, id uuid.UUID) (am.ProfessorModel, error) {
	p, err := svc.ProfessorWithCourses(tx, id)
	return p, asFiberError(err)
}

func loadCourses(tx *gorm.DB, ids []uuid.UUID) ([]am.CourseModel, error) {
	courses, err := svc.CoursesByID(tx, ids)
	return courses, asFiberError(err)
}

// asFiberError turns store sentinels into HTTP errors. Duplicate name or
// email stays a 400 because the frontend expects it.
func asFiberError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, svc.ErrProfessorNotFound):
		return fiber.NewError(http.StatusNotFound, "Professor not found")
	case errors.Is(err, svc.ErrUnknownCourses):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case helper.IsUniqueViolation(err):
		return fiber.NewError(http.StatusBadRequest, "A professor with this name or email already exists")
	}
	return err
}

/* =========================
   GET /professors/
   ========================= */

func (ctl *ProfessorController) List(c *fiber.Ctx) error {
	tx := withCourses(ctl.DB.WithContext(c.UserContext()))
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		tx = tx.Where("professor_is_active = ?", helper.QueryBool(c, "is_active", true))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("professor_name ILIKE ?", "%"+q+"%")
	}
	var rows []am.ProfessorModel
	if err := tx.Order("professor_name ASC").Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "ok", d.FromModels(rows), nil)
}

/* =========================
   GET /professors/available-courses
   ========================= */

func (ctl *ProfessorController) AvailableCourses(c *fiber.Ctx) error {
	var rows []am.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Select("course_id", "course_name").
		Order("course_name ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "ok", d.FromCourses(rows), nil)
}

/* =========================
   POST /professors/
   ========================= */

func (ctl *ProfessorController) Create(c *fiber.Ctx) error {
	var req d.ProfessorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}
	p := req.ToModel()

	out, err := ctl.Store.Create(c.UserContext(), p, req.CourseIDs)
	if err != nil {
		return helper.FromError(c, asFiberError(err))
	}
	ctl.Cache.Invalidate(c.UserContext())
	return helper.JsonCreated(c, "Professor created", d.FromModel(out))
}

/* =========================
   DELETE /professors/:id
   ========================= */

func (ctl *ProfessorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	out, err := ctl.Store.Delete(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, asFiberError(err))
	}
	ctl.Cache.Invalidate(c.UserContext())
	return helper.JsonDeleted(c, "Professor deleted", d.FromModel(out))
}

/* =========================
   DELETE /professors/bulk-delete-professors
   ========================= */

func (ctl *ProfessorController) BulkDelete(c *fiber.Ctx) error {
	var req d.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}

	deleted, err := ctl.Store.BulkDelete(c.UserContext(), req.IDs)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())
	return helper.JsonDeleted(c, "Professors deleted", fiber.Map{"deleted": deleted})
}

/* =========================
   POST /professors/bulk-load/
   ========================= */

func (ctl *ProfessorController) BulkLoad(c *fiber.Ctx) error {
	var entries []d.BulkProfessorEntry
	if err := c.BodyParser(&entries); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	for _, e := range entries {
		if err := ctl.Validate.Struct(e); err != nil {
			return helper.WriteValidationError(c, err)
		}
	}

	names := make([]string, 0, len(entries))
	courseNames := []string{}
	for _, e := range entries {
		names = append(names, strings.TrimSpace(e.Name))
		for _, cn := range e.CourseNames {
			courseNames = append(courseNames, strings.TrimSpace(cn))
		}
	}

	var plan svc.BulkPlan
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var existingNames []string
		if err := tx.Model(&am.ProfessorModel{}).
			Where("professor_name IN ?", names).
			Pluck("professor_name", &existingNames).Error; err != nil {
			return err
		}
		existing := make(map[string]bool, len(existingNames))
		for _, n := range existingNames {
			existing[n] = true
		}

		courses := map[string]am.CourseModel{}
		if len(courseNames) > 0 {
			var rows []am.CourseModel
			if err := tx.Where("course_name IN ?", courseNames).Find(&rows).Error; err != nil {
				return err
			}
			for _, r := range rows {
				courses[r.CourseName] = r
			}
		}

		plan = svc.PlanBulkProfessors(entries, existing, courses)
		for i := range plan.Create {
			// link rows only; the courses themselves are not upserted
			if err := tx.Omit("Courses.*", "Modules").Create(&plan.Create[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if len(plan.Create) > 0 {
		ctl.Cache.Invalidate(c.UserContext())
	}

	resp := d.BulkProfessorResponse{Created: []string{}, Skipped: []string{}}
	for _, p := range plan.Create {
		resp.Created = append(resp.Created, p.ProfessorName)
	}
	resp.Skipped = append(resp.Skipped, plan.Skipped...)
	return helper.JsonCreated(c, "Profes cargados", resp)
}

/* =========================
   GET /professors/:id/details
   ========================= */

func (ctl *ProfessorController) Details(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	out, err := ctl.details(ctl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

func (ctl *ProfessorController) details(tx *gorm.DB, id uuid.UUID) (d.ProfessorDetailsResponse, error) {
	p, err := loadProfessor(tx, id)
	if err != nil {
		return d.ProfessorDetailsResponse{}, err
	}

	var modules []am.ModuleModel
	if err := tx.Where("module_professor_id = ?", id).
		Order("module_course_id, module_order ASC NULLS LAST, module_name ASC").
		Find(&modules).Error; err != nil {
		return d.ProfessorDetailsResponse{}, err
	}

	courseIDs := make([]uuid.UUID, 0, len(modules))
	for _, m := range modules {
		courseIDs = append(courseIDs, m.ModuleCourseID)
	}
	courseNames := map[uuid.UUID]string{}
	for _, cm := range p.Courses {
		courseNames[cm.CourseID] = cm.CourseName
	}
	if len(courseIDs) > 0 {
		var extra []am.CourseModel
		if err := tx.Select("course_id", "course_name").
			Where("course_id IN ?", courseIDs).Find(&extra).Error; err != nil {
			return d.ProfessorDetailsResponse{}, err
		}
		for _, cm := range extra {
			courseNames[cm.CourseID] = cm.CourseName
		}
	}

	return d.ProfessorDetailsResponse{
		ProfessorResponse: d.FromModel(p),
		Modules:           svc.ModuleRows(modules, courseNames),
		TotalHours:        svc.TotalHours(modules),
		SyllabusStats:     svc.ComputeSyllabusStats(modules),
	}, nil
}

/* =========================
   PUT /professors/:id/details
   ========================= */

func (ctl *ProfessorController) UpdateDetails(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req d.ProfessorDetailsUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}
	if req.Email.Set && req.Email.Value != nil && strings.TrimSpace(*req.Email.Value) != "" {
		if err := ctl.Validate.Var(strings.TrimSpace(*req.Email.Value), "email"); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "email is not valid")
		}
	}

	var out d.ProfessorDetailsResponse
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var p am.ProfessorModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("professor_id = ?", id).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(http.StatusNotFound, "Professor not found")
		}
		if err != nil {
			return err
		}
		req.Apply(&p)
		if strings.TrimSpace(p.ProfessorName) == "" {
			return fiber.NewError(http.StatusBadRequest, "name cannot be blank")
		}
		if err := tx.Omit(clause.Associations).Save(&p).Error; err != nil {
			return asFiberError(err)
		}
		if req.CourseIDs != nil {
			courses, err := loadCourses(tx, *req.CourseIDs)
			if err != nil {
				return err
			}
			assoc := tx.Model(&p).Association("Courses")
			if len(courses) == 0 {
				err = assoc.Clear()
			} else {
				err = assoc.Replace(courses)
			}
			if err != nil {
				return err
			}
		}
		out, err = ctl.details(tx, id)
		return err
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())
	return helper.JsonUpdated(c, "Professor updated", out)
}

/* =========================
   PUT /professors/:id/module/:module_id/syllabus-status?status&observations
   ========================= */

func (ctl *ProfessorController) UpdateSyllabusStatus(c *fiber.Ctx) error {
	profID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	moduleID, err := helper.ParseUUIDParam(c, "module_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	raw := c.Query("status")
	status, err := md.NormalizeSyllabus(&raw)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var m am.ModuleModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("module_id = ? AND module_professor_id = ?", moduleID, profID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "Module not found for this professor")
	}
	if err != nil {
		return helper.WritePGError(c, err)
	}

	m.ModuleSyllabusStatus = status
	if c.Context().QueryArgs().Has("observations") {
		obs := c.Query("observations")
		m.ModuleObservations = helper.TrimPtr(&obs)
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Omit(clause.Associations).Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())
	return helper.JsonUpdated(c, "Syllabus status updated", md.FromModel(m))
}

/* =========================
   GET /professors/:id/sessions
   ========================= */

type professorSessionRow struct {
	SessionID        uuid.UUID `gorm:"column:session_id"`
	SessionModuleID  uuid.UUID `gorm:"column:session_module_id"`
	ModuleName       string    `gorm:"column:module_name"`
	CourseName       string    `gorm:"column:course_name"`
	SessionNumber    int       `gorm:"column:session_number"`
	SessionDate      time.Time `gorm:"column:session_date"`
	SessionStatus    string    `gorm:"column:session_status"`
	SessionExtraNote *string   `gorm:"column:session_extra_note"`
}

func (ctl *ProfessorController) Sessions(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	db := ctl.DB.WithContext(c.UserContext())

	var n int64
	if err := db.Model(&am.ProfessorModel{}).Where("professor_id = ?", id).Count(&n).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Professor not found")
	}

	// sessions of every module of the professor's courses
	var rows []professorSessionRow
	if err := db.Table("course_module_sessions AS s").
		Select(`s.session_id, s.session_module_id, m.module_name, c.course_name,
			s.session_number, s.session_date, s.session_status, s.session_extra_note`).
		Joins("JOIN modules m ON m.module_id = s.session_module_id").
		Joins("JOIN courses c ON c.course_id = m.module_course_id").
		Joins("JOIN professor_courses pc ON pc.course_id = c.course_id").
		Where("pc.professor_id = ?", id).
		Order("s.session_date ASC, c.course_name ASC, s.session_number ASC").
		Scan(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.ProfessorSessionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, d.ProfessorSessionResponse{
			ID:            r.SessionID,
			ModuleID:      r.SessionModuleID,
			ModuleName:    r.ModuleName,
			CourseName:    r.CourseName,
			SessionNumber: r.SessionNumber,
			Date:          dbtime.FormatDate(r.SessionDate),
			Status:        r.SessionStatus,
			ExtraNote:     r.SessionExtraNote,
		})
	}
	return helper.JsonList(c, "ok", out, nil)
}
