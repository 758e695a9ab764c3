// file: internals/features/academics/courses/controller/course_controller.go
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

	d "mali_scheduler_backend/internals/features/academics/courses/dto"
	svc "mali_scheduler_backend/internals/features/academics/courses/service"
	am "mali_scheduler_backend/internals/features/academics/model"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
	helper "mali_scheduler_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    ssvc.Invalidator
}

func NewCourseController(db *gorm.DB, v *validator.Validate, cache ssvc.Invalidator) *CourseController {
	if cache == nil {
		cache = ssvc.NoopCache{}
	}
	return &CourseController{DB: db, Validate: v, Cache: cache}
}

func withCourseRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Modules", func(q *gorm.DB) *gorm.DB {
			return q.Order("module_order ASC NULLS LAST, module_name ASC")
		}).
		Preload("Professors", func(q *gorm.DB) *gorm.DB {
			return q.Order("professor_name ASC")
		})
}

func loadCourse(tx *gorm.DB, id uuid.UUID) (am.CourseModel, error) {
	var course am.CourseModel
	err := withCourseRelations(tx).Where("course_id = ?", id).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return course, fiber.NewError(http.StatusNotFound, "Course not found")
	}
	return course, err
}

// loadProfessors fails with 400 when any id is unknown.
func loadProfessors(tx *gorm.DB, ids []uuid.UUID) ([]am.ProfessorModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var profs []am.ProfessorModel
	if err := tx.Where("professor_id IN ?", ids).Find(&profs).Error; err != nil {
		return nil, err
	}
	if len(profs) != len(uniqueIDs(ids)) {
		return nil, fiber.NewError(http.StatusBadRequest, "unknown professor_ids")
	}
	return profs, nil
}

func uniqueIDs(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

/* =========================
   POST /courses/
   ========================= */

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req d.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}
	course, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if _, err := svc.ReconcileModules(uuid.Nil, nil, req.Modules); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var out am.CourseModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		profs, err := loadProfessors(tx, req.ProfessorIDs)
		if err != nil {
			return err
		}
		// modules are created with the course (has-many)
		if err := tx.Omit("Professors").Create(&course).Error; err != nil {
			return err
		}
		if len(profs) > 0 {
			if err := tx.Model(&course).Association("Professors").Append(profs); err != nil {
				return err
			}
		}
		out, err = loadCourse(tx, course.CourseID)
		return err
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())

	return helper.JsonCreated(c, "Course created", d.FromCourse(out))
}

/* =========================
   GET /courses/?skip&limit
   ========================= */

func (ctl *CourseController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 100, 1000)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&am.CourseModel{})
	if cat := strings.ToLower(strings.TrimSpace(c.Query("category"))); cat != "" {
		tx = tx.Where("course_category = ?", cat)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		tx = tx.Where("course_is_active = ?", helper.QueryBool(c, "is_active", true))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(course_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []am.CourseModel
	if err := withCourseRelations(tx).
		Order("course_created_at ASC, course_name ASC").
		Offset(pg.Skip).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPagination(total, pg.Skip, pg.Limit)
	return helper.JsonList(c, "ok", d.FromCourses(rows), &p)
}

/* =========================
   GET /courses/:id
   ========================= */

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	course, err := loadCourse(ctl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", d.FromCourse(course))
}

/* =========================
   PUT /courses/:id
   ========================= */

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req d.CourseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}

	var out am.CourseModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var course am.CourseModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("course_id = ?", id).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(http.StatusNotFound, "Course not found")
			}
			return err
		}
		if err := req.Apply(&course); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		if err := tx.Omit(clause.Associations).Save(&course).Error; err != nil {
			return err
		}

		if req.Modules != nil {
			if err := replaceModules(tx, course.CourseID, *req.Modules); err != nil {
				return err
			}
		}
		if req.ProfessorIDs != nil {
			if err := replaceProfessors(tx, &course, *req.ProfessorIDs); err != nil {
				return err
			}
		}

		out, err = loadCourse(tx, course.CourseID)
		return err
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())

	return helper.JsonUpdated(c, "Course updated", d.FromCourse(out))
}

func replaceModules(tx *gorm.DB, courseID uuid.UUID, incoming []d.ModuleInput) error {
	err := svc.ReplaceModules(svc.GormModuleWriter{Tx: tx}, courseID, incoming)
	if svc.IsPlanError(err) {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return err
}

func replaceProfessors(tx *gorm.DB, course *am.CourseModel, ids []uuid.UUID) error {
	assoc := tx.Model(course).Association("Professors")
	if len(ids) == 0 {
		return assoc.Clear()
	}
	profs, err := loadProfessors(tx, ids)
	if err != nil {
		return err
	}
	return assoc.Replace(profs)
}

/* =========================
   DELETE /courses/:id
   ========================= */

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var deleted am.CourseModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		course, err := loadCourse(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(&course).Association("Professors").Clear(); err != nil {
			return err
		}
		// modules and their sessions go through ON DELETE CASCADE
		if err := tx.Where("course_id = ?", course.CourseID).Delete(&am.CourseModel{}).Error; err != nil {
			return err
		}
		deleted = course
		return nil
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())

	return helper.JsonDeleted(c, "Course deleted", d.FromCourse(deleted))
}
