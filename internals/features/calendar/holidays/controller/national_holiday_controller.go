// file: internals/features/calendar/holidays/controller/national_holiday_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "mali_scheduler_backend/internals/features/calendar/holidays/dto"
	m "mali_scheduler_backend/internals/features/calendar/holidays/model"
	hsvc "mali_scheduler_backend/internals/features/calendar/holidays/service"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
	helper "mali_scheduler_backend/internals/helpers"
	"mali_scheduler_backend/internals/helpers/dbtime"
)

/* =========================
   Controller & Constructor
   ========================= */

type NationalHolidayController struct {
	Store    hsvc.HolidayStore
	Validate *validator.Validate
	Service  *hsvc.Service
	Cache    ssvc.Invalidator
}

func NewNationalHolidayController(v *validator.Validate, s *hsvc.Service, cache ssvc.Invalidator) *NationalHolidayController {
	if cache == nil {
		cache = ssvc.NoopCache{}
	}
	return &NationalHolidayController{Store: s.Store, Validate: v, Service: s, Cache: cache}
}

func (ctl *NationalHolidayController) findActive(c *fiber.Ctx, out *m.NationalHolidayModel) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	row, err := ctl.Store.Get(c.UserContext(), id, false)
	if errors.Is(err, hsvc.ErrHolidayNotFound) {
		return fiber.NewError(http.StatusNotFound, "holiday not found")
	}
	if err != nil {
		return err
	}
	*out = row
	return nil
}

/* =========================
   Create
   ========================= */

func (ctl *NationalHolidayController) Create(c *fiber.Ctx) error {
	var req d.NationalHolidayCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}

	row, err := req.ToModel(ctl.Service.Country)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if row.NationalHolidaySlug == nil {
		slug := helper.Slugify(row.NationalHolidayTitle+"-"+dbtime.FormatDate(row.NationalHolidayStartDate), 160)
		row.NationalHolidaySlug = &slug
	}

	if err := ctl.Store.Create(c.UserContext(), &row); err != nil {
		return helper.WritePGError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())

	return helper.JsonCreated(c, "Holiday created", d.FromModel(row))
}

/* =========================
   Patch
   ========================= */

func (ctl *NationalHolidayController) Patch(c *fiber.Ctx) error {
	var existing m.NationalHolidayModel
	if err := ctl.findActive(c, &existing); err != nil {
		return helper.FromError(c, err)
	}

	var req d.NationalHolidayUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.WriteValidationError(c, err)
	}
	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Store.Save(c.UserContext(), &existing); err != nil {
		return helper.WritePGError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())

	return helper.JsonUpdated(c, "Holiday updated", d.FromModel(existing))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *NationalHolidayController) Delete(c *fiber.Ctx) error {
	var existing m.NationalHolidayModel
	if err := ctl.findActive(c, &existing); err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.Store.SoftDelete(c.UserContext(), &existing); err != nil {
		return helper.WritePGError(c, err)
	}
	ctl.Cache.Invalidate(c.UserContext())

	return helper.JsonDeleted(c, "Holiday deleted", fiber.Map{"national_holiday_id": existing.NationalHolidayID})
}

/* =========================
   Get By ID
   ========================= */

func (ctl *NationalHolidayController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := ctl.Store.Get(c.UserContext(), id, helper.QueryBool(c, "with_deleted", false))
	if errors.Is(err, hsvc.ErrHolidayNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "holiday not found")
	}
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "ok", d.FromModel(row))
}

/* =========================
   List (index)
   ========================= */

func (ctl *NationalHolidayController) List(c *fiber.Ctx) error {
	var q d.NationalHolidayListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.WriteValidationError(c, err)
	}

	dateFrom, err := dbtime.ParseDatePtr(q.DateFrom)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid date_from (YYYY-MM-DD)")
	}
	dateTo, err := dbtime.ParseDatePtr(q.DateTo)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid date_to (YYYY-MM-DD)")
	}

	f := hsvc.HolidayFilter{
		IsActive:    q.IsActive,
		IsRecurring: q.IsRecurring,
		WithDeleted: q.WithDeleted != nil && *q.WithDeleted,
		From:        dateFrom,
		To:          dateTo,
		Limit:       20,
	}
	if q.Q != nil {
		f.Q = *q.Q
	}
	if q.Sort != nil {
		f.Sort = *q.Sort
	}
	if q.Limit != nil {
		f.Limit = *q.Limit
	}
	if q.Offset != nil {
		f.Offset = *q.Offset
	}

	rows, total, err := ctl.Store.List(c.UserContext(), f)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPagination(total, f.Offset, f.Limit)
	return helper.JsonList(c, "ok", d.FromModels(rows), &p)
}

/* =========================
   GET /holidays/calendar?from&to
   ========================= */

func (ctl *NationalHolidayController) Calendar(c *fiber.Ctx) error {
	var q d.HolidayCalendarQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.WriteValidationError(c, err)
	}
	from, _ := dbtime.ParseDate(q.From)
	to, _ := dbtime.ParseDate(q.To)

	list, err := ctl.Service.Between(c.UserContext(), from, to)
	if errors.Is(err, hsvc.ErrInvalidRange) {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "ok", d.FromResolved(list), nil)
}
