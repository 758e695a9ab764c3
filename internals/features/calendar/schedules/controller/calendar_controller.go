// file: internals/features/calendar/schedules/controller/calendar_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	svc "mali_scheduler_backend/internals/features/calendar/schedules/service"
	helper "mali_scheduler_backend/internals/helpers"
)

type CalendarController struct {
	Service *svc.CalendarService
	// Export renders the preview workbook
	Export func(rows []svc.PreviewRow) ([]byte, error)
}

func NewCalendarController(s *svc.CalendarService) *CalendarController {
	return &CalendarController{Service: s, Export: svc.PreviewWorkbookBytes}
}

/* =========================
   GET /calendar/events
   ========================= */

func (ctl *CalendarController) Events(c *fiber.Ctx) error {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	events, err := ctl.Service.Events(c.UserContext(), category)
	if err != nil {
		log.Printf("[CALENDAR] events: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "failed to build calendar")
	}
	return helper.JsonList(c, "ok", events, nil)
}

/* =========================
   GET /professors/:id/schedule
   ========================= */

func (ctl *CalendarController) ProfessorSchedule(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	events, err := ctl.Service.ProfessorSchedule(c.UserContext(), id)
	if errors.Is(err, svc.ErrProfessorNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "Professor not found")
	}
	if err != nil {
		log.Printf("[CALENDAR] professor schedule %s: %v", id, err)
		return helper.JsonError(c, http.StatusInternalServerError, "failed to build schedule")
	}
	return helper.JsonList(c, "ok", events, nil)
}

/* =========================
   GET /courses/schedule-preview
   ========================= */

func (ctl *CalendarController) Preview(c *fiber.Ctx) error {
	rows, err := ctl.Service.Preview(c.UserContext())
	if err != nil {
		log.Printf("[CALENDAR] preview: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "failed to build preview")
	}
	return helper.JsonList(c, "ok", rows, nil)
}

/* =========================
   GET /courses/schedule-preview/export
   ========================= */

func (ctl *CalendarController) ExportPreview(c *fiber.Ctx) error {
	rows, err := ctl.Service.Preview(c.UserContext())
	if err != nil {
		log.Printf("[CALENDAR] preview export: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "failed to build preview")
	}
	raw, err := ctl.Export(rows)
	if err != nil {
		log.Printf("[CALENDAR] preview export workbook: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "failed to build export")
	}

	name := fmt.Sprintf("cronograma_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(raw)
}
