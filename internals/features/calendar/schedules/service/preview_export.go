// file: internals/features/calendar/schedules/service/preview_export.go
package service

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	previewSheet  = "Cronograma"
	sessionsSheet = "Sesiones"
)

var previewHeaders = []string{
	"Curso", "Categoría", "Inicio", "Fin", "Meses", "Horario", "Hora", "Profesores", "Sesiones", "Primera sesión", "Última sesión",
}

// BuildPreviewWorkbook writes one summary row per course plus a long
// sheet with one row per session date.
func BuildPreviewWorkbook(rows []PreviewRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", previewSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sessionsSheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, h := range previewHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(previewSheet, cell, h); err != nil {
			return nil, err
		}
	}
	_ = f.SetCellStyle(previewSheet, "A1", "K1", bold)
	_ = f.SetColWidth(previewSheet, "A", "A", 36)
	_ = f.SetColWidth(previewSheet, "F", "F", 40)
	_ = f.SetColWidth(previewSheet, "H", "H", 36)

	for i, r := range rows {
		row := i + 2
		first, last := "", ""
		if n := len(r.SessionDates); n > 0 {
			first, last = r.SessionDates[0], r.SessionDates[n-1]
		}
		values := []interface{}{
			r.Name, r.Category, r.StartDate, r.EndDate, r.DurationMonths, r.Schedule,
			r.StartTime, strings.Join(r.Professors, ", "), len(r.SessionDates), first, last,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(previewSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	for i, h := range []string{"Curso", "Sesión", "Fecha", "Hora"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sessionsSheet, cell, h); err != nil {
			return nil, err
		}
	}
	_ = f.SetCellStyle(sessionsSheet, "A1", "D1", bold)
	_ = f.SetColWidth(sessionsSheet, "A", "A", 36)

	line := 2
	for _, r := range rows {
		for n, d := range r.SessionDates {
			_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("A%d", line), r.Name)
			_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("B%d", line), n+1)
			_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("C%d", line), d)
			_ = f.SetCellValue(sessionsSheet, fmt.Sprintf("D%d", line), r.StartTime)
			line++
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// PreviewWorkbookBytes renders the workbook as .xlsx bytes.
func PreviewWorkbookBytes(rows []PreviewRow) ([]byte, error) {
	f, err := BuildPreviewWorkbook(rows)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
