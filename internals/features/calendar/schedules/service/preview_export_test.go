package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPreviewWorkbook(t *testing.T) {
	rows := []PreviewRow{{
		CourseID:       "c1",
		Name:           "Escultura",
		Category:       "graficas",
		StartDate:      "2024-01-01",
		EndDate:        "2024-02-01",
		DurationMonths: 1,
		Schedule:       "Martes 5:00 pm",
		StartTime:      "17:00",
		Professors:     []string{"Ana", "Luis"},
		SessionDates:   []string{"2024-01-02", "2024-01-09"},
	}}

	f, err := BuildPreviewWorkbook(rows)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{previewSheet, sessionsSheet}, f.GetSheetList())

	name, err := f.GetCellValue(previewSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Escultura", name)

	profs, _ := f.GetCellValue(previewSheet, "H2")
	assert.Equal(t, "Ana, Luis", profs)

	count, _ := f.GetCellValue(previewSheet, "I2")
	assert.Equal(t, "2", count)

	last, _ := f.GetCellValue(previewSheet, "K2")
	assert.Equal(t, "2024-01-09", last)

	sessionRows, err := f.GetRows(sessionsSheet)
	require.NoError(t, err)
	require.Len(t, sessionRows, 3)
	assert.Equal(t, []string{"Escultura", "2", "2024-01-09", "17:00"}, sessionRows[2])
}
