package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ticktock/export"
	"ticktock/models"
	"ticktock/status"
)

func sample() []export.Row {
	timesheets := []models.Timesheet{
		{ID: 1, WeekNumber: 1, DateRange: "1 - 5 January, 2024"},
		{ID: 2, WeekNumber: 2, DateRange: "8 - 12 January, 2024"},
	}
	entries := []models.TimesheetEntry{
		{ID: 7, TimesheetID: 2, Date: "2024-01-08", ProjectName: "Mobile App", TypeOfWork: "Testing", Description: "Smoke tests, login", Hours: 7.5},
		{ID: 8, TimesheetID: 2, Date: "2024-01-09", ProjectName: "Mobile App", TypeOfWork: "Meeting", Description: "Planning", Hours: 1},
	}
	return export.Rows(status.TimesheetStatusSummary(timesheets, entries), entries)
}

func TestRows(t *testing.T) {
	rows := sample()
	require.Len(t, rows, 3)
	assert.Equal(t, models.StatusMissing, rows[0].Timesheet.Status)
	assert.Zero(t, rows[0].Entry.ID)
	assert.Equal(t, models.StatusIncomplete, rows[1].Timesheet.Status)
	assert.Equal(t, 8.5, rows[2].Timesheet.TotalHours)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatCSV, sample()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Week", records[0][0])
	assert.Equal(t, []string{"1", "1 - 5 January, 2024", "MISSING", "", "", "", "", ""}, records[1])
	assert.Equal(t, []string{"2", "8 - 12 January, 2024", "INCOMPLETE", "2024-01-08", "Mobile App", "Testing", "Smoke tests, login", "7.5"}, records[2])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatXLSX, sample()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timesheets")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Type of Work", rows[0][5])
	assert.Equal(t, "Smoke tests, login", rows[2][6])
	assert.Equal(t, "7.5", rows[2][7])
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, export.Write(&buf, "pdf", sample()))
	assert.Equal(t, "text/csv", export.ContentType(export.FormatCSV))
}

func TestFractionalHoursMatchAcrossFormats(t *testing.T) {
	rows := []export.Row{{
		Timesheet: models.Timesheet{ID: 1, WeekNumber: 1},
		Entry:     models.TimesheetEntry{ID: 1, TimesheetID: 1, Hours: 0.333},
	}}

	var csvBuf bytes.Buffer
	require.NoError(t, export.WriteCSV(&csvBuf, rows))
	records, err := csv.NewReader(&csvBuf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "0.333", records[1][7])

	var xlsxBuf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&xlsxBuf, rows))
	f, err := excelize.OpenReader(&xlsxBuf)
	require.NoError(t, err)
	defer f.Close()
	cells, err := f.GetRows("Timesheets")
	require.NoError(t, err)
	assert.Equal(t, records[1][7], cells[1][7])
}
