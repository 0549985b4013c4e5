// Package export writes a user's weeks and entries as CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"ticktock/models"
	"ticktock/status"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var header = []string{"Week", "Date Range", "Status", "Date", "Project", "Type of Work", "Description", "Hours"}

// Row is one entry with its week's derived state.
type Row struct {
	Timesheet models.Timesheet
	Entry     models.TimesheetEntry
}

// Rows pairs every entry with its recomputed week, in week order. Weeks
// without entries produce a single row with an empty entry.
func Rows(res status.Result, entries []models.TimesheetEntry) []Row {
	var rows []Row
	for _, ts := range res.Timesheets {
		own := status.TimesheetEntries(ts.ID, entries)
		if len(own) == 0 {
			rows = append(rows, Row{Timesheet: ts})
			continue
		}
		for _, e := range own {
			rows = append(rows, Row{Timesheet: ts, Entry: e})
		}
	}
	return rows
}

func (r Row) record() []string {
	hours := ""
	if r.Entry.ID != 0 {
		hours = strconv.FormatFloat(r.Entry.Hours, 'f', -1, 64)
	}
	return []string{
		strconv.Itoa(r.Timesheet.WeekNumber),
		r.Timesheet.DateRange,
		string(r.Timesheet.Status),
		r.Entry.Date,
		r.Entry.ProjectName,
		r.Entry.TypeOfWork,
		r.Entry.Description,
		hours,
	}
}

func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

func Write(w io.Writer, format string, rows []Row) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatXLSX:
		return WriteXLSX(w, rows)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writer.Write(r.record()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

const sheet = "Timesheets"

func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.Timesheet.WeekNumber,
			r.Timesheet.DateRange,
			string(r.Timesheet.Status),
			r.Entry.Date,
			r.Entry.ProjectName,
			r.Entry.TypeOfWork,
			r.Entry.Description,
		}
		if r.Entry.ID != 0 {
			values = append(values, r.Entry.Hours)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}
