package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ticktock/export"
	"ticktock/middleware"
	"ticktock/models"
	"ticktock/service"
)

type TimesheetHandler struct {
	timesheets *service.Timesheets
}

func NewTimesheetHandler(timesheets *service.Timesheets) *TimesheetHandler {
	return &TimesheetHandler{timesheets: timesheets}
}

// Projects serves the option lists of the entry form.
func (h *TimesheetHandler) Projects(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.timesheets.Catalog(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

func filterFromQuery(r *http.Request) (service.Filter, bool) {
	q := r.URL.Query()
	f := service.Filter{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Status:    models.Status(strings.ToUpper(q.Get("status"))),
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, false
	}
	return f, true
}

func (h *TimesheetHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	filter, ok := filterFromQuery(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	res, err := h.timesheets.List(r.Context(), user.ID, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *TimesheetHandler) Detail(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Timesheet not found")
		return
	}

	detail, err := h.timesheets.Detail(r.Context(), user.ID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *TimesheetHandler) Export(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatCSV
	}
	if format != export.FormatCSV && format != export.FormatXLSX {
		writeError(w, http.StatusBadRequest, "Invalid format")
		return
	}
	filter, ok := filterFromQuery(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	rows, err := h.timesheets.ExportRows(r.Context(), user.ID, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=timesheets.%s", format))
	if err := export.Write(w, format, rows); err != nil {
		writeServiceError(w, err)
	}
}

type entryRequest struct {
	EntryID     flexString `json:"entryId"`
	Date        string     `json:"date"`
	ProjectName string     `json:"projectName"`
	TypeOfWork  string     `json:"typeOfWork"`
	Description string     `json:"description"`
	Hours       flexString `json:"hours"`
}

func (e entryRequest) input() service.EntryInput {
	return service.EntryInput{
		Date:        e.Date,
		ProjectName: e.ProjectName,
		TypeOfWork:  e.TypeOfWork,
		Description: e.Description,
		Hours:       string(e.Hours),
	}
}

func (e entryRequest) complete() bool {
	return e.Date != "" && e.ProjectName != "" && e.TypeOfWork != "" && e.Description != "" && e.Hours != ""
}

// Entries dispatches the entry collection of one week by method.
func (h *TimesheetHandler) Entries(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	timesheetID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Timesheet not found")
		return
	}

	if r.Method == http.MethodGet {
		entries, err := h.timesheets.Entries(r.Context(), user.ID, timesheetID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
		return
	}

	var req entryRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	switch r.Method {
	case http.MethodPost:
		h.createEntry(w, r, user.ID, timesheetID, req)
	case http.MethodPut:
		h.updateEntry(w, r, user.ID, timesheetID, req)
	case http.MethodDelete:
		h.deleteEntry(w, r, user.ID, timesheetID, req)
	default:
		MethodNotAllowed(w, r)
	}
}

func (h *TimesheetHandler) createEntry(w http.ResponseWriter, r *http.Request, userID, timesheetID uint, req entryRequest) {
	if !req.complete() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	entry, ts, err := h.timesheets.CreateEntry(r.Context(), userID, timesheetID, req.input())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"entry":     entry,
		"timesheet": ts,
	})
}

func (h *TimesheetHandler) updateEntry(w http.ResponseWriter, r *http.Request, userID, timesheetID uint, req entryRequest) {
	entryID, ok := parseID(string(req.EntryID))
	if !ok {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}

	// Entry dates are fixed once created.
	in := req.input()
	in.Date = ""

	entry, ts, err := h.timesheets.UpdateEntry(r.Context(), userID, timesheetID, entryID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entry":     entry,
		"timesheet": ts,
	})
}

func (h *TimesheetHandler) deleteEntry(w http.ResponseWriter, r *http.Request, userID, timesheetID uint, req entryRequest) {
	raw := string(req.EntryID)
	if raw == "" {
		raw = r.URL.Query().Get("entryId")
	}
	entryID, ok := parseID(raw)
	if !ok {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}

	ts, err := h.timesheets.DeleteEntry(r.Context(), userID, timesheetID, entryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Entry deleted successfully",
		"timesheet": ts,
	})
}
