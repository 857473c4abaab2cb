package resourceshandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"resourcing/internal/domain/resource"
	"resourcing/internal/transport/http/api"
	"resourcing/internal/transport/http/middleware"
	"resourcing/internal/transport/http/shared"
)

const maxImportMemory = 32 << 20

type Handler struct {
	Store           *resource.Store
	Importer        *resource.Importer
	DefaultPageSize int
	MaxPageSize     int

	// now is swappable in tests; every handler anchors its date math here.
	now func() time.Time
}

func NewHandler(store *resource.Store, defaultPageSize, maxPageSize int) *Handler {
	return &Handler{
		Store:           store,
		Importer:        resource.NewImporter(store),
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
		now:             time.Now,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/count", h.handleCount)
		r.Post("/bulk-import-file", h.handleBulkImport)
		r.Get("/export-excel", h.handleExport)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
	})
}

func filterFromQuery(r *http.Request) resource.Filter {
	q := r.URL.Query()
	project := q.Get("project")
	if project == "" {
		// Legacy clients send the capitalized key.
		project = q.Get("Project")
	}
	return resource.Filter{
		Project:          project,
		Stream:           q.Get("stream"),
		ContractType:     q.Get("contractType"),
		AllocationStatus: q.Get("allocationStatus"),
		ExpiringStatus:   q.Get("expiringStatus"),
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePage(r, h.DefaultPageSize, h.MaxPageSize)
	query := resource.ListQuery{
		Filter:         filterFromQuery(r),
		SortBy:         r.URL.Query().Get("sortBy"),
		SortDescending: r.URL.Query().Get("sortDirection") == "descending",
		Skip:           page.Skip,
		Limit:          page.Limit,
	}

	today := h.now()
	records, err := h.Store.List(r.Context(), query, today)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	resource.ApplyCountdown(records, today)
	api.JSON(w, http.StatusOK, records)
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	total, err := h.Store.Count(r.Context(), filterFromQuery(r), h.now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_count_failed", "failed to count employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.JSON(w, http.StatusOK, map[string]int{"total": total})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	id, err := h.Store.Create(r.Context(), in)
	if errors.Is(err, resource.ErrEmptyPayload) {
		api.Fail(w, http.StatusBadRequest, "empty_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.JSON(w, http.StatusCreated, map[string]string{
		"id":      id,
		"message": "Employee created successfully",
	})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")
	in, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	outcome, err := h.Store.PartialUpdate(r.Context(), id, in)
	if err != nil {
		h.failRecordError(w, r, err, "employee_update_failed", "failed to update employee")
		return
	}

	message := "Employee updated successfully"
	if outcome == resource.OutcomeUnchanged {
		message = "Employee data is the same, no update was performed."
	}
	api.JSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")
	if err := h.Store.Delete(r.Context(), id); err != nil {
		h.failRecordError(w, r, err, "employee_delete_failed", "failed to delete employee")
		return
	}
	api.JSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}

func (h *Handler) handleBulkImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportMemory); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_upload", "expected a multipart file upload", middleware.GetRequestID(r.Context()))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_upload", "missing 'file' upload", middleware.GetRequestID(r.Context()))
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".json") {
		api.Fail(w, http.StatusBadRequest, "bad_upload", "invalid file type, please upload a JSON file", middleware.GetRequestID(r.Context()))
		return
	}

	contents, err := io.ReadAll(file)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_upload", "failed to read uploaded file", middleware.GetRequestID(r.Context()))
		return
	}

	summary, err := h.Importer.ImportJSON(r.Context(), contents)
	if errors.Is(err, resource.ErrBadPayload) {
		api.Fail(w, http.StatusBadRequest, "bad_import_payload", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "import_failed", "bulk import failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.JSON(w, http.StatusOK, map[string]any{
		"message":       summary.Message(),
		"created_count": summary.Created,
		"updated_count": summary.Updated,
	})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	today := h.now()
	records, err := h.Store.List(r.Context(), resource.ListQuery{Filter: filterFromQuery(r)}, today)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "export failed", middleware.GetRequestID(r.Context()))
		return
	}
	if len(records) == 0 {
		api.Fail(w, http.StatusNotFound, "not_found", "no employees found to export", middleware.GetRequestID(r.Context()))
		return
	}
	resource.ApplyCountdown(records, today)

	workbook, err := resource.BuildWorkbook(records)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "export failed", middleware.GetRequestID(r.Context()))
		return
	}
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "export failed", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// decodeBody reads a record-like JSON object, rejecting empty payloads.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request) (resource.Input, bool) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_payload", "request body must be a JSON object", middleware.GetRequestID(r.Context()))
		return resource.Input{}, false
	}
	in := resource.DecodeInput(raw)
	if in.IsEmpty() {
		api.Fail(w, http.StatusBadRequest, "empty_payload", resource.ErrEmptyPayload.Error(), middleware.GetRequestID(r.Context()))
		return resource.Input{}, false
	}
	return in, true
}

func (h *Handler) failRecordError(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, resource.ErrInvalidID):
		api.Fail(w, http.StatusBadRequest, "invalid_id", resource.ErrInvalidID.Error(), reqID)
	case errors.Is(err, resource.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", resource.ErrNotFound.Error(), reqID)
	case errors.Is(err, resource.ErrEmptyPayload):
		api.Fail(w, http.StatusBadRequest, "empty_payload", resource.ErrEmptyPayload.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, reqID)
	}
}
