package dashboardhandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"resourcing/internal/domain/dashboard"
	"resourcing/internal/transport/http/api"
	"resourcing/internal/transport/http/middleware"
)

type Handler struct {
	Service *dashboard.Service

	now func() time.Time
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{Service: service, now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard-summary", h.handleSummary)
	r.Get("/dashboard-summary/export-pdf", h.handleSummaryPDF)
	r.Get("/skill-distribution", h.handleSkillDistribution)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context(), h.now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.JSON(w, http.StatusOK, summary)
}

func (h *Handler) handleSkillDistribution(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Service.SkillDistribution(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "skill_distribution_failed", "failed to build skill distribution", middleware.GetRequestID(r.Context()))
		return
	}
	api.JSON(w, http.StatusOK, groups)
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	today := h.now()
	summary, err := h.Service.Summary(r.Context(), today)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard summary", middleware.GetRequestID(r.Context()))
		return
	}
	payload, err := dashboard.SummaryPDF(summary, today)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to render summary report", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="dashboard-summary.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
