package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "scorecli/internal/errors"
	"scorecli/internal/exporter"
	"scorecli/internal/grading"
	"scorecli/internal/services"
)

// ReportHandler serves score summaries and graded records.
type ReportHandler struct {
	service *services.ReportService
	logger  *slog.Logger
}

// NewReportHandler creates a report handler.
func NewReportHandler(service *services.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "report")),
	}
}

// Routes returns the report API routes.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/summary", h.GetSummary)
	r.Get("/records", h.GetRecords)
	return r
}

// requestParams extracts and validates the shared query parameters:
// n selects the dataset by record count, pipeline selects the
// aggregation strategy.
func (h *ReportHandler) requestParams(r *http.Request) (int, grading.Pipeline, *apierrors.APIError) {
	numRecords := 100
	if raw := r.URL.Query().Get("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return 0, "", apierrors.NewAPIErrorWithDetails(http.StatusBadRequest,
				"INVALID_PARAMETER", "Invalid parameter value", "n must be a positive integer")
		}
		numRecords = n
	}

	pipeline := grading.PipelineFold
	if raw := r.URL.Query().Get("pipeline"); raw != "" {
		pipeline = grading.Pipeline(raw)
		if !pipeline.IsValid() {
			return 0, "", apierrors.NewAPIErrorWithDetails(http.StatusBadRequest,
				"INVALID_PARAMETER", "Invalid parameter value", "pipeline must be fold or grouped")
		}
	}

	return numRecords, pipeline, nil
}

// GetSummary handles GET /api/summary.
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	numRecords, pipeline, apiErr := h.requestParams(r)
	if apiErr != nil {
		render.Render(w, r, apiErr)
		return
	}

	data, err := h.service.SummarizeDataset(ctx, numRecords, pipeline)
	if err != nil {
		h.logger.ErrorContext(ctx, "summary failed",
			slog.Int("num_records", numRecords),
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.DatasetNotFoundError(err))
		return
	}

	// The summary endpoint omits per-record detail.
	envelope := exporter.NewEnvelope(exporter.ReportData{Summary: data.Summary})
	render.JSON(w, r, envelope)
}

// GetRecords handles GET /api/records, returning the graded records in
// input order alongside the summary.
func (h *ReportHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	numRecords, pipeline, apiErr := h.requestParams(r)
	if apiErr != nil {
		render.Render(w, r, apiErr)
		return
	}

	data, err := h.service.SummarizeDataset(ctx, numRecords, pipeline)
	if err != nil {
		h.logger.ErrorContext(ctx, "records fetch failed",
			slog.Int("num_records", numRecords),
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.DatasetNotFoundError(err))
		return
	}

	render.JSON(w, r, exporter.NewEnvelope(data))
}
