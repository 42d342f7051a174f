package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apierrors "scorecli/internal/errors"
	"scorecli/internal/files"
)

// DatasetHandler lists the datasets available for summarization.
type DatasetHandler struct {
	discovery *files.Discovery
	logger    *slog.Logger
}

// NewDatasetHandler creates a dataset handler over the data directory.
func NewDatasetHandler(discovery *files.Discovery, logger *slog.Logger) *DatasetHandler {
	return &DatasetHandler{
		discovery: discovery,
		logger:    logger.With(slog.String("handler", "dataset")),
	}
}

// ListDatasets handles GET /api/datasets.
func (h *DatasetHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	datasets, err := h.discovery.ListDatasets()
	if err != nil {
		h.logger.ErrorContext(ctx, "dataset listing failed", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.ErrInternalServer)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"datasets": datasets,
		"count":    len(datasets),
	})
}
