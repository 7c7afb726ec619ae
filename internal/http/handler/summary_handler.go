package handler

import (
	"net/http"

	"github.com/meridianbi/insight-api/internal/service"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	summaryService *service.SummaryService
	logger         *zap.Logger
}

func NewSummaryHandler(summaryService *service.SummaryService, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// @Summary Database summary
// @Description Returns row counts per table and total completed revenue.
// @Tags Summary
// @Produce json
// @Success 200 {object} domain.SummaryResponse
// @Router /summary [get]
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.summaryService.Summary(r.Context())
	if err != nil {
		h.logger.Error("failed to build summary", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to build summary")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary List database tables
// @Tags Summary
// @Produce json
// @Success 200 {object} domain.TablesResponse
// @Router /tables [get]
func (h *SummaryHandler) Tables(w http.ResponseWriter, r *http.Request) {
	result, err := h.summaryService.Tables(r.Context())
	if err != nil {
		h.logger.Error("failed to list tables", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to list tables")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
