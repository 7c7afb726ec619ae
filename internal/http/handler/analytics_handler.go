package handler

import (
	"net/http"
	"strconv"

	"github.com/meridianbi/insight-api/internal/service"
	"go.uber.org/zap"
)

// Query parameter bounds per endpoint
const (
	defaultEmployeeLimit = 20
	defaultTrendMonths   = 12
	defaultCustomerLimit = 20
	defaultProductLimit  = 10
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

type limitParams struct {
	Limit int `validate:"gte=1,lte=200"`
}

type productLimitParams struct {
	Limit int `validate:"gte=1,lte=50"`
}

type monthsParams struct {
	Months int `validate:"gte=1,lte=36"`
}

// parseIntParam reads an optional integer query parameter, falling back to def.
// A non-numeric value is a hard error, not a silent fallback.
func parseIntParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// @Summary Employee salary analysis
// @Description Ranks active employees by salary with quartile assignment, percentile rank, and company and department averages.
// @Tags Analytics
// @Produce json
// @Param limit query int false "Maximum rows returned" default(20) minimum(1) maximum(200)
// @Success 200 {object} domain.SalaryAnalysisResponse
// @Failure 400 {object} domain.APIError
// @Router /analytics/employees/salary [get]
func (h *AnalyticsHandler) SalaryAnalysis(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r, "limit", defaultEmployeeLimit)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if err := validate.Struct(limitParams{Limit: limit}); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.analyticsService.SalaryAnalysis(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to compute salary analysis", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to compute salary analysis")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Top employees by revenue
// @Description Ranks active employees by completed sales revenue with transaction counts and unique customer counts.
// @Tags Analytics
// @Produce json
// @Param limit query int false "Maximum rows returned" default(20) minimum(1) maximum(200)
// @Success 200 {object} domain.TopEmployeesResponse
// @Failure 400 {object} domain.APIError
// @Router /analytics/employees/top [get]
func (h *AnalyticsHandler) TopEmployees(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r, "limit", defaultEmployeeLimit)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if err := validate.Struct(limitParams{Limit: limit}); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.analyticsService.TopEmployees(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to compute top employees", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to compute top employees")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Monthly revenue trend
// @Description Returns completed-sale revenue per calendar month with month-over-month growth and a trailing moving average, most recent month first.
// @Tags Analytics
// @Produce json
// @Param months query int false "Number of months returned" default(12) minimum(1) maximum(36)
// @Success 200 {object} domain.MonthlyTrendResponse
// @Failure 400 {object} domain.APIError
// @Router /analytics/sales/monthly [get]
func (h *AnalyticsHandler) MonthlyTrend(w http.ResponseWriter, r *http.Request) {
	months, err := parseIntParam(r, "months", defaultTrendMonths)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "months must be an integer")
		return
	}
	if err := validate.Struct(monthsParams{Months: months}); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.analyticsService.MonthlyTrend(r.Context(), months)
	if err != nil {
		h.logger.Error("failed to compute monthly trend", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to compute monthly trend")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Sales by region
// @Description Returns per-region transaction counts by status, completed revenue, and completion rate.
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.RegionPerformanceResponse
// @Router /analytics/sales/regions [get]
func (h *AnalyticsHandler) RegionPerformance(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.RegionPerformance(r.Context())
	if err != nil {
		h.logger.Error("failed to compute region performance", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to compute region performance")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Customer RFM segmentation
// @Description Scores customers on recency, frequency, and monetary quintiles and assigns a behavioral segment, highest lifetime value first.
// @Tags Analytics
// @Produce json
// @Param limit query int false "Maximum rows returned" default(20) minimum(1) maximum(200)
// @Success 200 {object} domain.RFMAnalysisResponse
// @Failure 400 {object} domain.APIError
// @Router /analytics/customers/rfm [get]
func (h *AnalyticsHandler) RFMAnalysis(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r, "limit", defaultCustomerLimit)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if err := validate.Struct(limitParams{Limit: limit}); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.analyticsService.RFMAnalysis(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to compute rfm analysis", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to compute rfm analysis")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Top products by revenue
// @Description Ranks products by completed sales revenue with dense ranking and revenue share of the full catalog.
// @Tags Analytics
// @Produce json
// @Param limit query int false "Maximum rows returned" default(10) minimum(1) maximum(50)
// @Success 200 {object} domain.TopProductsResponse
// @Failure 400 {object} domain.APIError
// @Router /analytics/products/top [get]
func (h *AnalyticsHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r, "limit", defaultProductLimit)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if err := validate.Struct(productLimitParams{Limit: limit}); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.analyticsService.TopProducts(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to compute top products", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to compute top products")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Product category analysis
// @Description Rolls products up by category with transaction counts, units sold, revenue, average transaction value, and revenue share.
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.CategoryAnalysisResponse
// @Router /analytics/products/categories [get]
func (h *AnalyticsHandler) CategoryAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.CategoryAnalysis(r.Context())
	if err != nil {
		h.logger.Error("failed to compute category analysis", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to compute category analysis")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Department performance
// @Description Returns per-department headcount, average salary, completed sales revenue, and revenue per employee.
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.DepartmentPerformanceResponse
// @Router /analytics/departments [get]
func (h *AnalyticsHandler) DepartmentPerformance(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.DepartmentPerformance(r.Context())
	if err != nil {
		h.logger.Error("failed to compute department performance", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to compute department performance")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
