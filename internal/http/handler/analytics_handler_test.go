package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meridianbi/insight-api/internal/database"
	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/meridianbi/insight-api/internal/http/handler"
	"github.com/meridianbi/insight-api/internal/repository"
	"github.com/meridianbi/insight-api/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHandler(t *testing.T) *handler.AnalyticsHandler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	dept := domain.Department{Name: "Sales", Location: "New York"}
	require.NoError(t, db.Create(&dept).Error)
	emp := domain.Employee{FirstName: "Ada", LastName: "Nilsen", Email: "ada@example.com", Position: "Manager", Salary: decimal.NewFromInt(90000), DepartmentID: &dept.ID, IsActive: true}
	require.NoError(t, db.Create(&emp).Error)
	sale := domain.Sale{
		EmployeeID:  &emp.ID,
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(500),
		TotalAmount: decimal.NewFromInt(500),
		SaleDate:    time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		Region:      "North",
		Status:      domain.SaleStatusCompleted,
	}
	require.NoError(t, db.Create(&sale).Error)

	loader := repository.NewSnapshotLoader(
		repository.NewDepartmentRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewSaleRepository(db),
	)
	svc := service.NewAnalyticsService(loader, 3, zap.NewNop())
	return handler.NewAnalyticsHandler(svc, zap.NewNop())
}

func TestSalaryAnalysis_OK(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/employees/salary", nil)
	rec := httptest.NewRecorder()
	h.SalaryAnalysis(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body domain.SalaryAnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Employees, 1)
	assert.Equal(t, "Ada Nilsen", body.Employees[0].EmployeeName)
	assert.Equal(t, "$90,000.00", body.Employees[0].Salary)
}

func TestSalaryAnalysis_NonNumericLimit(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/employees/salary?limit=abc", nil)
	rec := httptest.NewRecorder()
	h.SalaryAnalysis(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.ErrorTypeBadRequest, body.Type)
	assert.Equal(t, "limit must be an integer", body.Detail)
}

func TestLimitValidation(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantField  string
	}{
		{
			name:       "salary limit zero",
			target:     "/api/v1/analytics/employees/salary?limit=0",
			wantStatus: http.StatusBadRequest,
			wantField:  "limit",
		},
		{
			name:       "salary limit over maximum",
			target:     "/api/v1/analytics/employees/salary?limit=201",
			wantStatus: http.StatusBadRequest,
			wantField:  "limit",
		},
		{
			name:       "product limit over maximum",
			target:     "/api/v1/analytics/products/top?limit=51",
			wantStatus: http.StatusBadRequest,
			wantField:  "limit",
		},
		{
			name:       "months over maximum",
			target:     "/api/v1/analytics/sales/monthly?months=37",
			wantStatus: http.StatusBadRequest,
			wantField:  "months",
		},
		{
			name:       "months in range",
			target:     "/api/v1/analytics/sales/monthly?months=6",
			wantStatus: http.StatusOK,
		},
		{
			name:       "product limit in range",
			target:     "/api/v1/analytics/products/top?limit=5",
			wantStatus: http.StatusOK,
		},
	}

	handlers := map[string]http.HandlerFunc{
		"/api/v1/analytics/employees/salary": h.SalaryAnalysis,
		"/api/v1/analytics/products/top":     h.TopProducts,
		"/api/v1/analytics/sales/monthly":    h.MonthlyTrend,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			handlers[req.URL.Path](rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusBadRequest {
				return
			}

			var body domain.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, domain.ErrorTypeValidation, body.Type)
			assert.Contains(t, body.Errors, tt.wantField)
		})
	}
}

func TestMonthlyTrend_OK(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/sales/monthly", nil)
	rec := httptest.NewRecorder()
	h.MonthlyTrend(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.MonthlyTrendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.MonthlyTrends, 1)
	assert.Equal(t, "2025-04", body.MonthlyTrends[0].Month)
	assert.Equal(t, "$500.00", body.MonthlyTrends[0].Revenue)
	assert.Nil(t, body.MonthlyTrends[0].GrowthRate)
}

func TestRegionPerformance_OK(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/sales/regions", nil)
	rec := httptest.NewRecorder()
	h.RegionPerformance(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.RegionPerformanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Regions, 1)
	assert.Equal(t, "North", body.Regions[0].Region)
	assert.Equal(t, "100.00%", body.Regions[0].CompletionRate)
}

func TestRFMAnalysis_EmptyDataset(t *testing.T) {
	h := newHandler(t)

	// The fixture sale has no customer reference, so no customer qualifies.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/customers/rfm", nil)
	rec := httptest.NewRecorder()
	h.RFMAnalysis(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.RFMAnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.RFMSegments)
}
