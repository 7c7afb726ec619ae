package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meridianbi/insight-api/internal/database"
	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/meridianbi/insight-api/internal/http/handler"
	"github.com/meridianbi/insight-api/internal/repository"
	"github.com/meridianbi/insight-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSummaryHandler(t *testing.T) *handler.SummaryHandler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	require.NoError(t, db.Create(&domain.Department{Name: "Sales", Location: "New York"}).Error)

	svc := service.NewSummaryService(
		repository.NewDepartmentRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewSaleRepository(db),
		repository.NewSchemaRepository(db),
		zap.NewNop(),
	)
	return handler.NewSummaryHandler(svc, zap.NewNop())
}

func TestSummary_OK(t *testing.T) {
	h := newSummaryHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Summary, 6)

	byMetric := make(map[string]string)
	for _, m := range body.Summary {
		byMetric[m.Metric] = m.Value
	}
	assert.Equal(t, "1", byMetric["departments"])
	assert.Equal(t, "0", byMetric["sales"])
	assert.Equal(t, "$0.00", byMetric["total_revenue"])
}

func TestTables_OK(t *testing.T) {
	h := newSummaryHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/tables", nil)
	rec := httptest.NewRecorder()
	h.Tables(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.TablesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, len(body.Tables), body.Total)
	assert.Contains(t, body.Tables, "departments")
}
