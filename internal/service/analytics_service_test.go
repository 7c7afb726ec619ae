package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/meridianbi/insight-api/internal/database"
	"github.com/meridianbi/insight-api/internal/domain"
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

// fixture seeds one department, two employees, one product, one customer
// and three sales (two completed, one pending) into a fresh in-memory DB.
func fixture(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	dept := domain.Department{Name: "Sales", Location: "New York", Budget: decimal.NewFromInt(500000)}
	require.NoError(t, db.Create(&dept).Error)

	ada := domain.Employee{FirstName: "Ada", LastName: "Nilsen", Email: "ada@example.com", Position: "Manager", Salary: decimal.NewFromInt(90000), DepartmentID: &dept.ID, IsActive: true}
	bo := domain.Employee{FirstName: "Bo", LastName: "Berg", Email: "bo@example.com", Position: "Rep", Salary: decimal.NewFromInt(60000), DepartmentID: &dept.ID, IsActive: true}
	require.NoError(t, db.Create(&ada).Error)
	require.NoError(t, db.Create(&bo).Error)

	laptop := domain.Product{Name: "Laptop", Category: "Electronics", SellingPrice: decimal.NewFromInt(1000)}
	require.NoError(t, db.Create(&laptop).Error)

	cleo := domain.Customer{FirstName: "Cleo", LastName: "Dahl", Email: "cleo@example.com", City: "Oslo"}
	require.NoError(t, db.Create(&cleo).Error)

	sales := []domain.Sale{
		{CustomerID: &cleo.ID, EmployeeID: &ada.ID, ProductID: &laptop.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(1000), TotalAmount: decimal.NewFromInt(1000), SaleDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), Region: "North", Status: domain.SaleStatusCompleted},
		{CustomerID: &cleo.ID, EmployeeID: &ada.ID, ProductID: &laptop.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(1500), TotalAmount: decimal.NewFromInt(1500), SaleDate: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), Region: "North", Status: domain.SaleStatusCompleted},
		{CustomerID: &cleo.ID, EmployeeID: &bo.ID, ProductID: &laptop.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(999), TotalAmount: decimal.NewFromInt(999), SaleDate: time.Date(2025, time.February, 12, 0, 0, 0, 0, time.UTC), Region: "North", Status: domain.SaleStatusPending},
	}
	for i := range sales {
		require.NoError(t, db.Create(&sales[i]).Error)
	}
	return db
}

func newLoader(db *gorm.DB) *repository.SnapshotLoader {
	return repository.NewSnapshotLoader(
		repository.NewDepartmentRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewSaleRepository(db),
	)
}

func TestAnalyticsService_SalaryAnalysisFormatsValues(t *testing.T) {
	db := fixture(t)
	svc := service.NewAnalyticsService(newLoader(db), 3, zap.NewNop())

	resp, err := svc.SalaryAnalysis(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, resp.Employees, 2)

	top := resp.Employees[0]
	assert.Equal(t, "Ada Nilsen", top.EmployeeName)
	assert.Equal(t, "Sales", top.DeptName)
	assert.Equal(t, "$90,000.00", top.Salary)
	assert.Equal(t, 2, top.SalaryQuartile, "two rows fill the first two quartile bins")
	assert.Equal(t, "100.00%", top.PercentileRank)
	assert.Equal(t, "$75,000.00", top.CompanyAvg)
	assert.Equal(t, "$75,000.00", top.DeptAvg)

	assert.Equal(t, "0.00%", resp.Employees[1].PercentileRank)
}

func TestAnalyticsService_MonthlyTrendMostRecentFirst(t *testing.T) {
	db := fixture(t)
	svc := service.NewAnalyticsService(newLoader(db), 3, zap.NewNop())

	resp, err := svc.MonthlyTrend(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, resp.MonthlyTrends, 2)

	feb := resp.MonthlyTrends[0]
	assert.Equal(t, "2025-02", feb.Month)
	assert.Equal(t, 1, feb.TransactionCount, "pending sale does not count")
	assert.Equal(t, "$1,500.00", feb.Revenue)
	require.NotNil(t, feb.GrowthRate)
	assert.Equal(t, "50.00%", *feb.GrowthRate)
	assert.Equal(t, "$1,250.00", feb.ThreeMonthAvg)

	jan := resp.MonthlyTrends[1]
	assert.Equal(t, "2025-01", jan.Month)
	assert.Nil(t, jan.GrowthRate)
	assert.Equal(t, "$1,000.00", jan.ThreeMonthAvg)
}

func TestAnalyticsService_RFMAnalysisUsesInjectedClock(t *testing.T) {
	db := fixture(t)
	svc := service.NewAnalyticsService(newLoader(db), 3, zap.NewNop())
	svc.SetClock(func() time.Time {
		return time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	})

	resp, err := svc.RFMAnalysis(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, resp.RFMSegments, 1)

	row := resp.RFMSegments[0]
	assert.Equal(t, "Cleo Dahl", row.CustomerName)
	assert.Equal(t, 30, row.RecencyDays)
	assert.Equal(t, 2, row.Frequency, "pending sale excluded")
	assert.Equal(t, "$2,500.00", row.LifetimeValue)
	assert.Equal(t, 5, row.RScore)
	assert.Equal(t, 5, row.FScore)
	assert.Equal(t, 5, row.MScore)
	assert.Equal(t, "Champions", row.Segment)
}

func TestAnalyticsService_DepartmentPerformance(t *testing.T) {
	db := fixture(t)
	svc := service.NewAnalyticsService(newLoader(db), 3, zap.NewNop())

	resp, err := svc.DepartmentPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Departments, 1)

	row := resp.Departments[0]
	assert.Equal(t, "Sales", row.DeptName)
	assert.Equal(t, "New York", row.Location)
	assert.Equal(t, 2, row.EmployeeCount)
	assert.Equal(t, "$75,000.00", row.AvgSalary)
	assert.Equal(t, 2, row.TotalSales)
	assert.Equal(t, "$2,500.00", row.TotalRevenue)
	assert.Equal(t, "$1,250.00", row.RevenuePerEmployee)
}

func TestSummaryService_Summary(t *testing.T) {
	db := fixture(t)
	svc := service.NewSummaryService(
		repository.NewDepartmentRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewSaleRepository(db),
		repository.NewSchemaRepository(db),
		zap.NewNop(),
	)

	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Summary, 6)

	byMetric := make(map[string]string, len(resp.Summary))
	metrics := make([]string, 0, len(resp.Summary))
	for _, m := range resp.Summary {
		byMetric[m.Metric] = m.Value
		metrics = append(metrics, m.Metric)
	}

	assert.Equal(t, []string{"customers", "departments", "employees", "products", "sales", "total_revenue"}, metrics)
	assert.Equal(t, "1", byMetric["customers"])
	assert.Equal(t, "2", byMetric["employees"])
	assert.Equal(t, "3", byMetric["sales"])
	assert.Equal(t, "$2,500.00", byMetric["total_revenue"])
}

func TestSummaryService_Tables(t *testing.T) {
	db := fixture(t)
	svc := service.NewSummaryService(
		repository.NewDepartmentRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewSaleRepository(db),
		repository.NewSchemaRepository(db),
		zap.NewNop(),
	)

	resp, err := svc.Tables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(resp.Tables), resp.Total)
	assert.Subset(t, resp.Tables, []string{"customers", "departments", "employees", "products", "sales"})
}
