package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/meridianbi/insight-api/internal/database"
	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/meridianbi/insight-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestSaleRepository_ListAllOrdersBySaleDate(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSaleRepository(db)

	sales := []domain.Sale{
		{Quantity: 1, UnitPrice: decimal.NewFromInt(50), TotalAmount: decimal.NewFromInt(50), SaleDate: day(2025, time.March, 10), Status: domain.SaleStatusCompleted},
		{Quantity: 1, UnitPrice: decimal.NewFromInt(20), TotalAmount: decimal.NewFromInt(20), SaleDate: day(2025, time.January, 5), Status: domain.SaleStatusCompleted},
		{Quantity: 1, UnitPrice: decimal.NewFromInt(30), TotalAmount: decimal.NewFromInt(30), SaleDate: day(2025, time.February, 20), Status: domain.SaleStatusPending},
	}
	for i := range sales {
		require.NoError(t, db.Create(&sales[i]).Error)
	}

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2025-01-05", got[0].SaleDate.Format("2006-01-02"))
	assert.Equal(t, "2025-02-20", got[1].SaleDate.Format("2006-01-02"))
	assert.Equal(t, "2025-03-10", got[2].SaleDate.Format("2006-01-02"))
}

func TestSaleRepository_TotalCompletedRevenue(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSaleRepository(db)

	sales := []domain.Sale{
		{Quantity: 1, UnitPrice: decimal.NewFromInt(100), TotalAmount: decimal.RequireFromString("100.50"), SaleDate: day(2025, time.May, 1), Status: domain.SaleStatusCompleted},
		{Quantity: 1, UnitPrice: decimal.NewFromInt(200), TotalAmount: decimal.RequireFromString("199.50"), SaleDate: day(2025, time.May, 2), Status: domain.SaleStatusCompleted},
		{Quantity: 1, UnitPrice: decimal.NewFromInt(999), TotalAmount: decimal.NewFromInt(999), SaleDate: day(2025, time.May, 3), Status: domain.SaleStatusPending},
		{Quantity: 1, UnitPrice: decimal.NewFromInt(999), TotalAmount: decimal.NewFromInt(999), SaleDate: day(2025, time.May, 4), Status: domain.SaleStatusCancelled},
	}
	for i := range sales {
		require.NoError(t, db.Create(&sales[i]).Error)
	}

	total, err := repo.TotalCompletedRevenue(context.Background())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(300)), "got %s", total)
}

func TestSaleRepository_TotalCompletedRevenueEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSaleRepository(db)

	total, err := repo.TotalCompletedRevenue(context.Background())
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestEmployeeRepository_ListAllIncludesInactive(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEmployeeRepository(db)

	employees := []domain.Employee{
		{FirstName: "Ada", LastName: "Nilsen", Email: "ada@example.com", Position: "Engineer", Salary: decimal.NewFromInt(80000), IsActive: true},
		{FirstName: "Bo", LastName: "Berg", Email: "bo@example.com", Position: "Analyst", Salary: decimal.NewFromInt(60000), IsActive: false},
	}
	for i := range employees {
		require.NoError(t, db.Create(&employees[i]).Error)
	}

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSnapshotLoader_Load(t *testing.T) {
	db := newTestDB(t)

	dept := domain.Department{Name: "Sales", Location: "New York", Budget: decimal.NewFromInt(500000)}
	require.NoError(t, db.Create(&dept).Error)

	emp := domain.Employee{FirstName: "Ada", LastName: "Nilsen", Email: "ada@example.com", Position: "Manager", Salary: decimal.NewFromInt(90000), DepartmentID: &dept.ID, IsActive: true}
	require.NoError(t, db.Create(&emp).Error)

	product := domain.Product{Name: "Laptop", Category: "Electronics", SellingPrice: decimal.NewFromInt(1200)}
	require.NoError(t, db.Create(&product).Error)

	customer := domain.Customer{FirstName: "Cleo", LastName: "Dahl", Email: "cleo@example.com", City: "Oslo"}
	require.NoError(t, db.Create(&customer).Error)

	sale := domain.Sale{
		CustomerID:  &customer.ID,
		EmployeeID:  &emp.ID,
		ProductID:   &product.ID,
		Quantity:    2,
		UnitPrice:   decimal.NewFromInt(1200),
		TotalAmount: decimal.NewFromInt(2400),
		SaleDate:    day(2025, time.June, 1),
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

	snap, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Departments, 1)
	assert.Len(t, snap.Employees, 1)
	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Customers, 1)
	require.Len(t, snap.Sales, 1)
	assert.Equal(t, customer.ID, *snap.Sales[0].CustomerID)
}

func TestSchemaRepository_TableNames(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSchemaRepository(db)

	tables, err := repo.TableNames(context.Background())
	require.NoError(t, err)

	assert.Subset(t, tables, []string{"customers", "departments", "employees", "products", "sales"})
	assert.IsIncreasing(t, tables)
}
