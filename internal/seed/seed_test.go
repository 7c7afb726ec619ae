package seed_test

import (
	"testing"

	"github.com/meridianbi/insight-api/internal/database"
	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/meridianbi/insight-api/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeeder_Run(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := seed.Config{Employees: 20, Products: 10, Customers: 30, Sales: 100}
	require.NoError(t, seed.NewSeeder(db, cfg, zap.NewNop()).Run())

	var departments, employees, products, customers, sales int64
	require.NoError(t, db.Model(&domain.Department{}).Count(&departments).Error)
	require.NoError(t, db.Model(&domain.Employee{}).Count(&employees).Error)
	require.NoError(t, db.Model(&domain.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&domain.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&domain.Sale{}).Count(&sales).Error)

	assert.Equal(t, int64(8), departments)
	assert.Equal(t, int64(20), employees)
	assert.Equal(t, int64(10), products)
	assert.Equal(t, int64(30), customers)
	assert.Equal(t, int64(100), sales)

	var invalid int64
	require.NoError(t, db.Model(&domain.Sale{}).
		Where("status NOT IN ?", []domain.SaleStatus{
			domain.SaleStatusCompleted,
			domain.SaleStatusPending,
			domain.SaleStatusCancelled,
		}).Count(&invalid).Error)
	assert.Zero(t, invalid)

	var missingRegion int64
	require.NoError(t, db.Model(&domain.Sale{}).Where("region = ''").Count(&missingRegion).Error)
	assert.Zero(t, missingRegion)
}
