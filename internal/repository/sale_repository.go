package repository

import (
	"context"

	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// ListAll returns every sale regardless of status; the engine decides
// which statuses contribute to value-bearing metrics
func (r *SaleRepository) ListAll(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.WithContext(ctx).Order("sale_date").Find(&sales).Error
	return sales, err
}

func (r *SaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Sale{}).Count(&count).Error
	return count, err
}

// TotalCompletedRevenue sums completed sale totals for the summary endpoint
func (r *SaleRepository) TotalCompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Sale{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status = ?", domain.SaleStatusCompleted).
		Scan(&result).Error
	return result.Total, err
}
