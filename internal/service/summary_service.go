package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/meridianbi/insight-api/internal/format"
	"github.com/meridianbi/insight-api/internal/repository"
	"go.uber.org/zap"
)

// SummaryService produces the database overview: per-table record counts,
// total completed revenue, and the table listing.
type SummaryService struct {
	departmentRepo *repository.DepartmentRepository
	employeeRepo   *repository.EmployeeRepository
	productRepo    *repository.ProductRepository
	customerRepo   *repository.CustomerRepository
	saleRepo       *repository.SaleRepository
	schemaRepo     *repository.SchemaRepository
	logger         *zap.Logger
}

func NewSummaryService(
	departmentRepo *repository.DepartmentRepository,
	employeeRepo *repository.EmployeeRepository,
	productRepo *repository.ProductRepository,
	customerRepo *repository.CustomerRepository,
	saleRepo *repository.SaleRepository,
	schemaRepo *repository.SchemaRepository,
	logger *zap.Logger,
) *SummaryService {
	return &SummaryService{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		productRepo:    productRepo,
		customerRepo:   customerRepo,
		saleRepo:       saleRepo,
		schemaRepo:     schemaRepo,
		logger:         logger,
	}
}

// Summary returns metric/value rows ordered by metric name
func (s *SummaryService) Summary(ctx context.Context) (*domain.SummaryResponse, error) {
	counts := []struct {
		metric string
		count  func(context.Context) (int64, error)
	}{
		{"departments", s.departmentRepo.Count},
		{"employees", s.employeeRepo.Count},
		{"products", s.productRepo.Count},
		{"customers", s.customerRepo.Count},
		{"sales", s.saleRepo.Count},
	}

	rows := make([]domain.SummaryMetricDTO, 0, len(counts)+1)
	for _, c := range counts {
		count, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.metric, err)
		}
		rows = append(rows, domain.SummaryMetricDTO{
			Metric: c.metric,
			Value:  strconv.FormatInt(count, 10),
		})
	}

	revenue, err := s.saleRepo.TotalCompletedRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	rows = append(rows, domain.SummaryMetricDTO{
		Metric: "total_revenue",
		Value:  format.Currency(revenue),
	})

	sort.Slice(rows, func(i, j int) bool { return rows[i].Metric < rows[j].Metric })
	return &domain.SummaryResponse{Summary: rows}, nil
}

// Tables lists the tables of the connected database
func (s *SummaryService) Tables(ctx context.Context) (*domain.TablesResponse, error) {
	tables, err := s.schemaRepo.TableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return &domain.TablesResponse{Tables: tables, Total: len(tables)}, nil
}
