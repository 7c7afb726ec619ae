package service

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianbi/insight-api/internal/analytics"
	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/meridianbi/insight-api/internal/format"
	"github.com/meridianbi/insight-api/internal/repository"
	"go.uber.org/zap"
)

// AnalyticsService runs the computation engine over a fresh record snapshot
// per request and renders the results for presentation. The engine itself is
// stateless; the service owns only wiring (snapshot loading, formatting).
type AnalyticsService struct {
	snapshots   *repository.SnapshotLoader
	trendWindow int
	now         func() time.Time
	logger      *zap.Logger
}

func NewAnalyticsService(snapshots *repository.SnapshotLoader, trendWindow int, logger *zap.Logger) *AnalyticsService {
	if trendWindow < 1 {
		trendWindow = analytics.DefaultMovingAverageWindow
	}
	return &AnalyticsService{
		snapshots:   snapshots,
		trendWindow: trendWindow,
		now:         time.Now,
		logger:      logger,
	}
}

// SetClock overrides the time source anchoring recency computation
func (s *AnalyticsService) SetClock(now func() time.Time) {
	s.now = now
}

// SalaryAnalysis returns the active-employee salary ranking
func (s *AnalyticsService) SalaryAnalysis(ctx context.Context, limit int) (*domain.SalaryAnalysisResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	ranks := analytics.SalaryRanking(snap, limit)
	rows := make([]domain.SalaryRankDTO, len(ranks))
	for i, r := range ranks {
		rows[i] = domain.SalaryRankDTO{
			EmployeeName:   r.EmployeeName,
			Position:       r.Position,
			DeptName:       r.DeptName,
			Salary:         format.Currency(r.Salary),
			SalaryQuartile: r.Quartile,
			PercentileRank: format.Percent(r.Percentile),
			CompanyAvg:     format.Currency(r.CompanyAvg),
			DeptAvg:        format.Currency(r.DeptAvg),
		}
	}

	s.logger.Debug("salary analysis computed",
		zap.Int("employees", len(rows)),
		zap.Int("limit", limit),
	)
	return &domain.SalaryAnalysisResponse{Employees: rows}, nil
}

// MonthlyTrend returns the revenue trend for the most recent `months` months
func (s *AnalyticsService) MonthlyTrend(ctx context.Context, months int) (*domain.MonthlyTrendResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	points := analytics.MonthlyRevenueTrend(snap, months, s.trendWindow)
	rows := make([]domain.TrendPointDTO, len(points))
	for i, p := range points {
		rows[i] = domain.TrendPointDTO{
			Month:            p.Month.Format("2006-01"),
			TransactionCount: p.TransactionCount,
			Revenue:          format.Currency(p.Revenue),
			GrowthRate:       format.PercentPtr(p.GrowthRate),
			ThreeMonthAvg:    format.Currency(p.MovingAvg),
		}
	}
	return &domain.MonthlyTrendResponse{MonthlyTrends: rows}, nil
}

// RFMAnalysis returns the scored customer segmentation
func (s *AnalyticsService) RFMAnalysis(ctx context.Context, limit int) (*domain.RFMAnalysisResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	segments := analytics.RFMSegmentation(snap, s.now(), limit)
	rows := make([]domain.RFMSegmentDTO, len(segments))
	for i, r := range segments {
		rows[i] = domain.RFMSegmentDTO{
			CustomerName:  r.CustomerName,
			RecencyDays:   r.RecencyDays,
			Frequency:     r.Frequency,
			LifetimeValue: format.Currency(r.Monetary),
			RScore:        r.RScore,
			FScore:        r.FScore,
			MScore:        r.MScore,
			Segment:       r.Segment,
		}
	}
	return &domain.RFMAnalysisResponse{RFMSegments: rows}, nil
}

// TopProducts returns the dense-ranked product revenue ranking
func (s *AnalyticsService) TopProducts(ctx context.Context, limit int) (*domain.TopProductsResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	ranks := analytics.TopProducts(snap, limit)
	rows := make([]domain.ProductRankDTO, len(ranks))
	for i, r := range ranks {
		rows[i] = domain.ProductRankDTO{
			ProductName:   r.ProductName,
			Category:      r.Category,
			TimesSold:     r.TimesSold,
			TotalQuantity: r.TotalQuantity,
			Revenue:       format.Currency(r.Revenue),
			Rank:          r.Rank,
			RevenueShare:  format.Percent(r.RevenueShare),
		}
	}
	return &domain.TopProductsResponse{TopProducts: rows}, nil
}

// CategoryAnalysis returns the product category roll-up
func (s *AnalyticsService) CategoryAnalysis(ctx context.Context) (*domain.CategoryAnalysisResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	summaries := analytics.CategoryPerformance(snap)
	rows := make([]domain.CategorySummaryDTO, len(summaries))
	for i, c := range summaries {
		rows[i] = domain.CategorySummaryDTO{
			Category:       c.Category,
			ProductCount:   c.ProductCount,
			TimesSold:      c.TimesSold,
			UnitsSold:      c.UnitsSold,
			TotalRevenue:   format.Currency(c.TotalRevenue),
			AvgTransaction: format.Currency(c.AvgTransaction),
			RevenueShare:   format.Percent(c.RevenueShare),
		}
	}
	return &domain.CategoryAnalysisResponse{Categories: rows}, nil
}

// DepartmentPerformance returns the department roll-up
func (s *AnalyticsService) DepartmentPerformance(ctx context.Context) (*domain.DepartmentPerformanceResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	summaries := analytics.DepartmentPerformance(snap)
	rows := make([]domain.DepartmentSummaryDTO, len(summaries))
	for i, d := range summaries {
		rows[i] = domain.DepartmentSummaryDTO{
			DeptName:           d.DeptName,
			Location:           d.Location,
			EmployeeCount:      d.EmployeeCount,
			AvgSalary:          format.Currency(d.AvgSalary),
			TotalSales:         d.TotalSales,
			TotalRevenue:       format.Currency(d.TotalRevenue),
			RevenuePerEmployee: format.Currency(d.RevenuePerEmployee),
		}
	}
	return &domain.DepartmentPerformanceResponse{Departments: rows}, nil
}

// TopEmployees returns the employee performance ranking
func (s *AnalyticsService) TopEmployees(ctx context.Context, limit int) (*domain.TopEmployeesResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	ranks := analytics.TopEmployees(snap, limit)
	rows := make([]domain.EmployeePerformanceDTO, len(ranks))
	for i, r := range ranks {
		rows[i] = domain.EmployeePerformanceDTO{
			Rank:            r.Rank,
			EmployeeName:    r.EmployeeName,
			Position:        r.Position,
			DeptName:        r.DeptName,
			TotalSales:      r.TotalSales,
			Revenue:         format.Currency(r.Revenue),
			AvgSale:         format.Currency(r.AvgSale),
			UniqueCustomers: r.UniqueCustomers,
		}
	}
	return &domain.TopEmployeesResponse{TopEmployees: rows}, nil
}

// RegionPerformance returns per-region sales stats across all statuses
func (s *AnalyticsService) RegionPerformance(ctx context.Context) (*domain.RegionPerformanceResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	stats := analytics.RegionStats(snap)
	rows := make([]domain.RegionPerformanceDTO, len(stats))
	for i, r := range stats {
		rows[i] = domain.RegionPerformanceDTO{
			Region:            r.Region,
			TotalTransactions: r.TotalTransactions,
			Completed:         r.Completed,
			Pending:           r.Pending,
			Cancelled:         r.Cancelled,
			TotalRevenue:      format.Currency(r.Revenue),
			CompletionRate:    format.Percent(r.CompletionRate),
		}
	}
	return &domain.RegionPerformanceResponse{Regions: rows}, nil
}
