package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

// Export defaults mirroring the upstream export script
const (
	exportTrendMonths   = 24
	exportEmployeeLimit = 50
	exportCustomerLimit = 100
	exportProductLimit  = 100
)

// ExportService writes the computed analytics tables to CSV files. The rows
// carry the same formatted values the API serves; nothing downstream ever
// re-parses them into numbers.
type ExportService struct {
	analytics *AnalyticsService
	logger    *zap.Logger
}

func NewExportService(analytics *AnalyticsService, logger *zap.Logger) *ExportService {
	return &ExportService{
		analytics: analytics,
		logger:    logger,
	}
}

// ExportAll writes every analytics table to outputDir, creating it if needed
func (s *ExportService) ExportAll(ctx context.Context, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	exports := []struct {
		filename string
		rows     func(context.Context) ([][]string, error)
	}{
		{"department_performance.csv", s.departmentRows},
		{"monthly_sales_trend.csv", s.trendRows},
		{"top_employees.csv", s.employeeRows},
		{"customer_rfm.csv", s.customerRows},
		{"product_performance.csv", s.productRows},
	}

	for _, export := range exports {
		rows, err := export.rows(ctx)
		if err != nil {
			return fmt.Errorf("failed to compute %s: %w", export.filename, err)
		}
		path := filepath.Join(outputDir, export.filename)
		if err := writeCSV(path, rows); err != nil {
			return fmt.Errorf("failed to write %s: %w", export.filename, err)
		}
		s.logger.Info("exported analytics table",
			zap.String("file", export.filename),
			zap.Int("rows", len(rows)-1),
		)
	}
	return nil
}

func (s *ExportService) departmentRows(ctx context.Context) ([][]string, error) {
	result, err := s.analytics.DepartmentPerformance(ctx)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"dept_name", "location", "employee_count", "avg_salary", "total_sales", "total_revenue", "revenue_per_employee"}}
	for _, d := range result.Departments {
		rows = append(rows, []string{
			d.DeptName, d.Location, strconv.Itoa(d.EmployeeCount), d.AvgSalary,
			strconv.Itoa(d.TotalSales), d.TotalRevenue, d.RevenuePerEmployee,
		})
	}
	return rows, nil
}

func (s *ExportService) trendRows(ctx context.Context) ([][]string, error) {
	result, err := s.analytics.MonthlyTrend(ctx, exportTrendMonths)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"month", "transaction_count", "revenue", "growth_rate", "three_month_avg"}}
	for _, p := range result.MonthlyTrends {
		growth := ""
		if p.GrowthRate != nil {
			growth = *p.GrowthRate
		}
		rows = append(rows, []string{
			p.Month, strconv.Itoa(p.TransactionCount), p.Revenue, growth, p.ThreeMonthAvg,
		})
	}
	return rows, nil
}

func (s *ExportService) employeeRows(ctx context.Context) ([][]string, error) {
	result, err := s.analytics.TopEmployees(ctx, exportEmployeeLimit)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"rank", "employee_name", "position", "dept_name", "total_sales", "revenue", "avg_sale", "unique_customers"}}
	for _, e := range result.TopEmployees {
		rows = append(rows, []string{
			strconv.Itoa(e.Rank), e.EmployeeName, e.Position, e.DeptName,
			strconv.Itoa(e.TotalSales), e.Revenue, e.AvgSale, strconv.Itoa(e.UniqueCustomers),
		})
	}
	return rows, nil
}

func (s *ExportService) customerRows(ctx context.Context) ([][]string, error) {
	result, err := s.analytics.RFMAnalysis(ctx, exportCustomerLimit)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"customer_name", "recency_days", "frequency", "lifetime_value", "r_score", "f_score", "m_score", "segment"}}
	for _, c := range result.RFMSegments {
		rows = append(rows, []string{
			c.CustomerName, strconv.Itoa(c.RecencyDays), strconv.Itoa(c.Frequency), c.LifetimeValue,
			strconv.Itoa(c.RScore), strconv.Itoa(c.FScore), strconv.Itoa(c.MScore), c.Segment,
		})
	}
	return rows, nil
}

func (s *ExportService) productRows(ctx context.Context) ([][]string, error) {
	result, err := s.analytics.TopProducts(ctx, exportProductLimit)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"rank", "product_name", "category", "times_sold", "total_quantity", "revenue", "revenue_share"}}
	for _, p := range result.TopProducts {
		rows = append(rows, []string{
			strconv.Itoa(p.Rank), p.ProductName, p.Category, strconv.Itoa(p.TimesSold),
			strconv.Itoa(p.TotalQuantity), p.Revenue, p.RevenueShare,
		})
	}
	return rows, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
