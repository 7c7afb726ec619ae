package analytics

import (
	"sort"
	"time"

	"github.com/meridianbi/insight-api/internal/analytics/window"
	"github.com/shopspring/decimal"
)

// DefaultMovingAverageWindow is the trailing window used by the revenue
// trend when the caller does not configure one.
const DefaultMovingAverageWindow = 3

// TrendPoint is one calendar month of the revenue trend. GrowthRate is nil
// when there is no prior month in the series or its revenue is zero.
type TrendPoint struct {
	Month            time.Time // first day of the month, UTC
	TransactionCount int
	Revenue          decimal.Decimal
	GrowthRate       *float64
	MovingAvg        decimal.Decimal
}

// MonthlyRevenueTrend aggregates completed sales by calendar month and
// computes period-over-period growth plus a trailing moving average of
// movingAvgWindow months. Growth and averages are computed over the full
// history so the oldest returned months carry correct lag values; only then
// is the series truncated to the most recent `months` entries, returned
// most-recent-first.
func MonthlyRevenueTrend(snap *Snapshot, months, movingAvgWindow int) []TrendPoint {
	if movingAvgWindow < 1 {
		movingAvgWindow = DefaultMovingAverageWindow
	}

	counts := make(map[time.Time]int)
	revenues := make(map[time.Time]decimal.Decimal)
	for _, sale := range snap.completedSales() {
		month := monthKey(sale.SaleDate)
		counts[month]++
		revenues[month] = revenues[month].Add(sale.TotalAmount)
	}
	if len(counts) == 0 {
		return []TrendPoint{}
	}

	keys := make([]time.Time, 0, len(counts))
	for month := range counts {
		keys = append(keys, month)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	values := make([]decimal.Decimal, len(keys))
	for i, month := range keys {
		values[i] = revenues[month]
	}
	growth := window.GrowthRates(values)
	averages := window.MovingAverages(values, movingAvgWindow)

	points := make([]TrendPoint, len(keys))
	for i, month := range keys {
		points[i] = TrendPoint{
			Month:            month,
			TransactionCount: counts[month],
			Revenue:          values[i],
			GrowthRate:       growth[i],
			MovingAvg:        averages[i],
		}
	}

	if months > 0 && len(points) > months {
		points = points[len(points)-months:]
	}

	// most recent first
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}

// monthKey truncates a date to year-month granularity in UTC
func monthKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
