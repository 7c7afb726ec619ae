package analytics

import (
	"math"
	"sort"

	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/shopspring/decimal"
)

// RegionPerformance is one sales region row. Raw status counts include
// pending and cancelled sales; revenue counts completed sales only.
type RegionPerformance struct {
	Region            string
	TotalTransactions int
	Completed         int
	Pending           int
	Cancelled         int
	Revenue           decimal.Decimal
	CompletionRate    float64 // percent, two decimals
}

// RegionStats aggregates every sale by region regardless of status,
// ordered descending by completed revenue.
func RegionStats(snap *Snapshot) []RegionPerformance {
	byRegion := make(map[string]*RegionPerformance)
	order := make([]string, 0)
	for i := range snap.Sales {
		sale := &snap.Sales[i]
		region := sale.Region
		if region == "" {
			region = "Unknown"
		}
		row, ok := byRegion[region]
		if !ok {
			row = &RegionPerformance{Region: region}
			byRegion[region] = row
			order = append(order, region)
		}
		row.TotalTransactions++
		switch sale.Status {
		case domain.SaleStatusCompleted:
			row.Completed++
			row.Revenue = row.Revenue.Add(sale.TotalAmount)
		case domain.SaleStatusPending:
			row.Pending++
		case domain.SaleStatusCancelled:
			row.Cancelled++
		}
	}

	rows := make([]RegionPerformance, 0, len(order))
	for _, region := range order {
		row := byRegion[region]
		if row.TotalTransactions > 0 {
			rate := float64(row.Completed) / float64(row.TotalTransactions) * 100
			row.CompletionRate = math.Round(rate*100) / 100
		}
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	return rows
}
