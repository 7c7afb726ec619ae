package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/meridianbi/insight-api/internal/analytics/window"
	"github.com/shopspring/decimal"
)

// RecencySentinelDays is assigned to customers without a completed sale.
// Such customers are excluded from scoring before quintiles are computed,
// so the sentinel never reaches the output; it exists only between metric
// computation and the frequency filter.
const RecencySentinelDays = 999

// rfmQuintiles is the bin count for all three RFM scores
const rfmQuintiles = 5

// Customer segment labels assigned by the RFM rule cascade
const (
	SegmentChampions = "Champions"
	SegmentLoyal     = "Loyal"
	SegmentNew       = "New"
	SegmentAtRisk    = "At Risk"
	SegmentPotential = "Potential"
)

// RFMRow is one scored customer. CustomerName is empty when the sale's
// customer reference does not resolve to a customer record.
type RFMRow struct {
	CustomerID   uuid.UUID
	CustomerName string
	RecencyDays  int
	Frequency    int
	Monetary     decimal.Decimal
	RScore       int
	FScore       int
	MScore       int
	Segment      string
}

// RFMSegmentation scores every purchasing customer on recency, frequency
// and monetary value over completed sales, assigns 1-5 quintile scores and
// a segment label, and returns rows descending by monetary value truncated
// to limit. "now" anchors the recency computation so results are
// reproducible. Customers with zero completed sales never appear.
func RFMSegmentation(snap *Snapshot, now time.Time, limit int) []RFMRow {
	customers := snap.customersByID()

	type metrics struct {
		lastSale  time.Time
		frequency int
		monetary  decimal.Decimal
	}
	byCustomer := make(map[uuid.UUID]*metrics)
	order := make([]uuid.UUID, 0)
	for _, sale := range snap.completedSales() {
		if sale.CustomerID == nil {
			continue
		}
		m, ok := byCustomer[*sale.CustomerID]
		if !ok {
			m = &metrics{}
			byCustomer[*sale.CustomerID] = m
			order = append(order, *sale.CustomerID)
		}
		m.frequency++
		m.monetary = m.monetary.Add(sale.TotalAmount)
		if sale.SaleDate.After(m.lastSale) {
			m.lastSale = sale.SaleDate
		}
	}
	if len(order) == 0 {
		return []RFMRow{}
	}

	rows := make([]RFMRow, 0, len(order))
	for _, id := range order {
		m := byCustomer[id]
		recency := RecencySentinelDays
		if m.frequency > 0 {
			recency = daysBetween(m.lastSale, now)
		}
		row := RFMRow{
			CustomerID:  id,
			RecencyDays: recency,
			Frequency:   m.frequency,
			Monetary:    m.monetary,
		}
		if c, ok := customers[id]; ok {
			row.CustomerName = c.FullName()
		}
		rows = append(rows, row)
	}

	// Recency ascending: most recent purchasers first, highest score.
	scoreBy(rows, func(i, j int) bool {
		return rows[i].RecencyDays < rows[j].RecencyDays
	}, func(row *RFMRow, score int) { row.RScore = score })

	// Frequency and monetary descending: highest values first, highest
	// score. Opposite polarity from recency.
	scoreBy(rows, func(i, j int) bool {
		return rows[i].Frequency > rows[j].Frequency
	}, func(row *RFMRow, score int) { row.FScore = score })
	scoreBy(rows, func(i, j int) bool {
		return rows[i].Monetary.GreaterThan(rows[j].Monetary)
	}, func(row *RFMRow, score int) { row.MScore = score })

	for i := range rows {
		rows[i].Segment = SegmentForScores(rows[i].RScore, rows[i].FScore, rows[i].MScore)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Monetary.GreaterThan(rows[j].Monetary)
	})
	return truncate(rows, limit)
}

// scoreBy stably sorts row indices by the given order and assigns reversed
// quintile numbers so the front of the order receives the highest score.
func scoreBy(rows []RFMRow, less func(i, j int) bool, assign func(*RFMRow, int)) {
	indices := make([]int, len(rows))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return less(indices[a], indices[b])
	})
	scores := window.Scores(len(rows), rfmQuintiles)
	for pos, idx := range indices {
		assign(&rows[idx], scores[pos])
	}
}

// SegmentForScores evaluates the fixed rule cascade top to bottom, first
// match wins. The strict variant is used: Loyal requires all three scores
// >= 3.
func SegmentForScores(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return SegmentChampions
	case r >= 3 && f >= 3 && m >= 3:
		return SegmentLoyal
	case r >= 4 && f <= 2:
		return SegmentNew
	case r <= 2:
		return SegmentAtRisk
	default:
		return SegmentPotential
	}
}

// daysBetween returns whole days from a past date to now, at date granularity
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay) / (24 * time.Hour))
}
