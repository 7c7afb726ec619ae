package analytics_test

import (
	"testing"
	"time"

	"github.com/meridianbi/insight-api/internal/analytics"
	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionStats_CountsAllStatuses(t *testing.T) {
	day := date(2025, time.May, 1)
	snap := snapshotOf(
		withRegion(completedSale(1000, day), "North"),
		withRegion(completedSale(500, day), "North"),
		withRegion(withStatus(completedSale(300, day), domain.SaleStatusPending), "North"),
		withRegion(withStatus(completedSale(200, day), domain.SaleStatusCancelled), "North"),
		withRegion(completedSale(100, day), "South"),
	)

	rows := analytics.RegionStats(snap)
	require.Len(t, rows, 2)

	north := rows[0]
	assert.Equal(t, "North", north.Region)
	assert.Equal(t, 4, north.TotalTransactions)
	assert.Equal(t, 2, north.Completed)
	assert.Equal(t, 1, north.Pending)
	assert.Equal(t, 1, north.Cancelled)
	assert.Equal(t, "1500", north.Revenue.String(), "only completed sales carry revenue")
	assert.Equal(t, 50.0, north.CompletionRate)

	assert.Equal(t, "South", rows[1].Region)
	assert.Equal(t, 100.0, rows[1].CompletionRate)
}

func TestRegionStats_BlankRegionBecomesUnknown(t *testing.T) {
	snap := snapshotOf(completedSale(100, date(2025, time.May, 1)))

	rows := analytics.RegionStats(snap)
	require.Len(t, rows, 1)
	assert.Equal(t, "Unknown", rows[0].Region)
}

func TestRegionStats_Empty(t *testing.T) {
	assert.Empty(t, analytics.RegionStats(&analytics.Snapshot{}))
}
