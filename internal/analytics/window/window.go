// Package window provides the ordinal windowing primitives shared by every
// analysis: quantile binning, percentile ranking, trailing moving averages
// and period-over-period growth rates. All functions are pure and operate on
// sequences the caller has already placed in its desired sort order.
package window

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Bins assigns each ordinal position of an n-element ordered sequence to one
// of k contiguous bins numbered 1..k following the sort order. Bin sizes
// differ by at most one element; the first n%k bins take the extra row.
// Rows with equal keys keep their stable ordinal position, so ties land in
// the bin their position dictates. An empty sequence yields an empty result.
func Bins(n, k int) []int {
	if n <= 0 || k < 1 {
		return []int{}
	}
	bins := make([]int, n)
	base := n / k
	extra := n % k
	pos := 0
	for b := 1; b <= k && pos < n; b++ {
		size := base
		if b <= extra {
			size++
		}
		for i := 0; i < size; i++ {
			bins[pos] = b
			pos++
		}
	}
	return bins
}

// Scores assigns k down to 1 along the sort order: the front of the ordered
// sequence receives the highest score. Bin boundaries are identical to Bins.
func Scores(n, k int) []int {
	scores := Bins(n, k)
	for i := range scores {
		scores[i] = k + 1 - scores[i]
	}
	return scores
}

// PercentileRanks computes (ordinal-1)/(n-1) scaled to [0,100] for each
// position of an n-element ordered sequence, rounded to two decimals.
// A single-element sequence ranks at 100.
func PercentileRanks(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	ranks := make([]float64, n)
	if n == 1 {
		ranks[0] = 100
		return ranks
	}
	for i := 0; i < n; i++ {
		ranks[i] = round2(float64(i) / float64(n-1) * 100)
	}
	return ranks
}

// MovingAverages computes the trailing moving average of window size w
// anchored at each point of a time-ordered sequence. The window truncates at
// the start of the series, so the first points average fewer than w values.
// Results are rounded to two decimals.
func MovingAverages(values []decimal.Decimal, w int) []decimal.Decimal {
	if w < 1 || len(values) == 0 {
		return []decimal.Decimal{}
	}
	averages := make([]decimal.Decimal, len(values))
	for i := range values {
		start := i - w + 1
		if start < 0 {
			start = 0
		}
		sum := decimal.Zero
		for j := start; j <= i; j++ {
			sum = sum.Add(values[j])
		}
		count := decimal.NewFromInt(int64(i - start + 1))
		averages[i] = sum.Div(count).Round(2)
	}
	return averages
}

// GrowthRates computes the percentage growth of each value relative to its
// predecessor in the sequence: (curr-prev)/prev*100, rounded to two decimals.
// The rate is nil (undefined, not zero) for the first value and whenever the
// previous value is zero.
func GrowthRates(values []decimal.Decimal) []*float64 {
	rates := make([]*float64, len(values))
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev.IsZero() {
			continue
		}
		rate := values[i].Sub(prev).Div(prev).Mul(hundred).Round(2).InexactFloat64()
		rates[i] = &rate
	}
	return rates
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
