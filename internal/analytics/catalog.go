package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRank is one product of the revenue ranking. Name and category are
// empty when the sale's product reference does not resolve.
type ProductRank struct {
	ProductID     uuid.UUID
	ProductName   string
	Category      string
	TimesSold     int
	TotalQuantity int
	Revenue       decimal.Decimal
	RevenueShare  float64 // percent of ranked revenue
	Rank          int     // dense rank, ties share, no gaps
}

// TopProducts aggregates completed sales per product, excludes products
// with zero completed revenue, dense-ranks descending by revenue and
// truncates to limit. Revenue share is relative to the full ranked set,
// computed before truncation.
func TopProducts(snap *Snapshot, limit int) []ProductRank {
	products := snap.productsByID()

	byProduct := make(map[uuid.UUID]*ProductRank)
	order := make([]uuid.UUID, 0)
	for _, sale := range snap.completedSales() {
		if sale.ProductID == nil {
			continue
		}
		row, ok := byProduct[*sale.ProductID]
		if !ok {
			row = &ProductRank{ProductID: *sale.ProductID}
			if p, found := products[*sale.ProductID]; found {
				row.ProductName = p.Name
				row.Category = p.Category
			}
			byProduct[*sale.ProductID] = row
			order = append(order, *sale.ProductID)
		}
		row.TimesSold++
		row.TotalQuantity += sale.Quantity
		row.Revenue = row.Revenue.Add(sale.TotalAmount)
	}

	rows := make([]ProductRank, 0, len(order))
	total := decimal.Zero
	for _, id := range order {
		row := byProduct[id]
		if row.Revenue.IsPositive() {
			rows = append(rows, *row)
			total = total.Add(row.Revenue)
		}
	}
	if len(rows) == 0 {
		return []ProductRank{}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})

	rank := 0
	for i := range rows {
		if i == 0 || !rows[i].Revenue.Equal(rows[i-1].Revenue) {
			rank++
		}
		rows[i].Rank = rank
		rows[i].RevenueShare = rows[i].Revenue.Div(total).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return truncate(rows, limit)
}

// DepartmentSummary is one department roll-up row
type DepartmentSummary struct {
	DeptName           string
	Location           string
	EmployeeCount      int
	AvgSalary          decimal.Decimal
	TotalSales         int
	TotalRevenue       decimal.Decimal
	RevenuePerEmployee decimal.Decimal
}

// DepartmentPerformance rolls up active headcount, average salary and
// completed sales attributed through each department's active employees.
// Revenue per employee is zero when a department has no active employees.
// Output is descending by total revenue; zero-revenue departments sort last.
func DepartmentPerformance(snap *Snapshot) []DepartmentSummary {
	employees := snap.employeesByID()

	type deptAgg struct {
		headcount   int
		salaryTotal decimal.Decimal
		salesCount  int
		revenue     decimal.Decimal
	}
	aggregates := make(map[uuid.UUID]*deptAgg, len(snap.Departments))
	for i := range snap.Departments {
		aggregates[snap.Departments[i].ID] = &deptAgg{}
	}
	for i := range snap.Employees {
		e := &snap.Employees[i]
		if !e.IsActive || e.DepartmentID == nil {
			continue
		}
		if agg, ok := aggregates[*e.DepartmentID]; ok {
			agg.headcount++
			agg.salaryTotal = agg.salaryTotal.Add(e.Salary)
		}
	}
	for _, sale := range snap.completedSales() {
		if sale.EmployeeID == nil {
			continue
		}
		e, ok := employees[*sale.EmployeeID]
		if !ok || !e.IsActive || e.DepartmentID == nil {
			continue
		}
		if agg, found := aggregates[*e.DepartmentID]; found {
			agg.salesCount++
			agg.revenue = agg.revenue.Add(sale.TotalAmount)
		}
	}

	rows := make([]DepartmentSummary, 0, len(snap.Departments))
	for i := range snap.Departments {
		dept := &snap.Departments[i]
		agg := aggregates[dept.ID]
		row := DepartmentSummary{
			DeptName:     dept.Name,
			Location:     dept.Location,
			EmployeeCount: agg.headcount,
			TotalSales:   agg.salesCount,
			TotalRevenue: agg.revenue,
		}
		if agg.headcount > 0 {
			headcount := decimal.NewFromInt(int64(agg.headcount))
			row.AvgSalary = agg.salaryTotal.Div(headcount).Round(2)
			row.RevenuePerEmployee = agg.revenue.Div(headcount).Round(2)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	return rows
}

// CategorySummary is one product category roll-up row
type CategorySummary struct {
	Category       string
	ProductCount   int
	TimesSold      int
	UnitsSold      int
	TotalRevenue   decimal.Decimal
	AvgTransaction decimal.Decimal
	RevenueShare   float64 // percent of all completed revenue
}

// CategoryPerformance rolls up completed sales per product category.
// Categories without sales still appear with zero metrics and sort last.
func CategoryPerformance(snap *Snapshot) []CategorySummary {
	products := snap.productsByID()

	byCategory := make(map[string]*CategorySummary)
	order := make([]string, 0)
	ensure := func(category string) *CategorySummary {
		row, ok := byCategory[category]
		if !ok {
			row = &CategorySummary{Category: category}
			byCategory[category] = row
			order = append(order, category)
		}
		return row
	}
	for i := range snap.Products {
		ensure(snap.Products[i].Category).ProductCount++
	}

	grandTotal := decimal.Zero
	for _, sale := range snap.completedSales() {
		grandTotal = grandTotal.Add(sale.TotalAmount)
		if sale.ProductID == nil {
			continue
		}
		p, ok := products[*sale.ProductID]
		if !ok {
			continue
		}
		row := ensure(p.Category)
		row.TimesSold++
		row.UnitsSold += sale.Quantity
		row.TotalRevenue = row.TotalRevenue.Add(sale.TotalAmount)
	}

	rows := make([]CategorySummary, 0, len(order))
	for _, category := range order {
		row := byCategory[category]
		if row.TimesSold > 0 {
			row.AvgTransaction = row.TotalRevenue.Div(decimal.NewFromInt(int64(row.TimesSold))).Round(2)
		}
		if grandTotal.IsPositive() {
			row.RevenueShare = row.TotalRevenue.Div(grandTotal).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
		}
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	return rows
}
