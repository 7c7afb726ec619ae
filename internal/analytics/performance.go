package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeePerformance is one row of the top-employee ranking
type EmployeePerformance struct {
	Rank            int
	EmployeeName    string
	Position        string
	DeptName        string
	TotalSales      int
	Revenue         decimal.Decimal
	AvgSale         decimal.Decimal
	UniqueCustomers int
}

// TopEmployees ranks active employees by completed-sale revenue. Employees
// without a completed sale are excluded. Ranks are sequential positions
// (ties do not share), descending by revenue, truncated to limit.
func TopEmployees(snap *Snapshot, limit int) []EmployeePerformance {
	departments := snap.departmentsByID()

	type empAgg struct {
		salesCount int
		revenue    decimal.Decimal
		customers  map[uuid.UUID]struct{}
	}
	aggregates := make(map[uuid.UUID]*empAgg)
	for _, sale := range snap.completedSales() {
		if sale.EmployeeID == nil {
			continue
		}
		agg, ok := aggregates[*sale.EmployeeID]
		if !ok {
			agg = &empAgg{customers: make(map[uuid.UUID]struct{})}
			aggregates[*sale.EmployeeID] = agg
		}
		agg.salesCount++
		agg.revenue = agg.revenue.Add(sale.TotalAmount)
		if sale.CustomerID != nil {
			agg.customers[*sale.CustomerID] = struct{}{}
		}
	}

	rows := make([]EmployeePerformance, 0, len(aggregates))
	for i := range snap.Employees {
		e := &snap.Employees[i]
		if !e.IsActive {
			continue
		}
		agg, ok := aggregates[e.ID]
		if !ok || agg.salesCount == 0 {
			continue
		}
		deptName := unknownDepartment
		if e.DepartmentID != nil {
			if dept, found := departments[*e.DepartmentID]; found {
				deptName = dept.Name
			}
		}
		rows = append(rows, EmployeePerformance{
			EmployeeName:    e.FullName(),
			Position:        e.Position,
			DeptName:        deptName,
			TotalSales:      agg.salesCount,
			Revenue:         agg.revenue,
			AvgSale:         agg.revenue.Div(decimal.NewFromInt(int64(agg.salesCount))).Round(2),
			UniqueCustomers: len(agg.customers),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return truncate(rows, limit)
}
