package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/meridianbi/insight-api/internal/analytics/window"
	"github.com/shopspring/decimal"
)

// unknownDepartment labels rows whose department reference does not resolve
const unknownDepartment = "Unknown"

// SalaryRank is one employee of the compensation analysis with their
// position in the company-wide salary distribution.
type SalaryRank struct {
	EmployeeName string
	Position     string
	DeptName     string
	Salary       decimal.Decimal
	Quartile     int
	Percentile   float64
	CompanyAvg   decimal.Decimal
	DeptAvg      decimal.Decimal
}

// SalaryRanking computes salary quartiles and percentile ranks for active
// employees, ordered ascending by salary for the quantile assignment and
// returned descending by salary, truncated to limit (<= 0 keeps all rows).
func SalaryRanking(snap *Snapshot, limit int) []SalaryRank {
	departments := snap.departmentsByID()

	type entry struct {
		idx    int // index into snap.Employees, preserves first-seen order
		salary decimal.Decimal
	}
	entries := make([]entry, 0, len(snap.Employees))
	companyTotal := decimal.Zero
	deptTotals := make(map[uuid.UUID]decimal.Decimal)
	deptCounts := make(map[uuid.UUID]int)
	for i := range snap.Employees {
		e := &snap.Employees[i]
		if !e.IsActive {
			continue
		}
		entries = append(entries, entry{idx: i, salary: e.Salary})
		companyTotal = companyTotal.Add(e.Salary)
		if e.DepartmentID != nil {
			deptTotals[*e.DepartmentID] = deptTotals[*e.DepartmentID].Add(e.Salary)
			deptCounts[*e.DepartmentID]++
		}
	}
	if len(entries) == 0 {
		return []SalaryRank{}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].salary.LessThan(entries[j].salary)
	})

	n := len(entries)
	quartiles := window.Bins(n, 4)
	percentiles := window.PercentileRanks(n)
	companyAvg := companyTotal.Div(decimal.NewFromInt(int64(n))).Round(2)

	rows := make([]SalaryRank, n)
	for i, ent := range entries {
		e := &snap.Employees[ent.idx]
		deptName := unknownDepartment
		deptAvg := decimal.Zero
		if e.DepartmentID != nil {
			if dept, ok := departments[*e.DepartmentID]; ok {
				deptName = dept.Name
			}
			if count := deptCounts[*e.DepartmentID]; count > 0 {
				deptAvg = deptTotals[*e.DepartmentID].Div(decimal.NewFromInt(int64(count))).Round(2)
			}
		}
		rows[i] = SalaryRank{
			EmployeeName: e.FullName(),
			Position:     e.Position,
			DeptName:     deptName,
			Salary:       e.Salary,
			Quartile:     quartiles[i],
			Percentile:   percentiles[i],
			CompanyAvg:   companyAvg,
			DeptAvg:      deptAvg,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Salary.GreaterThan(rows[j].Salary)
	})
	return truncate(rows, limit)
}
