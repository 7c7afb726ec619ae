package analytics_test

import (
	"testing"
	"time"

	"github.com/meridianbi/insight-api/internal/analytics"
	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopEmployees_Ranking(t *testing.T) {
	day := date(2025, time.April, 1)
	dept := newDepartment("Sales", "New York")
	star := newEmployee("Star", "Seller", 70000, &dept.ID, true)
	runner := newEmployee("Runner", "Up", 60000, &dept.ID, true)
	idle := newEmployee("No", "Sales", 50000, &dept.ID, true)

	custA := newCustomer("A", "A")
	custB := newCustomer("B", "B")

	snap := &analytics.Snapshot{
		Departments: []domain.Department{dept},
		Employees:   []domain.Employee{star, runner, idle},
		Customers:   []domain.Customer{custA, custB},
		Sales: []domain.Sale{
			withCustomer(withEmployee(completedSale(600, day), star.ID), custA.ID),
			withCustomer(withEmployee(completedSale(400, day), star.ID), custA.ID),
			withCustomer(withEmployee(completedSale(300, day), runner.ID), custB.ID),
		},
	}

	rows := analytics.TopEmployees(snap, 0)
	require.Len(t, rows, 2, "employees without completed sales are excluded")

	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "Star Seller", rows[0].EmployeeName)
	assert.Equal(t, "Sales", rows[0].DeptName)
	assert.Equal(t, 2, rows[0].TotalSales)
	assert.Equal(t, "1000", rows[0].Revenue.String())
	assert.Equal(t, "500", rows[0].AvgSale.String())
	assert.Equal(t, 1, rows[0].UniqueCustomers)

	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, "Runner Up", rows[1].EmployeeName)
}

func TestTopEmployees_ExcludesInactiveAndPending(t *testing.T) {
	day := date(2025, time.April, 1)
	former := newEmployee("Ex", "Staff", 50000, nil, false)
	current := newEmployee("Still", "Here", 50000, nil, true)

	snap := &analytics.Snapshot{
		Employees: []domain.Employee{former, current},
		Sales: []domain.Sale{
			withEmployee(completedSale(1000, day), former.ID),
			withEmployee(withStatus(completedSale(1000, day), domain.SaleStatusPending), current.ID),
		},
	}

	assert.Empty(t, analytics.TopEmployees(snap, 0))
}

func TestTopEmployees_Limit(t *testing.T) {
	day := date(2025, time.April, 1)
	a := newEmployee("A", "A", 1, nil, true)
	b := newEmployee("B", "B", 1, nil, true)

	snap := &analytics.Snapshot{
		Employees: []domain.Employee{a, b},
		Sales: []domain.Sale{
			withEmployee(completedSale(100, day), a.ID),
			withEmployee(completedSale(900, day), b.ID),
		},
	}

	rows := analytics.TopEmployees(snap, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, "B B", rows[0].EmployeeName)
	assert.Equal(t, "Unknown", rows[0].DeptName)
}
