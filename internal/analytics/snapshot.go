// Package analytics implements the business metrics computation engine: a
// set of deterministic, single-pass analyses over an immutable snapshot of
// the transactional records. Every function here is pure: it reads the
// snapshot, allocates fresh result rows and never mutates its input or keeps
// state between calls, so analyses may run concurrently over the same
// snapshot without coordination.
package analytics

import (
	"github.com/google/uuid"
	"github.com/meridianbi/insight-api/internal/domain"
)

// Snapshot is the materialized record collection an analysis operates on.
// The record source fills it once; the engine issues no further requests.
type Snapshot struct {
	Departments []domain.Department
	Employees   []domain.Employee
	Products    []domain.Product
	Customers   []domain.Customer
	Sales       []domain.Sale
}

func (s *Snapshot) departmentsByID() map[uuid.UUID]*domain.Department {
	index := make(map[uuid.UUID]*domain.Department, len(s.Departments))
	for i := range s.Departments {
		index[s.Departments[i].ID] = &s.Departments[i]
	}
	return index
}

func (s *Snapshot) employeesByID() map[uuid.UUID]*domain.Employee {
	index := make(map[uuid.UUID]*domain.Employee, len(s.Employees))
	for i := range s.Employees {
		index[s.Employees[i].ID] = &s.Employees[i]
	}
	return index
}

func (s *Snapshot) productsByID() map[uuid.UUID]*domain.Product {
	index := make(map[uuid.UUID]*domain.Product, len(s.Products))
	for i := range s.Products {
		index[s.Products[i].ID] = &s.Products[i]
	}
	return index
}

func (s *Snapshot) customersByID() map[uuid.UUID]*domain.Customer {
	index := make(map[uuid.UUID]*domain.Customer, len(s.Customers))
	for i := range s.Customers {
		index[s.Customers[i].ID] = &s.Customers[i]
	}
	return index
}

// completedSales returns the sales that contribute to value-bearing metrics.
// Pending and cancelled sales stay visible to raw counts (region stats) only.
func (s *Snapshot) completedSales() []*domain.Sale {
	completed := make([]*domain.Sale, 0, len(s.Sales))
	for i := range s.Sales {
		if s.Sales[i].IsCompleted() {
			completed = append(completed, &s.Sales[i])
		}
	}
	return completed
}

// truncate applies an optional result limit; limit <= 0 keeps every row.
func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
