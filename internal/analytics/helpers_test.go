package analytics_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/meridianbi/insight-api/internal/analytics"
	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func newDepartment(name, location string) domain.Department {
	return domain.Department{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      name,
		Location:  location,
	}
}

func newEmployee(first, last string, salary float64, deptID *uuid.UUID, active bool) domain.Employee {
	return domain.Employee{
		BaseModel:    domain.BaseModel{ID: uuid.New()},
		FirstName:    first,
		LastName:     last,
		Position:     "Analyst",
		Salary:       money(salary),
		DepartmentID: deptID,
		IsActive:     active,
	}
}

func newProduct(name, category string) domain.Product {
	return domain.Product{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      name,
		Category:  category,
	}
}

func newCustomer(first, last string) domain.Customer {
	return domain.Customer{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FirstName: first,
		LastName:  last,
	}
}

func completedSale(amount float64, saleDate time.Time) domain.Sale {
	return domain.Sale{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Quantity:    1,
		TotalAmount: money(amount),
		SaleDate:    saleDate,
		Status:      domain.SaleStatusCompleted,
	}
}

func withCustomer(s domain.Sale, id uuid.UUID) domain.Sale {
	s.CustomerID = &id
	return s
}

func withEmployee(s domain.Sale, id uuid.UUID) domain.Sale {
	s.EmployeeID = &id
	return s
}

func withProduct(s domain.Sale, id uuid.UUID) domain.Sale {
	s.ProductID = &id
	return s
}

func withStatus(s domain.Sale, status domain.SaleStatus) domain.Sale {
	s.Status = status
	return s
}

func withRegion(s domain.Sale, region string) domain.Sale {
	s.Region = region
	return s
}

func withQuantity(s domain.Sale, qty int) domain.Sale {
	s.Quantity = qty
	return s
}

func snapshotOf(sales ...domain.Sale) *analytics.Snapshot {
	return &analytics.Snapshot{Sales: sales}
}
