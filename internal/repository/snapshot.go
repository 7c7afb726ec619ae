package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/meridianbi/insight-api/internal/analytics"
	"gorm.io/gorm"
)

// SnapshotLoader assembles the immutable record snapshot the analytics
// engine operates on. The engine issues no further requests once loaded.
type SnapshotLoader struct {
	departmentRepo *DepartmentRepository
	employeeRepo   *EmployeeRepository
	productRepo    *ProductRepository
	customerRepo   *CustomerRepository
	saleRepo       *SaleRepository
}

func NewSnapshotLoader(
	departmentRepo *DepartmentRepository,
	employeeRepo *EmployeeRepository,
	productRepo *ProductRepository,
	customerRepo *CustomerRepository,
	saleRepo *SaleRepository,
) *SnapshotLoader {
	return &SnapshotLoader{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		productRepo:    productRepo,
		customerRepo:   customerRepo,
		saleRepo:       saleRepo,
	}
}

// Load materializes all five record collections
func (l *SnapshotLoader) Load(ctx context.Context) (*analytics.Snapshot, error) {
	departments, err := l.departmentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	employees, err := l.employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	products, err := l.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	customers, err := l.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	sales, err := l.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	return &analytics.Snapshot{
		Departments: departments,
		Employees:   employees,
		Products:    products,
		Customers:   customers,
		Sales:       sales,
	}, nil
}

// SchemaRepository exposes schema introspection for the tables endpoint
type SchemaRepository struct {
	db *gorm.DB
}

func NewSchemaRepository(db *gorm.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// TableNames lists the tables of the connected database, sorted by name
func (r *SchemaRepository) TableNames(ctx context.Context) ([]string, error) {
	tables, err := r.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, err
	}
	sort.Strings(tables)
	return tables, nil
}
