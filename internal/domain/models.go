package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an ID when none is set
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SaleStatus represents the lifecycle status of a sale
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// IsValid checks if the SaleStatus is a valid enum value
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusCompleted, SaleStatusPending, SaleStatusCancelled:
		return true
	}
	return false
}

// Department represents an organizational unit
type Department struct {
	BaseModel
	Name     string          `gorm:"type:varchar(100);not null;uniqueIndex;column:dept_name"`
	Location string          `gorm:"type:varchar(100)"`
	Budget   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
}

// Employee represents a member of staff
type Employee struct {
	BaseModel
	EmpCode      string          `gorm:"type:varchar(20);uniqueIndex;column:emp_code"`
	FirstName    string          `gorm:"type:varchar(100);not null;column:first_name"`
	LastName     string          `gorm:"type:varchar(100);not null;column:last_name"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	Phone        string          `gorm:"type:varchar(50)"`
	Position     string          `gorm:"type:varchar(100);not null"`
	Salary       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DepartmentID *uuid.UUID      `gorm:"type:uuid;column:department_id;index"`
	Department   *Department     `gorm:"foreignKey:DepartmentID"`
	ManagerID    *uuid.UUID      `gorm:"type:uuid;column:manager_id"`
	JoinDate     time.Time       `gorm:"type:date;column:join_date"`
	IsActive     bool            `gorm:"not null;default:true;column:is_active;index"`
}

// FullName returns the employee's full name
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Product represents an item in the catalog
type Product struct {
	BaseModel
	ProductCode  string          `gorm:"type:varchar(20);uniqueIndex;column:product_code"`
	Name         string          `gorm:"type:varchar(200);not null;column:product_name;index"`
	Category     string          `gorm:"type:varchar(100);not null;index"`
	SubCategory  string          `gorm:"type:varchar(100);column:sub_category"`
	CostPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:cost_price"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:selling_price"`
}

// Customer represents a purchasing customer
type Customer struct {
	BaseModel
	FirstName    string    `gorm:"type:varchar(100);not null;column:first_name"`
	LastName     string    `gorm:"type:varchar(100);not null;column:last_name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex"`
	City         string    `gorm:"type:varchar(100)"`
	RegisteredAt time.Time `gorm:"type:date;column:registered_at"`
}

// FullName returns the customer's full name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Sale represents a single transaction line.
// References are nullable: an orphaned reference degrades the derived
// row's descriptive fields, it never fails an analysis.
type Sale struct {
	BaseModel
	CustomerID  *uuid.UUID      `gorm:"type:uuid;column:customer_id;index"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID"`
	EmployeeID  *uuid.UUID      `gorm:"type:uuid;column:employee_id;index"`
	Employee    *Employee       `gorm:"foreignKey:EmployeeID"`
	ProductID   *uuid.UUID      `gorm:"type:uuid;column:product_id;index"`
	Product     *Product        `gorm:"foreignKey:ProductID"`
	Quantity    int             `gorm:"not null;default:1"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null;column:unit_price"`
	DiscountPct decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0;column:discount_pct"`
	TaxPct      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0;column:tax_pct"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null;column:total_amount"`
	SaleDate    time.Time       `gorm:"type:date;not null;column:sale_date;index"`
	Region      string          `gorm:"type:varchar(50);index"`
	Status      SaleStatus      `gorm:"type:varchar(20);not null;default:'completed';index"`
}

// IsCompleted reports whether the sale contributes to value-bearing metrics
func (s *Sale) IsCompleted() bool {
	return s.Status == SaleStatusCompleted
}
