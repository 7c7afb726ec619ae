// Package seed generates deterministic synthetic business data for
// development and demos. All randomness uses a fixed seed so repeated
// runs against a fresh database produce the same dataset.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meridianbi/insight-api/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	randomSeed = 42
	batchSize  = 200
)

// Config controls how many records of each kind are generated
type Config struct {
	Employees int
	Products  int
	Customers int
	Sales     int
}

// DefaultConfig matches the dataset the dashboards were built against
func DefaultConfig() Config {
	return Config{
		Employees: 200,
		Products:  150,
		Customers: 1000,
		Sales:     5000,
	}
}

// Seeder populates the database with synthetic business data
type Seeder struct {
	db     *gorm.DB
	cfg    Config
	rng    *rand.Rand
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, cfg Config, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(randomSeed)),
		logger: logger,
	}
}

var departmentPool = []struct {
	name     string
	location string
	budget   float64
}{
	{"Sales", "New York", 500000},
	{"Marketing", "San Francisco", 350000},
	{"Engineering", "Seattle", 800000},
	{"Human Resources", "Chicago", 200000},
	{"Finance", "New York", 400000},
	{"Operations", "Dallas", 300000},
	{"Customer Service", "Austin", 250000},
	{"Research & Development", "Boston", 600000},
}

// positionPool[i][0] is the department manager position
var positionPool = [][]string{
	{"Sales Manager", "Sales Representative", "Account Executive"},
	{"Marketing Manager", "Content Writer", "SEO Specialist", "Social Media Manager"},
	{"Engineering Manager", "Software Engineer", "Senior Developer", "DevOps Engineer", "QA Engineer"},
	{"HR Manager", "Recruiter", "HR Coordinator"},
	{"Finance Manager", "Accountant", "Financial Analyst"},
	{"Operations Manager", "Supply Chain Analyst", "Logistics Coordinator"},
	{"Customer Service Manager", "Support Agent", "Service Representative"},
	{"Research Lead", "Research Scientist", "Data Scientist", "Product Manager"},
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Christopher", "Karen", "Daniel",
	"Lisa", "Matthew", "Nancy", "Anthony", "Betty", "Mark", "Sandra",
	"Steven", "Ashley", "Andrew", "Emily", "Paul", "Donna", "Joshua", "Kimberly",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
	"San Antonio", "San Diego", "Dallas", "Austin", "Seattle", "Denver",
	"Boston", "Portland", "Atlanta", "Miami", "Minneapolis", "Detroit",
}

var productPool = map[string][]string{
	"Electronics":    {"Laptop", "Smartphone", "Tablet", "Headphones", "Camera", "Smart Watch"},
	"Clothing":       {"T-Shirt", "Jeans", "Jacket", "Shoes", "Dress", "Sweater"},
	"Home & Kitchen": {"Coffee Maker", "Blender", "Toaster", "Microwave", "Vacuum Cleaner"},
	"Books":          {"Fiction", "Non-Fiction", "Educational", "Biography", "Sci-Fi"},
	"Sports":         {"Yoga Mat", "Dumbbell Set", "Running Shoes", "Tennis Racket", "Basketball"},
}

// categoryOrder keeps product generation deterministic across runs
var categoryOrder = []string{"Electronics", "Clothing", "Home & Kitchen", "Books", "Sports"}

var productVariants = []string{
	"Classic", "Pro", "Deluxe", "Essential", "Premium", "Compact", "Sport", "Studio",
}

var regions = []string{"North", "South", "East", "West", "Central"}

// Run populates all tables. The database is expected to be empty.
func (s *Seeder) Run() error {
	start := time.Now()

	departments, err := s.seedDepartments()
	if err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}

	employees, err := s.seedEmployees(departments)
	if err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	products, err := s.seedProducts()
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	customers, err := s.seedCustomers()
	if err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}

	if err := s.seedSales(employees, products, customers); err != nil {
		return fmt.Errorf("failed to seed sales: %w", err)
	}

	s.logger.Info("seeding completed",
		zap.Int("departments", len(departments)),
		zap.Int("employees", len(employees)),
		zap.Int("products", len(products)),
		zap.Int("customers", len(customers)),
		zap.Int("sales", s.cfg.Sales),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func (s *Seeder) seedDepartments() ([]domain.Department, error) {
	departments := make([]domain.Department, 0, len(departmentPool))
	for _, d := range departmentPool {
		departments = append(departments, domain.Department{
			BaseModel: domain.BaseModel{ID: uuid.New()},
			Name:      d.name,
			Location:  d.location,
			Budget:    decimal.NewFromFloat(d.budget),
		})
	}
	if err := s.db.CreateInBatches(departments, batchSize).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (s *Seeder) seedEmployees(departments []domain.Department) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0, s.cfg.Employees)

	// One manager per department first, then staff reporting to them
	managerIDs := make([]uuid.UUID, len(departments))
	for i, dept := range departments {
		deptID := dept.ID
		first := s.pick(firstNames)
		last := s.pick(lastNames)
		id := uuid.New()
		managerIDs[i] = id
		employees = append(employees, domain.Employee{
			BaseModel:    domain.BaseModel{ID: id},
			EmpCode:      fmt.Sprintf("EMP%03d001", i+1),
			FirstName:    first,
			LastName:     last,
			Email:        fmt.Sprintf("%s.%s.%d@company.com", strings.ToLower(first), strings.ToLower(last), len(employees)+1),
			Position:     positionPool[i][0],
			Salary:       s.money(80000, 150000),
			DepartmentID: &deptID,
			JoinDate:     s.dateBetween(-8*365, -2*365),
			IsActive:     true,
		})
	}

	for n := len(employees); n < s.cfg.Employees; n++ {
		deptIdx := s.rng.Intn(len(departments))
		deptID := departments[deptIdx].ID
		managerID := managerIDs[deptIdx]
		staffPositions := positionPool[deptIdx][1:]
		first := s.pick(firstNames)
		last := s.pick(lastNames)
		employees = append(employees, domain.Employee{
			BaseModel:    domain.BaseModel{ID: uuid.New()},
			EmpCode:      fmt.Sprintf("EMP%03d%03d", deptIdx+1, n+1),
			FirstName:    first,
			LastName:     last,
			Email:        fmt.Sprintf("%s.%s.%d@company.com", strings.ToLower(first), strings.ToLower(last), n+1),
			Position:     s.pick(staffPositions),
			Salary:       s.money(40000, 95000),
			DepartmentID: &deptID,
			ManagerID:    &managerID,
			JoinDate:     s.dateBetween(-5*365, -30),
			IsActive:     s.rng.Float64() < 0.95,
		})
	}

	if err := s.db.CreateInBatches(employees, batchSize).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Seeder) seedProducts() ([]domain.Product, error) {
	products := make([]domain.Product, 0, s.cfg.Products)

	num := 1
	for num <= s.cfg.Products {
		for _, category := range categoryOrder {
			for _, sub := range productPool[category] {
				if num > s.cfg.Products {
					break
				}
				cost := s.money(10, 500)
				markup := decimal.NewFromFloat(1.3 + s.rng.Float64()*1.2)
				products = append(products, domain.Product{
					BaseModel:    domain.BaseModel{ID: uuid.New()},
					ProductCode:  fmt.Sprintf("PRD%05d", num),
					Name:         fmt.Sprintf("%s - %s Edition", sub, s.pick(productVariants)),
					Category:     category,
					SubCategory:  sub,
					CostPrice:    cost,
					SellingPrice: cost.Mul(markup).Round(2),
				})
				num++
			}
		}
	}

	if err := s.db.CreateInBatches(products, batchSize).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Seeder) seedCustomers() ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0, s.cfg.Customers)
	for n := 0; n < s.cfg.Customers; n++ {
		first := s.pick(firstNames)
		last := s.pick(lastNames)
		customers = append(customers, domain.Customer{
			BaseModel:    domain.BaseModel{ID: uuid.New()},
			FirstName:    first,
			LastName:     last,
			Email:        fmt.Sprintf("%s.%s.%d@email.com", strings.ToLower(first), strings.ToLower(last), n+1),
			City:         s.pick(cities),
			RegisteredAt: s.dateBetween(-3*365, -30),
		})
	}
	if err := s.db.CreateInBatches(customers, batchSize).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Seeder) seedSales(employees []domain.Employee, products []domain.Product, customers []domain.Customer) error {
	discounts := []float64{0, 5, 10, 15, 20}
	discountWeights := []float64{0.5, 0.2, 0.15, 0.1, 0.05}
	statuses := []domain.SaleStatus{domain.SaleStatusCompleted, domain.SaleStatusPending, domain.SaleStatusCancelled}
	statusWeights := []float64{0.9, 0.07, 0.03}
	tax := decimal.NewFromInt(8)

	sales := make([]domain.Sale, 0, s.cfg.Sales)
	for n := 0; n < s.cfg.Sales; n++ {
		customer := customers[s.rng.Intn(len(customers))]
		employee := employees[s.rng.Intn(len(employees))]
		product := products[s.rng.Intn(len(products))]
		quantity := 1 + s.rng.Intn(10)
		discount := decimal.NewFromFloat(s.weighted(discounts, discountWeights))

		subtotal := product.SellingPrice.Mul(decimal.NewFromInt(int64(quantity)))
		taxable := subtotal.Sub(subtotal.Mul(discount).Div(decimal.NewFromInt(100)))
		total := taxable.Add(taxable.Mul(tax).Div(decimal.NewFromInt(100))).Round(2)

		customerID := customer.ID
		employeeID := employee.ID
		productID := product.ID
		sales = append(sales, domain.Sale{
			BaseModel:   domain.BaseModel{ID: uuid.New()},
			CustomerID:  &customerID,
			EmployeeID:  &employeeID,
			ProductID:   &productID,
			Quantity:    quantity,
			UnitPrice:   product.SellingPrice,
			DiscountPct: discount,
			TaxPct:      tax,
			TotalAmount: total,
			SaleDate:    s.dateBetween(-2*365, 0),
			Region:      s.pick(regions),
			Status:      statuses[s.weightedIndex(statusWeights)],
		})
	}

	return s.db.CreateInBatches(sales, batchSize).Error
}

func (s *Seeder) pick(values []string) string {
	return values[s.rng.Intn(len(values))]
}

func (s *Seeder) money(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + s.rng.Float64()*(max-min)).Round(2)
}

// dateBetween returns a date between now+minDays and now+maxDays, at date granularity
func (s *Seeder) dateBetween(minDays, maxDays int) time.Time {
	days := minDays + s.rng.Intn(maxDays-minDays+1)
	t := time.Now().UTC().AddDate(0, 0, days)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Seeder) weighted(values, weights []float64) float64 {
	return values[s.weightedIndex(weights)]
}

func (s *Seeder) weightedIndex(weights []float64) int {
	r := s.rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}
