package domain

// DTOs for API responses. Currency and rate fields carry the formatted
// presentation strings produced at the service boundary; every ordering and
// ranking decision has already been made on the underlying numeric values.

// SalaryRankDTO is one row of the employee salary analysis
type SalaryRankDTO struct {
	EmployeeName   string `json:"employeeName"`
	Position       string `json:"position"`
	DeptName       string `json:"deptName"`
	Salary         string `json:"salary"`
	SalaryQuartile int    `json:"salaryQuartile"`
	PercentileRank string `json:"percentileRank"`
	CompanyAvg     string `json:"companyAvg"`
	DeptAvg        string `json:"deptAvg"`
}

// TrendPointDTO is one calendar month of the revenue trend analysis
type TrendPointDTO struct {
	Month            string  `json:"month"` // YYYY-MM
	TransactionCount int     `json:"transactionCount"`
	Revenue          string  `json:"revenue"`
	GrowthRate       *string `json:"growthRate"` // null when previous month absent or zero
	ThreeMonthAvg    string  `json:"threeMonthAvg"`
}

// RFMSegmentDTO is one scored customer of the RFM segmentation
type RFMSegmentDTO struct {
	CustomerName  string `json:"customerName"`
	RecencyDays   int    `json:"recencyDays"`
	Frequency     int    `json:"frequency"`
	LifetimeValue string `json:"lifetimeValue"`
	RScore        int    `json:"rScore"`
	FScore        int    `json:"fScore"`
	MScore        int    `json:"mScore"`
	Segment       string `json:"segment"`
}

// ProductRankDTO is one row of the product revenue ranking
type ProductRankDTO struct {
	ProductName   string `json:"productName"`
	Category      string `json:"category"`
	TimesSold     int    `json:"timesSold"`
	TotalQuantity int    `json:"totalQuantity"`
	Revenue       string `json:"revenue"`
	Rank          int    `json:"rank"`
	RevenueShare  string `json:"revenueShare"`
}

// CategorySummaryDTO is one product category roll-up row
type CategorySummaryDTO struct {
	Category       string `json:"category"`
	ProductCount   int    `json:"productCount"`
	TimesSold      int    `json:"timesSold"`
	UnitsSold      int    `json:"unitsSold"`
	TotalRevenue   string `json:"totalRevenue"`
	AvgTransaction string `json:"avgTransaction"`
	RevenueShare   string `json:"revenueShare"`
}

// DepartmentSummaryDTO is one department performance row
type DepartmentSummaryDTO struct {
	DeptName           string `json:"deptName"`
	Location           string `json:"location"`
	EmployeeCount      int    `json:"employeeCount"`
	AvgSalary          string `json:"avgSalary"`
	TotalSales         int    `json:"totalSales"`
	TotalRevenue       string `json:"totalRevenue"`
	RevenuePerEmployee string `json:"revenuePerEmployee"`
}

// EmployeePerformanceDTO is one row of the top-employee ranking
type EmployeePerformanceDTO struct {
	Rank            int    `json:"rank"`
	EmployeeName    string `json:"employeeName"`
	Position        string `json:"position"`
	DeptName        string `json:"deptName"`
	TotalSales      int    `json:"totalSales"`
	Revenue         string `json:"revenue"`
	AvgSale         string `json:"avgSale"`
	UniqueCustomers int    `json:"uniqueCustomers"`
}

// RegionPerformanceDTO is one sales region row, counting all statuses
type RegionPerformanceDTO struct {
	Region            string `json:"region"`
	TotalTransactions int    `json:"totalTransactions"`
	Completed         int    `json:"completed"`
	Pending           int    `json:"pending"`
	Cancelled         int    `json:"cancelled"`
	TotalRevenue      string `json:"totalRevenue"`
	CompletionRate    string `json:"completionRate"`
}

// SummaryMetricDTO is one metric/value pair of the database summary
type SummaryMetricDTO struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// Response envelopes mirroring the upstream API shapes

type SalaryAnalysisResponse struct {
	Employees []SalaryRankDTO `json:"employees"`
}

type MonthlyTrendResponse struct {
	MonthlyTrends []TrendPointDTO `json:"monthlyTrends"`
}

type RFMAnalysisResponse struct {
	RFMSegments []RFMSegmentDTO `json:"rfmSegments"`
}

type TopProductsResponse struct {
	TopProducts []ProductRankDTO `json:"topProducts"`
}

type CategoryAnalysisResponse struct {
	Categories []CategorySummaryDTO `json:"categories"`
}

type DepartmentPerformanceResponse struct {
	Departments []DepartmentSummaryDTO `json:"departments"`
}

type TopEmployeesResponse struct {
	TopEmployees []EmployeePerformanceDTO `json:"topEmployees"`
}

type RegionPerformanceResponse struct {
	Regions []RegionPerformanceDTO `json:"regions"`
}

type SummaryResponse struct {
	Summary []SummaryMetricDTO `json:"summary"`
}

type TablesResponse struct {
	Tables []string `json:"tables"`
	Total  int      `json:"total"`
}
