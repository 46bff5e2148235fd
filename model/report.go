package model

type PaymentBreakdownItem struct {
	PaymentMethod string  `json:"paymentMethod"`
	Orders        int64   `json:"orders"`
	Revenue       float64 `json:"revenue"`
}

type StatusBreakdownItem struct {
	Status string `json:"status"`
	Orders int64  `json:"orders"`
}

// DailyReport is the end-of-day (Z) report of one shop day. Cancelled orders
// are counted in StatusBreakdown only.
type DailyReport struct {
	Date              string                 `json:"date"`
	Orders            int64                  `json:"orders"`
	OnlineOrders      int64                  `json:"onlineOrders"`
	TakeOutOrders     int64                  `json:"takeOutOrders"`
	Revenue           float64                `json:"revenue"`
	DiscountTotal     float64                `json:"discountTotal"`
	AverageOrder      float64                `json:"averageOrder"`
	FirstReceipt      string                 `json:"firstReceipt"`
	LastReceipt       string                 `json:"lastReceipt"`
	PaymentBreakdown  []PaymentBreakdownItem `json:"paymentBreakdown"`
	StatusBreakdown   []StatusBreakdownItem  `json:"statusBreakdown"`
	CategoryBreakdown []CategorySalesItem    `json:"categoryBreakdown"`
}

type DayRevenueItem struct {
	Date     string  `json:"date"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
	Discount float64 `json:"discount"`
}

type CategorySalesItem struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type ProductSalesItem struct {
	Category    string  `json:"category"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

type TopCustomerItem struct {
	CustomerID uint    `json:"customerId"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	OrderCount int     `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}

type DashboardStats struct {
	Customers       int64   `json:"customers"`
	Products        int64   `json:"products"`
	TodayOrders     int64   `json:"todayOrders"`
	TodayRevenue    float64 `json:"todayRevenue"`
	OpenOrders      int64   `json:"openOrders"`
	RevenueGrowth   float64 `json:"revenueGrowth"`
	OrdersGrowth    float64 `json:"ordersGrowth"`
	AverageOrderNow float64 `json:"averageOrder"`
}
