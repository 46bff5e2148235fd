package helper

import (
	"pizzeria_kassa/constants"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func sumDecimal(values ...float64) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(safeAmount(v)))
	}
	return sum
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// GetDailyReport builds the Z report of one shop day (YYYY-MM-DD).
func GetDailyReport(db *gorm.DB, day string) (*model.DailyReport, error) {
	date, err := utils.ParseCustomDate(day)
	if err != nil {
		return nil, utils.NewValidationError("invalid date, expected YYYY-MM-DD", err)
	}

	var orders []model.Order
	if err := db.Select("id", "total", "discount_amount", "status", "payment_method", "is_online", "is_take_out", "receipt_number").
		Where("date = ?", date).
		Order("time ASC, id ASC").
		Find(&orders).Error; err != nil {
		return nil, utils.NewDatabaseError("load daily orders", err)
	}

	report := &model.DailyReport{
		Date:              date.String(),
		PaymentBreakdown:  []model.PaymentBreakdownItem{},
		StatusBreakdown:   []model.StatusBreakdownItem{},
		CategoryBreakdown: []model.CategorySalesItem{},
	}
	revenue, discount := decimal.Zero, decimal.Zero
	payments := map[string]*model.PaymentBreakdownItem{}
	paymentRevenue := map[string]decimal.Decimal{}
	statuses := map[string]int64{}
	var paymentKeys, statusKeys []string

	for _, o := range orders {
		if _, ok := statuses[o.Status]; !ok {
			statusKeys = append(statusKeys, o.Status)
		}
		statuses[o.Status]++
		if o.Status == constants.ORDER_STATUS_CANCELLED {
			continue
		}

		report.Orders++
		if o.IsOnline {
			report.OnlineOrders++
		}
		if o.IsTakeOut {
			report.TakeOutOrders++
		}
		if report.FirstReceipt == "" || o.ReceiptNumber < report.FirstReceipt {
			report.FirstReceipt = o.ReceiptNumber
		}
		if o.ReceiptNumber > report.LastReceipt {
			report.LastReceipt = o.ReceiptNumber
		}
		revenue = revenue.Add(sumDecimal(o.Total))
		discount = discount.Add(sumDecimal(o.DiscountAmount))

		p, ok := payments[o.PaymentMethod]
		if !ok {
			p = &model.PaymentBreakdownItem{PaymentMethod: o.PaymentMethod}
			payments[o.PaymentMethod] = p
			paymentKeys = append(paymentKeys, o.PaymentMethod)
		}
		p.Orders++
		paymentRevenue[o.PaymentMethod] = paymentRevenue[o.PaymentMethod].Add(sumDecimal(o.Total))
	}

	sort.Strings(paymentKeys)
	for _, k := range paymentKeys {
		p := payments[k]
		p.Revenue = toFloat(paymentRevenue[k])
		report.PaymentBreakdown = append(report.PaymentBreakdown, *p)
	}
	sort.Strings(statusKeys)
	for _, k := range statusKeys {
		report.StatusBreakdown = append(report.StatusBreakdown, model.StatusBreakdownItem{Status: k, Orders: statuses[k]})
	}

	report.Revenue = toFloat(revenue)
	report.DiscountTotal = toFloat(discount)
	report.AverageOrder = utils.AverageOf(report.Revenue, report.Orders)

	categories, err := GetCategorySales(db, date, date)
	if err != nil {
		return nil, err
	}
	report.CategoryBreakdown = categories
	return report, nil
}

// GetRevenueByDay returns one row per day of the inclusive range, days without orders included.
func GetRevenueByDay(db *gorm.DB, from, to utils.CustomDate) ([]model.DayRevenueItem, error) {
	var orders []model.Order
	if err := db.Select("date", "total", "discount_amount").
		Where("date BETWEEN ? AND ?", from, to).
		Where("status <> ?", constants.ORDER_STATUS_CANCELLED).
		Find(&orders).Error; err != nil {
		return nil, utils.NewDatabaseError("load orders for revenue report", err)
	}

	type acc struct {
		orders   int64
		revenue  decimal.Decimal
		discount decimal.Decimal
	}
	byDay := map[string]*acc{}
	for _, o := range orders {
		k := o.Date.String()
		a, ok := byDay[k]
		if !ok {
			a = &acc{}
			byDay[k] = a
		}
		a.orders++
		a.revenue = a.revenue.Add(sumDecimal(o.Total))
		a.discount = a.discount.Add(sumDecimal(o.DiscountAmount))
	}

	items := make([]model.DayRevenueItem, 0, utils.DaysBetween(from, to))
	for d := from.Time; !d.After(to.Time); d = d.AddDate(0, 0, 1) {
		k := d.Format(utils.DateLayout)
		item := model.DayRevenueItem{Date: k}
		if a, ok := byDay[k]; ok {
			item.Orders = a.orders
			item.Revenue = toFloat(a.revenue)
			item.Discount = toFloat(a.discount)
		}
		items = append(items, item)
	}
	return items, nil
}

func salesQuery(db *gorm.DB, from, to utils.CustomDate) *gorm.DB {
	return db.Table("order_lines").
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Where("orders.date BETWEEN ? AND ?", from, to).
		Where("orders.status <> ?", constants.ORDER_STATUS_CANCELLED).
		Where("orders.deleted_at IS NULL")
}

// GetProductSales ranks products by quantity sold. limit <= 0 returns all rows.
func GetProductSales(db *gorm.DB, from, to utils.CustomDate, limit int) ([]model.ProductSalesItem, error) {
	items := []model.ProductSalesItem{}
	q := salesQuery(db, from, to).
		Select("order_lines.category AS category, order_lines.product_name AS product_name, " +
			"SUM(order_lines.quantity) AS quantity, SUM(order_lines.line_total) AS revenue").
		Group("order_lines.category, order_lines.product_name").
		Order("quantity DESC, product_name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&items).Error; err != nil {
		return nil, utils.NewDatabaseError("load product sales", err)
	}
	for i := range items {
		items[i].Revenue = utils.RoundFloat(items[i].Revenue, 2)
	}
	return items, nil
}

func GetCategorySales(db *gorm.DB, from, to utils.CustomDate) ([]model.CategorySalesItem, error) {
	items := []model.CategorySalesItem{}
	if err := salesQuery(db, from, to).
		Select("order_lines.category AS category, SUM(order_lines.quantity) AS quantity, SUM(order_lines.line_total) AS revenue").
		Group("order_lines.category").
		Order("revenue DESC, category ASC").
		Scan(&items).Error; err != nil {
		return nil, utils.NewDatabaseError("load category sales", err)
	}
	for i := range items {
		items[i].Revenue = utils.RoundFloat(items[i].Revenue, 2)
	}
	return items, nil
}

func GetTopCustomers(db *gorm.DB, limit int) ([]model.TopCustomerItem, error) {
	if limit <= 0 {
		limit = 10
	}
	items := []model.TopCustomerItem{}
	if err := db.Model(&model.Customer{}).
		Select("id AS customer_id, name, phone, order_count, total_spent").
		Where("order_count > 0").
		Order("total_spent DESC, order_count DESC, id ASC").
		Limit(limit).
		Scan(&items).Error; err != nil {
		return nil, utils.NewDatabaseError("load top customers", err)
	}
	return items, nil
}

// GetDashboardStats compares today with yesterday in the shop time zone.
func GetDashboardStats(db *gorm.DB, now time.Time) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}
	today := utils.NewCustomDate(now)
	yesterday := utils.NewCustomDate(now.AddDate(0, 0, -1))

	if err := db.Model(&model.Customer{}).Count(&stats.Customers).Error; err != nil {
		return nil, utils.NewDatabaseError("count customers", err)
	}
	if err := db.Model(&model.Product{}).Where("active = ?", true).Count(&stats.Products).Error; err != nil {
		return nil, utils.NewDatabaseError("count products", err)
	}
	if err := db.Model(&model.Order{}).
		Where("status IN ?", []string{constants.ORDER_STATUS_NEW, constants.ORDER_STATUS_IN_KITCHEN, constants.ORDER_STATUS_ON_THE_WAY}).
		Count(&stats.OpenOrders).Error; err != nil {
		return nil, utils.NewDatabaseError("count open orders", err)
	}

	days, err := GetRevenueByDay(db, yesterday, today)
	if err != nil {
		return nil, err
	}
	prev, cur := days[0], days[1]
	stats.TodayOrders = cur.Orders
	stats.TodayRevenue = cur.Revenue
	stats.AverageOrderNow = utils.AverageOf(cur.Revenue, cur.Orders)
	stats.RevenueGrowth = utils.CalculateGrowth(cur.Revenue, prev.Revenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(cur.Orders), float64(prev.Orders))
	return stats, nil
}
