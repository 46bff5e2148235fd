package helper

import (
	"errors"
	"fmt"
	"pizzeria_kassa/config"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// OrderRequest is everything CreateOrder needs besides the database.
type OrderRequest struct {
	Input     model.CreateOrderInput
	IsOnline  bool
	CreatedBy *uint
	Now       time.Time
}

// LoadCategoryOrder returns category names in their configured display order.
// Without categories in the database it falls back to CATEGORY_ORDER.
func LoadCategoryOrder(db *gorm.DB) ([]string, error) {
	var names []string
	if err := db.Model(&model.Category{}).Order("sort_order ASC, name ASC").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	if len(names) > 0 {
		return names, nil
	}
	for _, n := range strings.Split(config.Config("CATEGORY_ORDER"), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names, nil
}

// TakeOutDiscountPct resolves the discount percentage of an order: an explicit
// value wins, otherwise take-out orders get TAKEOUT_DISCOUNT_PCT.
func TakeOutDiscountPct(takeOut bool, explicit *float64) float64 {
	if explicit != nil {
		return *explicit
	}
	if !takeOut {
		return 0
	}
	return config.ConfigFloat("TAKEOUT_DISCOUNT_PCT", 0)
}

// BuildDraft turns request lines into a draft, resolving menu products and
// checking extras against the category kind.
func BuildDraft(db *gorm.DB, lines []model.OrderLineInput, allowFreeForm bool) (*OrderDraft, error) {
	draft := NewOrderDraft()
	kinds := map[string]string{}

	for i, in := range lines {
		category := strings.TrimSpace(in.Category)
		name := strings.TrimSpace(in.ProductName)
		price := safeAmount(in.UnitPrice.Float64())
		var kind string

		if in.ProductID != nil {
			var product model.Product
			if err := db.Preload("Category").First(&product, *in.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, utils.NewOrderError(fmt.Sprintf("line %d: product %d does not exist", i+1, *in.ProductID), nil)
				}
				return nil, utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err)
			}
			if !product.Active {
				return nil, utils.NewOrderError(fmt.Sprintf("line %d: %s is not available", i+1, product.Name), nil)
			}
			name = product.Name
			if product.Code != "" && !strings.HasPrefix(name, product.Code) {
				name = product.Code + ". " + name
			}
			price = product.Price
			if product.Category != nil {
				category = product.Category.Name
				kind = product.Category.Kind
			}
		} else {
			if !allowFreeForm {
				return nil, utils.NewOrderError(fmt.Sprintf("line %d: productId is required", i+1), nil)
			}
			if name == "" {
				return nil, utils.NewValidationError(fmt.Sprintf("line %d: productName is required", i+1), nil)
			}
			k, ok := kinds[category]
			if !ok {
				var cat model.Category
				err := db.Where("name = ?", category).Limit(1).Find(&cat).Error
				if err != nil {
					return nil, utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err)
				}
				k = cat.Kind
				kinds[category] = k
			}
			kind = k
		}
		if kind == "" {
			kind = constants.KIND_OTHER
		}
		if in.Quantity <= 0 {
			return nil, utils.NewValidationError(fmt.Sprintf("line %d: quantity must be positive", i+1), nil)
		}
		if err := in.Extras.Validate(kind); err != nil {
			return nil, utils.NewValidationError(fmt.Sprintf("line %d", i+1), err)
		}
		draft.AddLine(category, kind, name, in.ProductID, in.Quantity, price, in.Extras, strings.TrimSpace(in.Note))
	}
	return draft, nil
}

// ResolveOrderCustomer finds the customer an order refers to. A customer block
// without id is matched on phone number and created when unknown.
func ResolveOrderCustomer(db *gorm.DB, customerID *uint, input *model.CustomerInput) (*model.Customer, error) {
	if customerID != nil {
		var customer model.Customer
		if err := db.First(&customer, *customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.NewOrderError(constants.ORDER_INVALID_CUSTOMER, nil)
			}
			return nil, utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err)
		}
		if !customer.IsActive {
			return nil, utils.NewOrderError(constants.ORDER_INVALID_CUSTOMER, errors.New("customer is disabled"))
		}
		return &customer, nil
	}
	if input == nil {
		return nil, nil
	}

	phone := utils.NormalizePhone(input.Phone)
	if !utils.IsValidPhone(phone) {
		return nil, utils.NewValidationError("Invalid phone number", nil)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, utils.NewValidationError("Customer name is required", nil)
	}

	existing, err := GetCustomerByPhone(db, phone)
	if err != nil {
		return nil, utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		if !existing.IsActive {
			return nil, utils.NewOrderError(constants.ORDER_INVALID_CUSTOMER, errors.New("customer is disabled"))
		}
		mergeCustomerAddress(existing, input)
		if err := db.Save(existing).Error; err != nil {
			return nil, utils.NewDatabaseError(constants.ERROR_EDIT, err)
		}
		return existing, nil
	}

	customer := new(model.Customer)
	if err := copier.Copy(customer, input); err != nil {
		return nil, utils.NewValidationError(constants.ERROR_INPUT, err)
	}
	customer.Phone = phone
	customer.IsActive = true
	if customer.Email != nil && strings.TrimSpace(*customer.Email) == "" {
		customer.Email = nil
	}
	if err := db.Create(customer).Error; err != nil {
		return nil, utils.NewDatabaseError(constants.ERROR_CREATE, err)
	}
	return customer, nil
}

// mergeCustomerAddress overwrites stored fields with the non-empty ones typed for this order.
func mergeCustomerAddress(c *model.Customer, in *model.CustomerInput) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&c.Name, in.Name)
	set(&c.Street, in.Street)
	set(&c.HouseNumber, in.HouseNumber)
	set(&c.Postcode, in.Postcode)
	set(&c.Locality, in.Locality)
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" && c.Email == nil {
		c.Email = in.Email
	}
}

// CreateOrder validates, prices, numbers and stores an order in one transaction.
func CreateOrder(db *gorm.DB, req OrderRequest) (*model.Order, *OrderSummary, error) {
	in := req.Input
	if len(in.Lines) == 0 {
		return nil, nil, utils.NewOrderError(constants.ORDER_WITHOUT_LINES, nil)
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = constants.PAYMENT_CASH
		if req.IsOnline {
			paymentMethod = constants.PAYMENT_ONLINE
		}
	}
	if !utils.IsValidValueOfConstant(paymentMethod, constants.PAYMENT_METHOD) {
		return nil, nil, utils.NewValidationError(constants.PAYMENT_METHOD_NOT_EXISTS, nil)
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(config.ShopLocation())

	var order *model.Order
	var summary *OrderSummary
	// the receipt lock is held until commit so renumbering never misses an order in flight
	err := withReceiptLock(func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			draft, err := BuildDraft(tx, in.Lines, !req.IsOnline)
			if err != nil {
				return err
			}
			customer, err := ResolveOrderCustomer(tx, in.CustomerID, in.Customer)
			if err != nil {
				return err
			}
			if req.IsOnline && customer == nil {
				return utils.NewOrderError(constants.ORDER_INVALID_CUSTOMER, errors.New("online orders need a customer"))
			}

			categoryOrder, err := LoadCategoryOrder(tx)
			if err != nil {
				return utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err)
			}
			summary = draft.Totals(categoryOrder, in.IsTakeOut, TakeOutDiscountPct(in.IsTakeOut, in.DiscountPct))

			receiptNumber, err := nextReceiptNumber(tx, now)
			if err != nil {
				return utils.NewDatabaseError(constants.ERROR_CREATE, err)
			}

			lines := draft.Lines()
			for i := range lines {
				lines[i].LineTotal = lineTotal(lines[i])
			}

			order = &model.Order{
				PublicCode:     "ORD-" + strings.ToUpper(uuid.New().String()[:8]),
				Date:           utils.NewCustomDate(now),
				Time:           now.Format("15:04:05"),
				Subtotal:       summary.Total,
				DiscountPct:    summary.DiscountPct,
				DiscountAmount: summary.Discount,
				Total:          summary.TotalAfterDiscount,
				IsTakeOut:      in.IsTakeOut,
				Note:           strings.TrimSpace(in.Note),
				ReceiptNumber:  receiptNumber,
				DeliveryTime:   in.DeliveryTime,
				Status:         constants.ORDER_STATUS_NEW,
				PaymentMethod:  paymentMethod,
				IsOnline:       req.IsOnline,
				CreatedBy:      req.CreatedBy,
				Lines:          lines,
			}
			if customer != nil {
				order.CustomerID = &customer.ID
			}
			if err := tx.Create(order).Error; err != nil {
				return utils.NewDatabaseError(constants.ERROR_CREATE, err)
			}

			if customer != nil {
				if err := tx.Model(&model.Customer{}).Where("id = ?", customer.ID).Updates(map[string]interface{}{
					"order_count": gorm.Expr("order_count + ?", 1),
					"total_spent": gorm.Expr("total_spent + ?", order.Total),
				}).Error; err != nil {
					return utils.NewDatabaseError(constants.ERROR_EDIT, err)
				}
				customer.OrderCount++
				customer.TotalSpent = utils.RoundFloat(customer.TotalSpent+order.Total, 2)
				order.Customer = customer
			}
			return nil
		})
	})
	if err != nil {
		return nil, nil, err
	}

	PublishOrderEvent("created", order)
	return order, summary, nil
}

func lineTotal(l model.OrderLine) float64 {
	extras := l.Extras.Data()
	if extras.VolleKaart {
		return 0
	}
	return utils.RoundFloat((safeAmount(l.UnitPrice)+safeAmount(extras.Surcharge()))*float64(l.Quantity), 2)
}

// SummarizeOrder rebuilds the bon view of a stored order.
func SummarizeOrder(db *gorm.DB, order *model.Order) (*OrderSummary, error) {
	categoryOrder, err := LoadCategoryOrder(db)
	if err != nil {
		return nil, err
	}
	s := SummarizeOrderLines(order.Lines, categoryOrder)
	s.ApplyDiscount(order.IsTakeOut, order.DiscountPct)
	return s, nil
}

// GetKitchenOrders returns the orders still to be made, oldest first.
func GetKitchenOrders(db *gorm.DB) ([]model.Order, error) {
	var open []model.Order
	if err := db.Preload("Customer").Preload("Lines").
		Where("status IN ?", []string{constants.ORDER_STATUS_NEW, constants.ORDER_STATUS_IN_KITCHEN}).
		Order("date ASC, time ASC, id ASC").Find(&open).Error; err != nil {
		return nil, fmt.Errorf("load kitchen orders: %w", err)
	}
	return open, nil
}

// RecalculateCustomerStats recomputes order count and total spent from the
// customer's non-cancelled orders.
func RecalculateCustomerStats(db *gorm.DB, customerID uint) error {
	var stats struct {
		Count int
		Total float64
	}
	if err := db.Model(&model.Order{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Where("customer_id = ? AND status <> ?", customerID, constants.ORDER_STATUS_CANCELLED).
		Scan(&stats).Error; err != nil {
		return err
	}
	return db.Model(&model.Customer{}).Where("id = ?", customerID).Updates(map[string]interface{}{
		"order_count": stats.Count,
		"total_spent": utils.RoundFloat(stats.Total, 2),
	}).Error
}

// UpdateOrderStatus sets a new status; no transition rules apply.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status string) (*model.Order, error) {
	if !utils.IsValidValueOfConstant(status, constants.ORDER_STATUS) {
		return nil, utils.NewValidationError(constants.ORDER_STATUS_NOT_EXISTS, nil)
	}
	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError(constants.NOT_FOUND_RECORDS, err)
			}
			return utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err)
		}
		previous := order.Status
		if err := tx.Model(&order).Update("status", status).Error; err != nil {
			return utils.NewDatabaseError(constants.ERROR_EDIT, err)
		}
		order.Status = status
		cancelChanged := (previous == constants.ORDER_STATUS_CANCELLED) != (status == constants.ORDER_STATUS_CANCELLED)
		if order.CustomerID != nil && cancelChanged {
			if err := RecalculateCustomerStats(tx, *order.CustomerID); err != nil {
				return utils.NewDatabaseError(constants.ERROR_EDIT, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	PublishOrderEvent("status", &order)
	return &order, nil
}

// DeleteOrders removes orders and their lines and refreshes the affected customer statistics.
func DeleteOrders(db *gorm.DB, ids []uint) (int64, error) {
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var customerIDs []uint
		if err := tx.Model(&model.Order{}).Where("id IN ? AND customer_id IS NOT NULL", ids).
			Distinct().Pluck("customer_id", &customerIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id IN ?", ids).Delete(&model.OrderLine{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Where("id IN ?", ids).Delete(&model.Order{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		for _, cid := range customerIDs {
			if err := RecalculateCustomerStats(tx, cid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, utils.NewDatabaseError(constants.ERROR_DELETE, err)
	}
	return deleted, nil
}

// PreviewOrder prices request lines the way CreateOrder would, without
// touching the receipt counter or storing anything.
func PreviewOrder(db *gorm.DB, in model.CreateOrderInput, allowFreeForm bool) (*OrderSummary, error) {
	if len(in.Lines) == 0 {
		return nil, utils.NewOrderError(constants.ORDER_WITHOUT_LINES, nil)
	}
	draft, err := BuildDraft(db, in.Lines, allowFreeForm)
	if err != nil {
		return nil, err
	}
	categoryOrder, err := LoadCategoryOrder(db)
	if err != nil {
		return nil, utils.NewDatabaseError(constants.ERROR_INTERNAL_ERROR, err)
	}
	return draft.Totals(categoryOrder, in.IsTakeOut, TakeOutDiscountPct(in.IsTakeOut, in.DiscountPct)), nil
}

// RenderBon prefixes the rendered summary with the order header.
func RenderBon(order *model.Order, s *OrderSummary) string {
	var b strings.Builder
	b.WriteString(padLine("Bon "+order.ReceiptNumber, order.Date.String()+" "+order.Time) + "\n")
	switch {
	case order.IsTakeOut:
		b.WriteString("Afhalen")
	default:
		b.WriteString("Levering")
	}
	if order.DeliveryTime != nil {
		b.WriteString(" om " + *order.DeliveryTime)
	}
	if order.IsOnline {
		b.WriteString(" (online)")
	}
	b.WriteString("\n")
	if c := order.Customer; c != nil {
		b.WriteString(c.Name + "  " + c.Phone + "\n")
		if c.Street != "" {
			b.WriteString(strings.TrimSpace(c.Street+" "+c.HouseNumber) + "\n")
		}
		if c.Postcode != "" || c.Locality != "" {
			b.WriteString(strings.TrimSpace(c.Postcode+" "+c.Locality) + "\n")
		}
	}
	b.WriteString(strings.Repeat("=", bonWidth) + "\n")
	b.WriteString(s.Render())
	b.WriteString(padLine("Betaling", order.PaymentMethod) + "\n")
	if order.Note != "" {
		b.WriteString("Opmerking: " + order.Note + "\n")
	}
	return b.String()
}
