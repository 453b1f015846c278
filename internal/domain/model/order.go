package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes processing lifecycle. Only OrderStatusPending is assigned
// today; the rest are reserved for store-side order handling.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Label returns human readable status name.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "待確認"
	case OrderStatusConfirmed:
		return "已確認"
	case OrderStatusPreparing:
		return "準備中"
	case OrderStatusCompleted:
		return "已完成"
	case OrderStatusCancelled:
		return "已取消"
	default:
		return string(s)
	}
}

// OrderItem is a snapshot of a menu item at checkout time.
type OrderItem struct {
	MenuItemID   string          `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
}

// Subtotal is price times quantity rounded to cents, ties to even.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))).RoundBank(2)
}

// Order is a submitted lunch order. Store fields are snapshots and do not follow
// later changes of the store record.
type Order struct {
	OrderID       string      `json:"order_id"`
	StoreID       string      `json:"store_id"`
	StoreName     string      `json:"store_name"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []OrderItem `json:"items"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Total sums item subtotals. It is always derived and never persisted.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	if o.Items != nil {
		items := make([]OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
	}
	return o
}
