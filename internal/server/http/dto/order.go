package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest describes one line of a checkout cart.
type OrderItemRequest struct {
	MenuItemID   string          `json:"menu_item_id" binding:"required"`
	MenuItemName string          `json:"menu_item_name" binding:"required,max=200"`
	Price        decimal.Decimal `json:"price" binding:"gte=0.01"`
	Quantity     int             `json:"quantity" binding:"required,min=1,max=100"`
}

// OrderRequest describes the checkout payload.
type OrderRequest struct {
	StoreID       string             `json:"store_id" binding:"required"`
	StoreName     string             `json:"store_name" binding:"required,max=100"`
	CustomerName  string             `json:"customer_name" binding:"required,max=100"`
	CustomerPhone string             `json:"customer_phone" binding:"required,digits,max=20"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemResponse is an order line with its subtotal.
type OrderItemResponse struct {
	MenuItemID   string          `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// OrderResponse carries full order details.
type OrderResponse struct {
	OrderID       string              `json:"order_id"`
	StoreID       string              `json:"store_id"`
	StoreName     string              `json:"store_name"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Status        string              `json:"status"`
	StatusLabel   string              `json:"status_label"`
	CreatedAt     time.Time           `json:"created_at"`
}

// OrderSummaryResponse is a history row.
type OrderSummaryResponse struct {
	OrderID     string          `json:"order_id"`
	CreatedAt   time.Time       `json:"created_at"`
	StoreName   string          `json:"store_name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	ItemCount   int             `json:"item_count"`
}
