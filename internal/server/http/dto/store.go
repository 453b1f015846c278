package dto

import "time"

// MenuItemRequest describes one dish in a store payload.
type MenuItemRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Price       int    `json:"price" binding:"gte=0"`
	Description string `json:"description" binding:"max=200"`
}

// StoreRequest describes the payload for creating or editing a store.
type StoreRequest struct {
	Name          string            `json:"name" binding:"required,max=100"`
	Address       string            `json:"address" binding:"required,max=200"`
	PhoneType     string            `json:"phone_type" binding:"required,oneof=landline mobile"`
	Phone         string            `json:"phone" binding:"required,digits,max=20"`
	BusinessHours string            `json:"business_hours" binding:"required,max=100"`
	MenuItems     []MenuItemRequest `json:"menu_items" binding:"required,min=1,max=20,dive"`
}

// MenuItemResponse is a dish as returned to clients.
type MenuItemResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// StoreResponse is a store as returned to clients.
type StoreResponse struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	Address       string             `json:"address"`
	PhoneType     string             `json:"phone_type"`
	Phone         string             `json:"phone"`
	BusinessHours string             `json:"business_hours"`
	MenuItems     []MenuItemResponse `json:"menu_items"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
