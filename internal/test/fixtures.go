package test

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderlunch/internal/domain/model"
)

// DefaultAddress is used by NewStore.
const DefaultAddress = "台北市中正區羅斯福路一段100號"

// NewStore builds a store with one menu item, ready to be added.
func NewStore(name, phone, address string) *model.Store {
	return &model.Store{
		Name:          name,
		Address:       address,
		PhoneType:     model.PhoneTypeMobile,
		Phone:         phone,
		BusinessHours: "週一至週五 11:00-14:00",
		MenuItems: []model.MenuItem{
			{ID: 1, Name: "排骨便當", Price: 80, Description: "香酥排骨配上三菜一飯"},
		},
	}
}

// NewOrder builds an order for storeName with a single line of two 100-priced boxes.
func NewOrder(storeName string) *model.Order {
	return &model.Order{
		StoreID:       "1",
		StoreName:     storeName,
		CustomerName:  "測試客戶",
		CustomerPhone: "0912345678",
		Items: []model.OrderItem{
			Item("1", "招牌便當", 100, 2),
		},
	}
}

// Item builds an order line priced in whole currency units.
func Item(menuItemID, name string, price int64, quantity int) model.OrderItem {
	return model.OrderItem{
		MenuItemID:   menuItemID,
		MenuItemName: name,
		Price:        decimal.NewFromInt(price),
		Quantity:     quantity,
	}
}
