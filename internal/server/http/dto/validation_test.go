package dto

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	if err := RegisterValidators(v); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	return v
}

func validStore() StoreRequest {
	return StoreRequest{
		Name:          "好吃便當店",
		Address:       "台北市中正區羅斯福路一段100號",
		PhoneType:     "mobile",
		Phone:         "0912345678",
		BusinessHours: "週一至週五 11:00-14:00",
		MenuItems:     []MenuItemRequest{{Name: "排骨便當", Price: 80}},
	}
}

func validOrder() OrderRequest {
	return OrderRequest{
		StoreID:       "1",
		StoreName:     "好吃便當店",
		CustomerName:  "王小明",
		CustomerPhone: "0912345678",
		Items: []OrderItemRequest{{
			MenuItemID:   "1",
			MenuItemName: "排骨便當",
			Price:        decimal.NewFromInt(80),
			Quantity:     2,
		}},
	}
}

func TestStoreRequestValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name   string
		mutate func(*StoreRequest)
		field  string
	}{
		{name: "valid", mutate: func(*StoreRequest) {}},
		{name: "name too long", mutate: func(r *StoreRequest) { r.Name = strings.Repeat("店", 101) }, field: "name"},
		{name: "name at limit", mutate: func(r *StoreRequest) { r.Name = strings.Repeat("店", 100) }},
		{name: "phone with dash", mutate: func(r *StoreRequest) { r.Phone = "02-2345678" }, field: "phone"},
		{name: "unknown phone type", mutate: func(r *StoreRequest) { r.PhoneType = "fax" }, field: "phone_type"},
		{name: "no menu", mutate: func(r *StoreRequest) { r.MenuItems = nil }, field: "menu_items"},
		{name: "too many dishes", mutate: func(r *StoreRequest) {
			r.MenuItems = make([]MenuItemRequest, 21)
			for i := range r.MenuItems {
				r.MenuItems[i] = MenuItemRequest{Name: "便當", Price: 1}
			}
		}, field: "menu_items"},
		{name: "negative price", mutate: func(r *StoreRequest) { r.MenuItems[0].Price = -1 }, field: "menu_items[0].price"},
		{name: "long description", mutate: func(r *StoreRequest) { r.MenuItems[0].Description = strings.Repeat("a", 201) }, field: "menu_items[0].description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStore()
			tt.mutate(&req)
			fields := FieldErrors(v.Struct(req))
			if tt.field == "" {
				if len(fields) != 0 {
					t.Fatalf("expected valid request, got %+v", fields)
				}
				return
			}
			if len(fields) == 0 || fields[0].Field != tt.field {
				t.Fatalf("expected failure on %s, got %+v", tt.field, fields)
			}
		})
	}
}

func TestOrderRequestValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name   string
		mutate func(*OrderRequest)
		field  string
	}{
		{name: "valid", mutate: func(*OrderRequest) {}},
		{name: "missing customer", mutate: func(r *OrderRequest) { r.CustomerName = "" }, field: "customer_name"},
		{name: "phone too long", mutate: func(r *OrderRequest) { r.CustomerPhone = strings.Repeat("9", 21) }, field: "customer_phone"},
		{name: "empty cart", mutate: func(r *OrderRequest) { r.Items = []OrderItemRequest{} }, field: "items"},
		{name: "zero quantity", mutate: func(r *OrderRequest) { r.Items[0].Quantity = 0 }, field: "items[0].quantity"},
		{name: "too many boxes", mutate: func(r *OrderRequest) { r.Items[0].Quantity = 101 }, field: "items[0].quantity"},
		{name: "free dish", mutate: func(r *OrderRequest) { r.Items[0].Price = decimal.Zero }, field: "items[0].price"},
		{name: "one cent", mutate: func(r *OrderRequest) { r.Items[0].Price = decimal.RequireFromString("0.01") }},
		{name: "dish name at limit", mutate: func(r *OrderRequest) { r.Items[0].MenuItemName = strings.Repeat("飯", 200) }},
		{name: "dish name too long", mutate: func(r *OrderRequest) { r.Items[0].MenuItemName = strings.Repeat("飯", 201) }, field: "items[0].menu_item_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrder()
			tt.mutate(&req)
			fields := FieldErrors(v.Struct(req))
			if tt.field == "" {
				if len(fields) != 0 {
					t.Fatalf("expected valid request, got %+v", fields)
				}
				return
			}
			if len(fields) == 0 || fields[0].Field != tt.field {
				t.Fatalf("expected failure on %s, got %+v", tt.field, fields)
			}
		})
	}
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	if got := FieldErrors(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
