package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"confirmed", OrderStatusConfirmed, "confirmed"},
		{"preparing", OrderStatusPreparing, "preparing"},
		{"completed", OrderStatusCompleted, "completed"},
		{"cancelled", OrderStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if tc.got.Label() == "" {
				t.Fatalf("expected label for %s", tc.got)
			}
		})
	}

	if got := OrderStatus("unknown").Label(); got != "unknown" {
		t.Fatalf("expected raw value for unknown status, got %q", got)
	}
}

func TestPhoneTypeValid(t *testing.T) {
	if !PhoneTypeLandline.Valid() || !PhoneTypeMobile.Valid() {
		t.Fatal("expected known phone types to be valid")
	}
	if PhoneType("fax").Valid() {
		t.Fatal("did not expect fax to be valid")
	}
}

func TestOrderTotal(t *testing.T) {
	order := Order{Items: []OrderItem{
		{MenuItemName: "便當A", Price: decimal.NewFromInt(100), Quantity: 2},
		{MenuItemName: "便當B", Price: decimal.NewFromInt(80), Quantity: 3},
	}}
	if !order.Total().Equal(decimal.NewFromInt(440)) {
		t.Fatalf("expected total 440, got %s", order.Total())
	}
}

func TestOrderItemSubtotalRoundsToCents(t *testing.T) {
	item := OrderItem{Price: decimal.RequireFromString("10.333"), Quantity: 3}
	if got := item.Subtotal().StringFixed(2); got != "31.00" {
		t.Fatalf("expected 31.00, got %s", got)
	}

	tie := OrderItem{Price: decimal.RequireFromString("0.125"), Quantity: 1}
	if got := tie.Subtotal().StringFixed(2); got != "0.12" {
		t.Fatalf("expected ties to round to even, got %s", got)
	}
}

func TestOrderTotalEmpty(t *testing.T) {
	if !(Order{}).Total().IsZero() {
		t.Fatal("expected zero total for empty order")
	}
}

func TestStoreCloneCopiesMenu(t *testing.T) {
	s := Store{Name: "好吃便當店", MenuItems: []MenuItem{{Name: "排骨便當", Price: 80}}}
	c := s.Clone()
	c.MenuItems[0].Name = "雞腿便當"
	if s.MenuItems[0].Name != "排骨便當" {
		t.Fatalf("expected original menu untouched, got %q", s.MenuItems[0].Name)
	}
}

func TestOrderCloneCopiesItems(t *testing.T) {
	o := Order{Items: []OrderItem{{MenuItemName: "a", Quantity: 1}}}
	c := o.Clone()
	c.Items[0].Quantity = 9
	if o.Items[0].Quantity != 1 {
		t.Fatal("expected original items untouched")
	}
}

func TestStoreRecordAccessors(t *testing.T) {
	var s Store
	s.AssignID(7)
	if s.RecordID() != 7 {
		t.Fatalf("expected id 7, got %d", s.RecordID())
	}
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Minute)
	s.SetTimestamps(created, updated)
	gotCreated, gotUpdated := s.Timestamps()
	if !gotCreated.Equal(created) || !gotUpdated.Equal(updated) {
		t.Fatalf("unexpected timestamps %v %v", gotCreated, gotUpdated)
	}
}
