package model

import "time"

// PhoneType tells landline numbers from mobile ones.
type PhoneType string

const (
	PhoneTypeLandline PhoneType = "landline"
	PhoneTypeMobile   PhoneType = "mobile"
)

// Valid reports whether the phone type is one of the known values.
func (p PhoneType) Valid() bool {
	return p == PhoneTypeLandline || p == PhoneTypeMobile
}

// MenuItem is a single dish on a store menu. It is embedded in Store and has no
// identity outside of it.
type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// Store describes a restaurant and its menu.
type Store struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	PhoneType     PhoneType  `json:"phone_type"`
	Phone         string     `json:"phone"`
	BusinessHours string     `json:"business_hours"`
	MenuItems     []MenuItem `json:"menu_items"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// RecordID returns the primary key.
func (s *Store) RecordID() int { return s.ID }

// AssignID sets the primary key.
func (s *Store) AssignID(id int) { s.ID = id }

// Timestamps returns creation and last modification time.
func (s *Store) Timestamps() (created, updated time.Time) {
	return s.CreatedAt, s.UpdatedAt
}

// SetTimestamps overwrites creation and last modification time.
func (s *Store) SetTimestamps(created, updated time.Time) {
	s.CreatedAt = created
	s.UpdatedAt = updated
}

// Clone returns a deep copy so callers cannot mutate stored menus.
func (s Store) Clone() Store {
	if s.MenuItems != nil {
		items := make([]MenuItem, len(s.MenuItems))
		copy(items, s.MenuItems)
		s.MenuItems = items
	}
	return s
}
