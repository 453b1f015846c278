package repository

import (
	"context"
	"time"

	"github.com/polkiloo/orderlunch/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Append(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	RemoveCreatedBefore(ctx context.Context, cutoff time.Time) (int, error)
}
