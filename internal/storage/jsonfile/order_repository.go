package jsonfile

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/orderlunch/internal/domain/errors"
	"github.com/polkiloo/orderlunch/internal/domain/model"
)

type orderRepository struct {
	orders *Collection[model.Order]
}

func (r *orderRepository) Append(ctx context.Context, order *model.Order) error {
	if order == nil {
		return fmt.Errorf("%w: order is nil", domainErrors.ErrInvalidArgument)
	}
	return r.orders.Mutate(ctx, func(items []model.Order) ([]model.Order, error) {
		return append(items, order.Clone()), nil
	})
}

func (r *orderRepository) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	items, err := r.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].OrderID == orderID {
			found := items[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.orders.Load(ctx)
}

func (r *orderRepository) RemoveCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	var removed int
	err := r.orders.Mutate(ctx, func(items []model.Order) ([]model.Order, error) {
		kept := items[:0]
		for _, o := range items {
			if o.CreatedAt.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, o)
		}
		if removed == 0 {
			return nil, errUnchanged
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
