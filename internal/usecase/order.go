package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderlunch/internal/domain/errors"
	"github.com/polkiloo/orderlunch/internal/domain/model"
	"github.com/polkiloo/orderlunch/internal/domain/repository"
)

const (
	// OrderIDPrefix starts every generated order id.
	OrderIDPrefix = "ORD"
	// DefaultRetentionDays applies when a non-positive day count is given.
	DefaultRetentionDays = 5

	orderIDLayout = "20060102150405.000"
)

// MaxOrderAmount caps the total of a single order.
var MaxOrderAmount = decimal.NewFromInt(100000)

// OrderOption customises OrderUseCase.
type OrderOption func(*OrderUseCase)

// WithOrderClock replaces the wall clock used for ids, timestamps and cutoffs.
func WithOrderClock(now func() time.Time) OrderOption {
	return func(u *OrderUseCase) {
		if now != nil {
			u.now = now
		}
	}
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	logger *slog.Logger
	now    func() time.Time

	idMu   sync.Mutex
	lastID time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, logger *slog.Logger, opts ...OrderOption) *OrderUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	u := &OrderUseCase{
		orders: orders,
		logger: logger.With(slog.String("component", "orders")),
		now:    func() time.Time { return time.Now().Round(0) },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateOrder validates order, stamps it as a new pending order and persists it.
// The id, creation time and status are written back into order.
func (u *OrderUseCase) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order == nil {
		return nil, fmt.Errorf("%w: order is nil", domainErrors.ErrInvalidArgument)
	}
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", domainErrors.ErrInvalidArgument)
	}
	total := order.Total()
	if total.GreaterThan(MaxOrderAmount) {
		return nil, fmt.Errorf("%w: order total %s exceeds %s", domainErrors.ErrInvalidArgument, total, MaxOrderAmount)
	}

	issued := u.nextIssueTime()
	order.OrderID = formatOrderID(issued)
	order.CreatedAt = issued
	order.Status = model.OrderStatusPending

	if err := u.orders.Append(ctx, order); err != nil {
		u.logger.Error("create order failed", slog.String("order_id", order.OrderID), slog.String("error", err.Error()))
		return nil, err
	}
	u.logger.Info("order created",
		slog.String("order_id", order.OrderID),
		slog.String("store", order.StoreName),
		slog.String("total", total.String()),
	)
	return order, nil
}

// GenerateOrderID returns OrderIDPrefix followed by the local time down to the
// millisecond. Ids issued by one use case never repeat: when the clock has not
// moved past the previous id, the previous instant plus one millisecond is used.
func (u *OrderUseCase) GenerateOrderID() string {
	return formatOrderID(u.nextIssueTime())
}

// nextIssueTime returns the millisecond instant behind the next order id.
// CreateOrder stores the same instant as CreatedAt so both always agree.
func (u *OrderUseCase) nextIssueTime() time.Time {
	u.idMu.Lock()
	defer u.idMu.Unlock()

	ts := u.now().Local().Truncate(time.Millisecond)
	if !ts.After(u.lastID) {
		ts = u.lastID.Add(time.Millisecond)
	}
	u.lastID = ts
	return ts
}

func formatOrderID(ts time.Time) string {
	return OrderIDPrefix + strings.Replace(ts.Format(orderIDLayout), ".", "", 1)
}

// GetOrderByID returns the order or nil. Blank ids never reach storage.
func (u *OrderUseCase) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, nil
	}
	order, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		u.logger.Warn("order not found", slog.String("order_id", orderID))
	}
	return order, nil
}

// GetRecentOrders returns orders created within the last days, newest first.
func (u *OrderUseCase) GetRecentOrders(ctx context.Context, days int) ([]model.Order, error) {
	all, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := u.cutoff(days)
	recent := make([]model.Order, 0, len(all))
	for _, o := range all {
		if !o.CreatedAt.Before(cutoff) {
			recent = append(recent, o)
		}
	}
	newestFirst(recent)
	return recent, nil
}

// GetPendingOrders returns orders awaiting confirmation, newest first.
func (u *OrderUseCase) GetPendingOrders(ctx context.Context) ([]model.Order, error) {
	all, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]model.Order, 0, len(all))
	for _, o := range all {
		if o.Status == model.OrderStatusPending {
			pending = append(pending, o)
		}
	}
	newestFirst(pending)
	return pending, nil
}

// GetAllOrders returns orders in storage order.
func (u *OrderUseCase) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// CleanupOldOrders removes orders older than days and returns how many went.
func (u *OrderUseCase) CleanupOldOrders(ctx context.Context, days int) (int, error) {
	cutoff := u.cutoff(days)
	removed, err := u.orders.RemoveCreatedBefore(ctx, cutoff)
	if err != nil {
		u.logger.Error("cleanup orders failed", slog.String("error", err.Error()))
		return 0, err
	}
	u.logger.Info("old orders cleaned up", slog.Int("removed", removed), slog.Time("cutoff", cutoff))
	return removed, nil
}

func (u *OrderUseCase) cutoff(days int) time.Time {
	if days <= 0 {
		days = DefaultRetentionDays
	}
	return u.now().AddDate(0, 0, -days)
}

func newestFirst(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
