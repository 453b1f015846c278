package jsonfile

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/orderlunch/internal/domain/errors"
)

// Entity is implemented by pointers to records kept in a RecordStore.
type Entity[T any] interface {
	*T
	RecordID() int
	AssignID(id int)
	Timestamps() (created, updated time.Time)
	SetTimestamps(created, updated time.Time)
}

// Option customizes a RecordStore.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func defaultOptions() options {
	return options{now: func() time.Time { return time.Now().Round(0) }}
}

// RecordStore keeps int-keyed records in a Collection. Identifiers are derived
// from the current content as max(id)+1, so removing the highest record lets its
// id be handed out again; lower gaps are never refilled.
type RecordStore[T any, P Entity[T]] struct {
	collection *Collection[T]
	now        func() time.Time
}

// NewRecordStore wraps collection with id assignment and timestamping.
func NewRecordStore[T any, P Entity[T]](collection *Collection[T], opts ...Option) *RecordStore[T, P] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &RecordStore[T, P]{collection: collection, now: o.now}
}

// GetAll returns every record in file order.
func (s *RecordStore[T, P]) GetAll(ctx context.Context) ([]T, error) {
	return s.collection.Load(ctx)
}

// GetByID returns the record with id or nil when there is none.
func (s *RecordStore[T, P]) GetByID(ctx context.Context, id int) (*T, error) {
	items, err := s.collection.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if P(&items[i]).RecordID() == id {
			found := items[i]
			return &found, nil
		}
	}
	return nil, nil
}

// Add stores a copy of record under a fresh id with both timestamps set to now.
func (s *RecordStore[T, P]) Add(ctx context.Context, record *T) (*T, error) {
	return s.AddIf(ctx, record, nil)
}

// AddIf behaves like Add but first lets check veto the insert while the
// collection lock is held.
func (s *RecordStore[T, P]) AddIf(ctx context.Context, record *T, check func(existing []T) error) (*T, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: record is nil", domainErrors.ErrInvalidArgument)
	}

	var added T
	err := s.collection.Mutate(ctx, func(items []T) ([]T, error) {
		if check != nil {
			if err := check(items); err != nil {
				return nil, err
			}
		}
		added = *record
		now := s.now()
		P(&added).AssignID(nextID[T, P](items))
		P(&added).SetTimestamps(now, now)
		return append(items, added), nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// Update replaces the stored record carrying the same id. CreatedAt is kept and
// UpdatedAt always moves forward. It returns nil when the id is unknown.
func (s *RecordStore[T, P]) Update(ctx context.Context, record *T) (*T, error) {
	return s.UpdateIf(ctx, record, nil)
}

// UpdateIf behaves like Update but lets check veto the change under the lock.
// check is not consulted for unknown ids.
func (s *RecordStore[T, P]) UpdateIf(ctx context.Context, record *T, check func(existing []T) error) (*T, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: record is nil", domainErrors.ErrInvalidArgument)
	}

	var updated *T
	id := P(record).RecordID()
	err := s.collection.Mutate(ctx, func(items []T) ([]T, error) {
		idx := indexOf[T, P](items, id)
		if idx < 0 {
			return nil, errUnchanged
		}
		if check != nil {
			if err := check(items); err != nil {
				return nil, err
			}
		}

		created, previous := P(&items[idx]).Timestamps()
		now := s.now()
		if !now.After(previous) {
			now = previous.Add(time.Millisecond)
		}

		next := *record
		P(&next).SetTimestamps(created, now)
		items[idx] = next
		updated = &next
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record with id and reports whether it existed.
func (s *RecordStore[T, P]) Delete(ctx context.Context, id int) (bool, error) {
	var removed bool
	err := s.collection.Mutate(ctx, func(items []T) ([]T, error) {
		idx := indexOf[T, P](items, id)
		if idx < 0 {
			return nil, errUnchanged
		}
		removed = true
		return append(items[:idx], items[idx+1:]...), nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func nextID[T any, P Entity[T]](items []T) int {
	maxID := 0
	for i := range items {
		if id := P(&items[i]).RecordID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func indexOf[T any, P Entity[T]](items []T, id int) int {
	for i := range items {
		if P(&items[i]).RecordID() == id {
			return i
		}
	}
	return -1
}
