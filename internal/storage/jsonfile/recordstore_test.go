package jsonfile

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/polkiloo/orderlunch/internal/domain/model"
	testhelpers "github.com/polkiloo/orderlunch/internal/test"
)

func newStoreRecords(t *testing.T, opts ...Option) (*RecordStore[model.Store, *model.Store], *Collection[model.Store]) {
	t.Helper()
	c, err := OpenCollection[model.Store](t.TempDir(), "test_stores.json", discardLogger())
	if err != nil {
		t.Fatalf("open collection: %v", err)
	}
	return NewRecordStore[model.Store, *model.Store](c, opts...), c
}

func TestRecordStoreAddAssignsSequentialIDs(t *testing.T) {
	records, _ := newStoreRecords(t)
	ctx := context.Background()

	for i, phone := range []string{"0912345678", "0923456789", "0934567890"} {
		added, err := records.Add(ctx, testhelpers.NewStore("店家", phone, testhelpers.DefaultAddress))
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if added.ID != i+1 {
			t.Fatalf("expected id %d, got %d", i+1, added.ID)
		}
	}

	all, err := records.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 stores, got %d", len(all))
	}
	for i, s := range all {
		if s.ID != i+1 {
			t.Fatalf("expected stores in insertion order, got id %d at %d", s.ID, i)
		}
	}
}

func TestRecordStoreDoesNotReuseDeletedIDs(t *testing.T) {
	records, _ := newStoreRecords(t)
	ctx := context.Background()

	if _, err := records.Add(ctx, testhelpers.NewStore("店家1", "0912345678", testhelpers.DefaultAddress)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := records.Add(ctx, testhelpers.NewStore("店家2", "0923456789", testhelpers.DefaultAddress)); err != nil {
		t.Fatalf("add: %v", err)
	}
	removed, err := records.Delete(ctx, 1)
	if err != nil || !removed {
		t.Fatalf("expected delete of id 1, got %v %v", removed, err)
	}

	added, err := records.Add(ctx, testhelpers.NewStore("店家3", "0934567890", testhelpers.DefaultAddress))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID != 3 {
		t.Fatalf("expected id 3, got %d", added.ID)
	}
	if got, _ := records.GetByID(ctx, 1); got != nil {
		t.Fatalf("expected id 1 to stay deleted, got %+v", got)
	}
}

func TestRecordStoreAddSetsEqualTimestamps(t *testing.T) {
	start := time.Date(2025, 3, 1, 11, 30, 0, 0, time.Local)
	clock := testhelpers.NewClock(start)
	records, _ := newStoreRecords(t, WithClock(clock.Now))

	added, err := records.Add(context.Background(), testhelpers.NewStore("測試便當店", "0912345678", testhelpers.DefaultAddress))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !added.CreatedAt.Equal(start) || !added.UpdatedAt.Equal(start) {
		t.Fatalf("expected both timestamps at %v, got %v / %v", start, added.CreatedAt, added.UpdatedAt)
	}
}

func TestRecordStoreAddUsesWallClockByDefault(t *testing.T) {
	records, _ := newStoreRecords(t)
	before := time.Now()
	added, err := records.Add(context.Background(), testhelpers.NewStore("便當店", "0912345678", "台北市"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	after := time.Now()
	if added.CreatedAt.Before(before.Add(-time.Millisecond)) || added.CreatedAt.After(after) {
		t.Fatalf("created at %v outside [%v, %v]", added.CreatedAt, before, after)
	}
	if diff := added.UpdatedAt.Sub(added.CreatedAt); diff < 0 || diff >= 10*time.Millisecond {
		t.Fatalf("expected timestamps within 10ms, got %v", diff)
	}
}

func TestRecordStoreAddDoesNotMutateInput(t *testing.T) {
	records, _ := newStoreRecords(t)
	input := testhelpers.NewStore("店家", "0912345678", testhelpers.DefaultAddress)
	if _, err := records.Add(context.Background(), input); err != nil {
		t.Fatalf("add: %v", err)
	}
	if input.ID != 0 || !input.CreatedAt.IsZero() {
		t.Fatalf("expected caller's store untouched, got %+v", input)
	}
}

func TestRecordStoreRejectsNilRecord(t *testing.T) {
	records, _ := newStoreRecords(t)
	if _, err := records.Add(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil record")
	}
	if _, err := records.Update(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil record")
	}
}

func TestRecordStoreRoundTripsNonASCII(t *testing.T) {
	records, c := newStoreRecords(t)
	ctx := context.Background()
	store := testhelpers.NewStore("好吃便當店", "0912345678", testhelpers.DefaultAddress)
	store.MenuItems[0].Description = "香酥排骨配上三菜一飯，美味可口！"

	if _, err := records.Add(ctx, store); err != nil {
		t.Fatalf("add: %v", err)
	}

	raw, err := os.ReadFile(c.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), `\u`) {
		t.Fatalf("expected no escape sequences, got %s", raw)
	}
	if !strings.Contains(string(raw), "好吃便當店") {
		t.Fatalf("expected literal name in file, got %s", raw)
	}

	got, err := records.GetByID(ctx, 1)
	if err != nil || got == nil {
		t.Fatalf("get by id: %v %v", got, err)
	}
	if got.Name != "好吃便當店" || got.Address != testhelpers.DefaultAddress || got.MenuItems[0].Description != "香酥排骨配上三菜一飯，美味可口！" {
		t.Fatalf("unexpected round trip result %+v", got)
	}
}

func TestRecordStoreGetByIDMissing(t *testing.T) {
	records, _ := newStoreRecords(t)
	got, err := records.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestRecordStoreUpdateKeepsCreatedAtAndAdvancesUpdatedAt(t *testing.T) {
	start := time.Date(2025, 3, 1, 11, 30, 0, 0, time.Local)
	clock := testhelpers.NewClock(start)
	records, _ := newStoreRecords(t, WithClock(clock.Now))
	ctx := context.Background()

	added, err := records.Add(ctx, testhelpers.NewStore("原始店家", "0912345678", testhelpers.DefaultAddress))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	clock.Advance(100 * time.Millisecond)
	change := *added
	change.Name = "更新後店家"
	change.CreatedAt = time.Time{}
	updated, err := records.Update(ctx, &change)
	if err != nil || updated == nil {
		t.Fatalf("update: %v %v", updated, err)
	}

	got, _ := records.GetByID(ctx, added.ID)
	if got.Name != "更新後店家" {
		t.Fatalf("expected new name, got %q", got.Name)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) {
		t.Fatalf("expected created at %v, got %v", added.CreatedAt, got.CreatedAt)
	}
	if !got.UpdatedAt.After(added.UpdatedAt) {
		t.Fatalf("expected updated at after %v, got %v", added.UpdatedAt, got.UpdatedAt)
	}
}

func TestRecordStoreUpdateAdvancesUpdatedAtWhenClockStands(t *testing.T) {
	clock := testhelpers.NewClock(time.Date(2025, 3, 1, 11, 30, 0, 0, time.Local))
	records, _ := newStoreRecords(t, WithClock(clock.Now))
	ctx := context.Background()

	added, err := records.Add(ctx, testhelpers.NewStore("店家", "0912345678", testhelpers.DefaultAddress))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	previous := added.UpdatedAt
	for i := 0; i < 3; i++ {
		updated, err := records.Update(ctx, added)
		if err != nil || updated == nil {
			t.Fatalf("update: %v %v", updated, err)
		}
		if updated.UpdatedAt.Sub(previous) < time.Millisecond {
			t.Fatalf("expected at least 1ms progress, got %v -> %v", previous, updated.UpdatedAt)
		}
		previous = updated.UpdatedAt
	}
}

func TestRecordStoreUpdateMissingReturnsNil(t *testing.T) {
	records, _ := newStoreRecords(t)
	missing := testhelpers.NewStore("不存在", "0912345678", testhelpers.DefaultAddress)
	missing.ID = 42

	checked := false
	got, err := records.UpdateIf(context.Background(), missing, func([]model.Store) error {
		checked = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing id, got %+v", got)
	}
	if checked {
		t.Fatal("check must not run for unknown id")
	}
}

func TestRecordStoreDelete(t *testing.T) {
	records, _ := newStoreRecords(t)
	ctx := context.Background()
	if _, err := records.Add(ctx, testhelpers.NewStore("待刪除店家", "0912345678", testhelpers.DefaultAddress)); err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, err := records.Delete(ctx, 1)
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v %v", removed, err)
	}
	if got, _ := records.GetByID(ctx, 1); got != nil {
		t.Fatalf("expected store gone, got %+v", got)
	}

	removed, err = records.Delete(ctx, 999)
	if err != nil || removed {
		t.Fatalf("expected false for unknown id, got %v %v", removed, err)
	}
}

func TestRecordStoreAddIfVetoKeepsCollection(t *testing.T) {
	records, _ := newStoreRecords(t)
	ctx := context.Background()
	veto := errors.New("veto")

	_, err := records.AddIf(ctx, testhelpers.NewStore("店家", "0912345678", testhelpers.DefaultAddress), func(existing []model.Store) error {
		if len(existing) != 0 {
			t.Fatalf("expected empty collection, got %d", len(existing))
		}
		return veto
	})
	if !errors.Is(err, veto) {
		t.Fatalf("expected veto error, got %v", err)
	}
	all, _ := records.GetAll(ctx)
	if len(all) != 0 {
		t.Fatalf("expected nothing stored, got %d", len(all))
	}
}

func TestRecordStoreConcurrentAddsGetUniqueIDs(t *testing.T) {
	records, _ := newStoreRecords(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			added, err := records.Add(ctx, testhelpers.NewStore("店家", "0912345678", testhelpers.DefaultAddress))
			if err != nil {
				t.Errorf("add: %v", err)
				return
			}
			ids <- added.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	for id := 1; id <= n; id++ {
		if !seen[id] {
			t.Fatalf("expected id %d to be assigned", id)
		}
	}
	all, _ := records.GetAll(ctx)
	if len(all) != n {
		t.Fatalf("expected %d stores persisted, got %d", n, len(all))
	}
}
