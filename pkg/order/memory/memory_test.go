package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderboard/pkg/order"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New(0)
	l := order.Ledger{{Name: "Christy", Items: []order.LineItem{{ID: "1", Name: "Nasi Goreng", Quantity: 2}}}}
	if err := repo.Put(ctx, "s1", l); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0].Items[0].Name != "Nasi Goreng" {
		t.Fatalf("expected Nasi Goreng, got %s", got[0].Items[0].Name)
	}
	got[0].Items[0].Quantity = 99
	again, _ := repo.Get(ctx, "s1")
	if again[0].Items[0].Quantity != 2 {
		t.Fatal("stored ledger shares memory with caller")
	}
	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, order.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "s1"); !errors.Is(err, order.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestRepositoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := New(time.Hour)
	repo.now = func() time.Time { return now }

	if err := repo.Put(ctx, "s1", nil); err != nil {
		t.Fatalf("put: %v", err)
	}
	now = now.Add(59 * time.Minute)
	if _, err := repo.Get(ctx, "s1"); err != nil {
		t.Fatalf("expected live session, got %v", err)
	}

	// Put refreshes the expiry.
	if err := repo.Put(ctx, "s1", nil); err != nil {
		t.Fatalf("put: %v", err)
	}
	now = now.Add(59 * time.Minute)
	if _, err := repo.Get(ctx, "s1"); err != nil {
		t.Fatalf("expected refreshed session, got %v", err)
	}

	now = now.Add(61 * time.Minute)
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, order.ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestRepositoryReadRefreshesExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := New(time.Hour)
	repo.now = func() time.Time { return now }

	if err := repo.Put(ctx, "s1", nil); err != nil {
		t.Fatalf("put: %v", err)
	}
	for i := 0; i < 3; i++ {
		now = now.Add(45 * time.Minute)
		if _, err := repo.Get(ctx, "s1"); err != nil {
			t.Fatalf("read %d: expected live session, got %v", i, err)
		}
	}

	now = now.Add(61 * time.Minute)
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, order.ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}
