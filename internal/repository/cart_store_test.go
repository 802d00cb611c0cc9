package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCartStore(t *testing.T) (CartStore, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cleanup := func() {
		client.Close()
		mr.Close()
	}
	return NewRedisCartStore(client), cleanup
}

func TestCartStoreMissingKeyIsNotAnError(t *testing.T) {
	store, cleanup := newTestCartStore(t)
	defer cleanup()

	value, found, err := store.Get(context.Background(), "cart:nobody")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found || value != "" {
		t.Fatalf("expected missing key, got found=%v value=%q", found, value)
	}
}

func TestCartStoreSetGetRoundTrip(t *testing.T) {
	store, cleanup := newTestCartStore(t)
	defer cleanup()

	ctx := context.Background()
	snapshot := `[{"product":{"id":"p1"},"quantity":2}]`

	if err := store.Set(ctx, "cart:buyer-1", snapshot); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, found, err := store.Get(ctx, "cart:buyer-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || value != snapshot {
		t.Fatalf("expected stored snapshot back, got found=%v value=%q", found, value)
	}
}

func TestCartStoreRemove(t *testing.T) {
	store, cleanup := newTestCartStore(t)
	defer cleanup()

	ctx := context.Background()
	if err := store.Set(ctx, "cart:buyer-1", "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Remove(ctx, "cart:buyer-1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	_, found, err := store.Get(ctx, "cart:buyer-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatal("expected key to be removed")
	}

	// Removing a missing key is a no-op
	if err := store.Remove(ctx, "cart:never-existed"); err != nil {
		t.Fatalf("Remove of missing key: %v", err)
	}
}
