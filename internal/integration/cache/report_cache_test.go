package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type payload struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestReportCache_SetAndGet(t *testing.T) {
	_, client := newTestCache(t)
	cache := NewReportCache(client)
	ctx := context.Background()

	stored := payload{Period: "August 2026", Total: 125.5}
	if err := cache.Set(ctx, "user:1:monthly-report:2026-08", stored, time.Hour); err != nil {
		t.Fatalf("unexpected error on Set: %v", err)
	}

	var loaded payload
	hit, err := cache.Get(ctx, "user:1:monthly-report:2026-08", &loaded)
	if err != nil {
		t.Fatalf("unexpected error on Get: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if loaded != stored {
		t.Errorf("expected %+v, got %+v", stored, loaded)
	}
}

func TestReportCache_GetMiss(t *testing.T) {
	_, client := newTestCache(t)
	cache := NewReportCache(client)

	var loaded payload
	hit, err := cache.Get(context.Background(), "missing-key", &loaded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Error("expected a cache miss for an absent key")
	}
}

func TestReportCache_CorruptEntryIsDropped(t *testing.T) {
	server, client := newTestCache(t)
	cache := NewReportCache(client)
	ctx := context.Background()

	if err := server.Set("corrupt", "not-json{"); err != nil {
		t.Fatalf("failed to seed corrupt entry: %v", err)
	}

	var loaded payload
	hit, err := cache.Get(ctx, "corrupt", &loaded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Error("expected a corrupt entry to read as a miss")
	}
	if server.Exists("corrupt") {
		t.Error("expected the corrupt entry to be deleted")
	}
}

func TestReportCache_SetAppliesTTL(t *testing.T) {
	server, client := newTestCache(t)
	cache := NewReportCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "expiring", payload{Period: "x"}, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	server.FastForward(2 * time.Minute)

	var loaded payload
	hit, err := cache.Get(ctx, "expiring", &loaded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Error("expected the entry to expire")
	}
}

func TestReportCache_Delete(t *testing.T) {
	_, client := newTestCache(t)
	cache := NewReportCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "a", payload{}, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Set(ctx, "b", payload{}, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cache.Delete(ctx, "a", "b", "missing"); err != nil {
		t.Fatalf("unexpected error on Delete: %v", err)
	}

	var loaded payload
	for _, key := range []string{"a", "b"} {
		hit, err := cache.Get(ctx, key, &loaded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hit {
			t.Errorf("expected key %s to be deleted", key)
		}
	}

	// Deleting nothing is a no-op.
	if err := cache.Delete(ctx); err != nil {
		t.Errorf("unexpected error deleting no keys: %v", err)
	}
}
