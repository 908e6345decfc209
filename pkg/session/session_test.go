package session

import (
	"context"
	"testing"
	"time"
)

func TestSessionValues(t *testing.T) {
	s := New(time.Hour)
	if s.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if s.Expired() {
		t.Error("fresh session is expired")
	}

	if _, ok := s.Get("k"); ok {
		t.Error("unset key found")
	}
	s.Set("k", 1)
	if v, ok := s.Get("k"); !ok || v != 1 {
		t.Errorf("Get(k) = %v, %v", v, ok)
	}
	s.Delete("k")
	if _, ok := s.Get("k"); ok {
		t.Error("deleted key found")
	}
}

func TestSessionExpired(t *testing.T) {
	s := New(-time.Minute)
	if !s.Expired() {
		t.Error("negative-ttl session should be expired")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := New(time.Hour)
	s.Set("user", "ada")
	if err := store.Put(ctx, s); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("session not found")
	}
	if v, _ := got.Get("user"); v != "ada" {
		t.Errorf("user = %v", v)
	}

	// The store hands out copies; mutating one does not leak into another.
	got.Set("user", "bob")
	again, _ := store.Get(ctx, s.ID)
	if v, _ := again.Get("user"); v != "ada" {
		t.Errorf("stored session mutated through a loaded copy: user = %v", v)
	}
}

func TestMemoryStoreMissAndExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if got, err := store.Get(ctx, "nope"); err != nil || got != nil {
		t.Errorf("Get(miss) = %v, %v", got, err)
	}

	expired := New(-time.Minute)
	store.Put(ctx, expired)
	if got, _ := store.Get(ctx, expired.ID); got != nil {
		t.Error("expired session returned")
	}

	if store.Len() != 1 {
		t.Errorf("Len() = %d", store.Len())
	}
	store.Cleanup()
	if store.Len() != 0 {
		t.Errorf("Len() after Cleanup = %d", store.Len())
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := New(time.Hour)
	store.Put(ctx, s)
	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := store.Get(ctx, s.ID); got != nil {
		t.Error("deleted session returned")
	}
}
