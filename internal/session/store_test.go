package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/JOHN41-tech/assistant-L/internal/tutor"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}

	s := New(tutor.PersonaSocratic, "Beginner")
	if err := s.Start(twoStepRoadmap()); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "abc", s); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Persona != tutor.PersonaSocratic || got.Roadmap.Topic != "Recursion" {
		t.Errorf("Get() = %+v", got)
	}

	if err := store.Evict(ctx, "abc"); err != nil {
		t.Fatalf("Evict() error = %v", err)
	}
	if _, err := store.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Evict: err = %v, want ErrNotFound", err)
	}
	if err := store.Evict(ctx, "abc"); err != nil {
		t.Errorf("Evict(absent) error = %v, want nil", err)
	}
}

func TestMemoryStoreHandsOutCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := New(tutor.PersonaSocratic, "Beginner")
	if err := s.Start(twoStepRoadmap()); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "abc", s); err != nil {
		t.Fatal(err)
	}

	// Advancing one request's session must not leak into another
	// request's view until it is put back.
	first, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatal(err)
	}
	first.NextStep()

	second, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if second.CurrentStepIndex != 0 {
		t.Fatalf("CurrentStepIndex = %d, want 0: stored session aliased a caller's copy", second.CurrentStepIndex)
	}

	// Mutating the session after Put must not reach the store either.
	s.NextStep()
	third, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if third.CurrentStepIndex != 0 {
		t.Fatalf("CurrentStepIndex = %d, want 0 after mutating the original", third.CurrentStepIndex)
	}
}

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t, 0)

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}

	s := New(tutor.PersonaELI5, "Beginner")
	if err := s.Start(twoStepRoadmap()); err != nil {
		t.Fatal(err)
	}
	s.NextStep()

	if err := store.Put(ctx, "abc", s); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Persona != tutor.PersonaELI5 {
		t.Errorf("Persona = %q, want %q", got.Persona, tutor.PersonaELI5)
	}
	if got.CurrentStepIndex != 1 {
		t.Errorf("CurrentStepIndex = %d, want 1", got.CurrentStepIndex)
	}
	if got.Roadmap == nil || got.Roadmap.Len() != 2 {
		t.Fatalf("Roadmap = %+v, want 2 steps", got.Roadmap)
	}

	if err := store.Evict(ctx, "abc"); err != nil {
		t.Fatalf("Evict() error = %v", err)
	}
	if _, err := store.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Evict: err = %v, want ErrNotFound", err)
	}
}

func TestRedisStoreTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t, time.Minute)

	s := New(tutor.PersonaGeneral, "Beginner")
	if err := store.Put(ctx, "abc", s); err != nil {
		t.Fatal(err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after TTL expiry: err = %v, want ErrNotFound", err)
	}
}
