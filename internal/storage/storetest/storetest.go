// Package storetest holds the behavioral contract every storage.Store
// implementation must satisfy. Backend test files call Run with a fresh
// store so all backends stay interchangeable.
package storetest

import (
	"context"
	"testing"

	"github.com/rawal21/stayfinder/internal/storage"
)

// Run exercises the Store contract against the given implementation.
func Run(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		v, ok, err := s.Get(ctx, "hb_dest_nowhere")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || v != "" {
			t.Errorf("expected absent key, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := s.Set(ctx, "hb_dest_lisbon", "LIS"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok, err := s.Get(ctx, "hb_dest_lisbon")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || v != "LIS" {
			t.Errorf("expected LIS, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("first write wins", func(t *testing.T) {
		if err := s.Set(ctx, "hb_dest_porto", "OPO"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Set(ctx, "hb_dest_porto", "XXX"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok, err := s.Get(ctx, "hb_dest_porto")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || v != "OPO" {
			t.Errorf("expected original value OPO to survive, got %q (ok=%v)", v, ok)
		}
	})
}
