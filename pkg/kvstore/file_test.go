package kvstore

import (
	"context"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	missing, err := store.Get(ctx, "absent")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing key, got %q", missing)
	}

	if err := store.Set(ctx, "doc", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, "doc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Get = %q", got)
	}

	if err := store.Set(ctx, "doc", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = store.Get(ctx, "doc")
	if string(got) != `{"a":2}` {
		t.Errorf("overwrite Get = %q", got)
	}

	if err := store.Delete(ctx, "doc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = store.Get(ctx, "doc")
	if err != nil || got != nil {
		t.Errorf("after delete: %q, %v", got, err)
	}

	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, "doc"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}
