package repository

import (
	"testing"

	"tradelens_backend/pkg/kvstore"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewGateway(store)
}
