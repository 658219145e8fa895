package repository

import (
	"context"
	"encoding/json"
	"sync"

	"tradelens_backend/pkg/kvstore"
	"tradelens_backend/pkg/logger"

	"go.uber.org/zap"
)

// Gateway serializes every collection mutation behind one process-local
// mutex: each operation reads the whole collection blob, mutates it in
// memory and writes the whole blob back, so interleaved operations never
// observe partial writes. Cross-process access stays last-write-wins.
type Gateway struct {
	mu    sync.Mutex
	store kvstore.Store
}

func NewGateway(store kvstore.Store) *Gateway {
	return &Gateway{store: store}
}

// load reads the collection under key into v. A missing key reports
// found=false; a blob that no longer parses is treated as empty rather
// than surfacing a parse error into handler code.
func (g *Gateway) load(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := g.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Log.Warn("discarding unparseable collection",
			zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (g *Gateway) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return g.store.Set(ctx, key, data)
}

func (g *Gateway) delete(ctx context.Context, key string) error {
	return g.store.Delete(ctx, key)
}
