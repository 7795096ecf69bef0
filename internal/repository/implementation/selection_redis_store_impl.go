package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"beauty-advisor-be/internal/constant"
	"beauty-advisor-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// selectionRedisStore persists the selection set in redis under one key, for
// deployments that run more than one app instance behind a balancer.
type selectionRedisStore struct {
	rdb *redis.Client
}

func NewSelectionRedisStore(rdb *redis.Client) contract.ISelectionStore {
	return &selectionRedisStore{rdb: rdb}
}

func (s *selectionRedisStore) Save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, constant.SelectionStoreKey, data, 0).Err()
}

func (s *selectionRedisStore) Load(ctx context.Context) ([]string, error) {
	raw, err := s.rdb.Get(ctx, constant.SelectionStoreKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []string{}, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("malformed selection value under %q: %w", constant.SelectionStoreKey, err)
	}
	return ids, nil
}
