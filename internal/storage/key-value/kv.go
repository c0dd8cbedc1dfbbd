package key_value

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamvkosarev/krishisahay-bot/internal/storage"
	"github.com/redis/go-redis/v9"
)

type KV struct {
	rdb       *redis.Client
	keyPrefix string
}

func NewKV(rdb *redis.Client, keyPrefix string) *KV {
	return &KV{
		rdb:       rdb,
		keyPrefix: keyPrefix,
	}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := k.rdb.Get(ctx, k.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return raw, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := k.rdb.Set(ctx, k.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	if err := k.rdb.Del(ctx, k.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (k *KV) key(key string) string {
	return k.keyPrefix + key
}
