package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisMaxTxRetries = 5

var ErrConflict = errors.New("storage: too many concurrent updates")

// RedisStorage keeps each key as a plain Redis string. Updates use
// WATCH/MULTI and retry when the key changed underneath.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(ctx context.Context, addr, password string, db int) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("storage: connect redis: %w", err)
	}

	return &RedisStorage{client: client}, nil
}

func (r *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return v, err
}

func (r *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisStorage) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return r.UpdateMany(ctx, []string{key}, single(fn))
}

// UpdateMany watches every key and writes them in one MULTI/EXEC. A
// concurrent change to any of them retries the whole update.
func (r *RedisStorage) UpdateMany(ctx context.Context, keys []string, fn UpdateManyFunc) error {
	if err := checkKeys(keys); err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		current := make([][]byte, len(keys))
		for i, k := range keys {
			v, err := tx.Get(ctx, k).Bytes()
			if errors.Is(err, redis.Nil) {
				continue
			}
			if err != nil {
				return err
			}
			current[i] = v
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		if err := checkResult(keys, next); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, k := range keys {
				if next[i] == nil {
					pipe.Del(ctx, k)
				} else {
					pipe.Set(ctx, k, next[i], 0)
				}
			}
			return nil
		})
		return err
	}

	for i := 0; i < redisMaxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, keys...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrConflict
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}
