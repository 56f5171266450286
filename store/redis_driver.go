package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/arklib/hstore/util"
)

// RedisDriver keeps each bucket in one redis hash named scene:bucket.
type RedisDriver struct {
	Driver
	client redis.Cmdable
	scene  string
}

func NewRedisDriver(client redis.Cmdable, scene string) *RedisDriver {
	return &RedisDriver{client: client, scene: scene}
}

func (r *RedisDriver) Get(ctx context.Context, bucket, key string) (*string, error) {
	value, err := r.client.HGet(ctx, r.makeKey(bucket), key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (r *RedisDriver) Set(ctx context.Context, bucket, key string, value string) error {
	return r.client.HSet(ctx, r.makeKey(bucket), key, value).Err()
}

func (r *RedisDriver) Del(ctx context.Context, bucket, key string) error {
	return r.client.HDel(ctx, r.makeKey(bucket), key).Err()
}

func (r *RedisDriver) GetAll(ctx context.Context, bucket string) (map[string]string, error) {
	return r.client.HGetAll(ctx, r.makeKey(bucket)).Result()
}

func (r *RedisDriver) makeKey(bucket string) string {
	return util.MakeStrKey(r.scene, bucket)
}
