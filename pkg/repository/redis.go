package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/models"
)

const reviewsCacheKey = "reviews:all"

// RedisRepository caches the storefront's read-mostly catalog data.
// Products and reviews only change through back-office imports, so a
// short TTL is all the invalidation needed.
type RedisRepository struct {
	client *redis.Client
	config *config.RedisConfig
}

func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	return &RedisRepository{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		config: cfg,
	}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisRepository) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (r *RedisRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func productsCacheKey(limit int) string {
	return fmt.Sprintf("products:limit:%d", limit)
}

func (r *RedisRepository) CacheProducts(ctx context.Context, limit int, products []models.Product, ttl time.Duration) error {
	return r.SetJSON(ctx, productsCacheKey(limit), products, ttl)
}

func (r *RedisRepository) GetCachedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.GetJSON(ctx, productsCacheKey(limit), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RedisRepository) CacheReviews(ctx context.Context, reviews []models.Review, ttl time.Duration) error {
	return r.SetJSON(ctx, reviewsCacheKey, reviews, ttl)
}

func (r *RedisRepository) GetCachedReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.GetJSON(ctx, reviewsCacheKey, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
