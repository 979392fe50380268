package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// CachedVerification is the last known verify outcome for one (tenant, product) pair.
type CachedVerification struct {
	Status string
}

// Generation is the invalidation state observed by Get. An entry may only be
// written back under the generation it was resolved against, so a Verify
// racing a revoke cannot re-cache the outcome the revoke just dropped.
type Generation struct {
	Pair    int64
	Product int64
}

// VerifyCache caches Verify outcomes. Every grant, revoke, regenerate and product
// toggle must invalidate, so a stale "granted" never outlives the change.
type VerifyCache interface {
	Get(ctx context.Context, tenantID, productID string) (*CachedVerification, Generation, error)
	// Set stores v only when gen is still current; false means an
	// invalidation happened since Get and nothing was written.
	Set(ctx context.Context, tenantID, productID string, v CachedVerification, gen Generation) (bool, error)
	Invalidate(ctx context.Context, tenantID, productID string) error
	InvalidateProduct(ctx context.Context, productID string) error
}

const (
	verifyKeyPrefix = "entitlement:verify:"
	verifyGenPrefix = "entitlement:verify-gen:"
	fieldStatus     = "status"
	verifyTTLJitter = 10 * time.Second
	generationTTL   = 24 * time.Hour
)

// KEYS: entry, pair generation, product generation.
// ARGV: pair generation, product generation, status, ttl in milliseconds.
var setIfCurrentScript = redis.NewScript(`
if tonumber(redis.call('GET', KEYS[2]) or '0') ~= tonumber(ARGV[1]) then
	return 0
end
if tonumber(redis.call('GET', KEYS[3]) or '0') ~= tonumber(ARGV[2]) then
	return 0
end
redis.call('HSET', KEYS[1], 'status', ARGV[3])
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return 1
`)

type RedisVerifyCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisVerifyCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisVerifyCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisVerifyCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisVerifyCache) key(tenantID, productID string) string {
	return fmt.Sprintf("%s%s:%s", verifyKeyPrefix, tenantID, productID)
}

func (c *RedisVerifyCache) pairGenKey(tenantID, productID string) string {
	return fmt.Sprintf("%spair:%s:%s", verifyGenPrefix, tenantID, productID)
}

func (c *RedisVerifyCache) productGenKey(productID string) string {
	return fmt.Sprintf("%sproduct:%s", verifyGenPrefix, productID)
}

// Get returns a nil entry on a cache miss. The generation is valid either way.
func (c *RedisVerifyCache) Get(ctx context.Context, tenantID, productID string) (*CachedVerification, Generation, error) {
	var (
		statusCmd  *redis.StringCmd
		pairCmd    *redis.StringCmd
		productCmd *redis.StringCmd
	)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		statusCmd = pipe.HGet(ctx, c.key(tenantID, productID), fieldStatus)
		pairCmd = pipe.Get(ctx, c.pairGenKey(tenantID, productID))
		productCmd = pipe.Get(ctx, c.productGenKey(productID))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, Generation{}, fmt.Errorf("failed to get verification from cache: %w", err)
	}

	gen := Generation{}
	if gen.Pair, err = generationOf(pairCmd); err != nil {
		return nil, Generation{}, err
	}
	if gen.Product, err = generationOf(productCmd); err != nil {
		return nil, Generation{}, err
	}

	status, err := statusCmd.Result()
	if errors.Is(err, redis.Nil) {
		return nil, gen, nil
	}
	if err != nil {
		return nil, Generation{}, fmt.Errorf("failed to get verification from cache: %w", err)
	}
	return &CachedVerification{Status: status}, gen, nil
}

func generationOf(cmd *redis.StringCmd) (int64, error) {
	n, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read verification generation: %w", err)
	}
	return n, nil
}

func (c *RedisVerifyCache) Set(ctx context.Context, tenantID, productID string, v CachedVerification, gen Generation) (bool, error) {
	keys := []string{c.key(tenantID, productID), c.pairGenKey(tenantID, productID), c.productGenKey(productID)}
	stored, err := setIfCurrentScript.Run(ctx, c.client, keys,
		gen.Pair, gen.Product, v.Status, c.ttlWithJitter().Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to set verification in cache: %w", err)
	}
	if stored == 0 {
		c.logger.Debugw("verification not cached, invalidated meanwhile", "tenant_id", tenantID, "product_id", productID)
		return false, nil
	}

	c.logger.Debugw("verification cached", "tenant_id", tenantID, "product_id", productID, "status", v.Status)
	return true, nil
}

// Invalidate bumps the pair generation before dropping the entry, so any
// in-flight Set resolved against the old state is rejected.
func (c *RedisVerifyCache) Invalidate(ctx context.Context, tenantID, productID string) error {
	genKey := c.pairGenKey(tenantID, productID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, c.key(tenantID, productID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate verification cache: %w", err)
	}
	return nil
}

// InvalidateProduct drops every tenant's entry for productID.
func (c *RedisVerifyCache) InvalidateProduct(ctx context.Context, productID string) error {
	genKey := c.productGenKey(productID)
	if _, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to bump product verification generation: %w", err)
	}

	pattern := fmt.Sprintf("%s*:%s", verifyKeyPrefix, productID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan verification keys: %w", err)
	}

	c.logger.Debugw("verification cache invalidated for product", "product_id", productID)
	return nil
}

// ttlWithJitter spreads expiry so entries written together do not expire together.
func (c *RedisVerifyCache) ttlWithJitter() time.Duration {
	return c.ttl + time.Duration(rand.Int64N(int64(verifyTTLJitter)))
}
