package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

const featuredListingsKey = "featured_listings"

// FeaturedListingCache holds the rendered featured-listings page so the
// homepage browse does not hit mongo on every call.
type FeaturedListingCache struct {
	client *redis.Client
}

func NewFeaturedListingCache(client *redis.Client) *FeaturedListingCache {
	return &FeaturedListingCache{client: client}
}

func (c *FeaturedListingCache) Get(ctx context.Context) ([]entity.Listing, error) {
	data, err := c.client.Get(ctx, featuredListingsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get featured listings from redis: %w", err)
	}

	var listings []entity.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		_ = c.client.Del(ctx, featuredListingsKey).Err()
		return nil, fmt.Errorf("failed to unmarshal cached featured listings: %w", err)
	}
	return listings, nil
}

func (c *FeaturedListingCache) Set(ctx context.Context, listings []entity.Listing, ttl time.Duration) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to marshal featured listings: %w", err)
	}
	if err := c.client.Set(ctx, featuredListingsKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set featured listings to redis: %w", err)
	}
	return nil
}

func (c *FeaturedListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, featuredListingsKey).Err()
}
