package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"buildlanka/models"
	"buildlanka/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Browse loads the catalog snapshot for the requested variant and applies
// the filter selection in memory.
func (s *DefaultCatalogService) Browse(kind models.ListingKind, sel models.FilterSelection) ([]models.Listing, error) {
	listings, err := s.snapshot(kind)
	if err != nil {
		return nil, err
	}
	return Filter(listings, sel), nil
}

// GetListing returns a single listing by ID.
func (s *DefaultCatalogService) GetListing(id string) (*models.Listing, error) {
	listing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing %s: %w", id, err)
	}
	return listing, nil
}

// ListCategories returns the distinct category tags of one catalog variant.
func (s *DefaultCatalogService) ListCategories(kind models.ListingKind) ([]string, error) {
	listings, err := s.snapshot(kind)
	if err != nil {
		return nil, err
	}
	return Categories(listings), nil
}

// ListDistricts returns the fixed district facet values.
func (s *DefaultCatalogService) ListDistricts() []string {
	return models.Districts
}

// snapshot returns the full listing slice for a variant, served from the
// Redis cache when fresh and reloaded from the repository otherwise.
func (s *DefaultCatalogService) snapshot(kind models.ListingKind) ([]models.Listing, error) {
	cacheKey := utils.CatalogCachePrefix + string(kind)

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		data, err := s.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var listings []models.Listing
			if err := json.Unmarshal([]byte(data), &listings); err == nil {
				return listings, nil
			}
			// A corrupt cache entry falls through to a reload.
			utils.GetLogger().Warn("discarding unreadable catalog cache entry", zap.String("key", cacheKey))
		} else if err != redis.Nil {
			utils.GetLogger().Warn("catalog cache unavailable", zap.Error(err))
		}
	}

	listings, err := s.Repo.GetByKind(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", kind, err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(listings); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.Cache.Set(ctx, cacheKey, data, utils.CatalogCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache catalog snapshot", zap.Error(err))
			}
		}
	}
	return listings, nil
}
