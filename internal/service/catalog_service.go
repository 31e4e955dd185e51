package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

// CatalogService provides product CRUD with a read-through redis cache.
type CatalogService struct {
	products repository.ProductRepository
	rdb      *redis.Client
	validate *validator.Validate
}

func NewCatalogService(products repository.ProductRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		products: products,
		rdb:      rdb,
		validate: validator.New(),
	}
}

func productCacheKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching products")
		return nil, err
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, productCacheKey(id)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("Error reading product %s from cache", id)
		}
		if cached != "" {
			product := &entity.Product{}
			if err := json.Unmarshal([]byte(cached), product); err == nil {
				return product, nil
			}
		}
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheProduct(ctx, product)
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if err := s.validate.Struct(product); err != nil {
		return nil, err
	}

	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()
	if product.Stock > 0 {
		product.InStock = true
	}

	if err := s.products.Create(ctx, product); err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}
	return product, nil
}

// UpdateProduct persists the full edited product and refreshes the cache.
// Callers doing a partial edit merge the changes onto the stored product
// first (see ProductHandler.UpdateProduct).
func (s *CatalogService) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if _, err := s.products.GetByID(ctx, product.ID); err != nil {
		return nil, err
	}

	if err := s.products.Update(ctx, product); err != nil {
		logger.Error().Err(err).Msgf("Error updating product %s", product.ID)
		return nil, err
	}

	s.cacheProduct(ctx, product)
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting product %s", id)
		return err
	}
	s.dropCached(ctx, id)
	return nil
}

func (s *CatalogService) ClearProducts(ctx context.Context) error {
	return s.products.Clear(ctx)
}

func (s *CatalogService) cacheProduct(ctx context.Context, product *entity.Product) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	err = s.rdb.Set(ctx, productCacheKey(product.ID), data, time.Minute).Err()
	if err != nil {
		logger.Error().Err(err).Msgf("Error setting product %s in cache", product.ID)
	}
}

func (s *CatalogService) dropCached(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, productCacheKey(id)).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error deleting product %s from cache", id)
	}
}
