package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"synapseBack/internal/models"
	"synapseBack/internal/repositories"
)

const productCacheTTL = 5 * time.Minute

// ProductService fronts the merch catalog. Reads go through Redis when
// a client is configured; any cache error falls back to MySQL so the
// cache can never take the catalog down.
type ProductService struct {
	ProductRepo *repositories.ProductRepository
	Cache       *redis.Client
}

func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return s.ProductRepo.CreateProduct(ctx, product)
}

func (s *ProductService) GetProductByID(ctx context.Context, id int) (models.Product, error) {
	if cached, ok := s.cacheGet(ctx, id); ok {
		return cached, nil
	}

	product, err := s.ProductRepo.GetProductByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	s.cacheSet(ctx, product)

	return product, nil
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.ProductRepo.GetProducts(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	updated, err := s.ProductRepo.UpdateProduct(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	s.cacheDelete(ctx, product.ID)

	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.ProductRepo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.cacheDelete(ctx, id)

	return nil
}

// ResolvePrice returns the authoritative name and unit price of an
// available product. A listed item without a price is a data integrity
// problem, reported as ErrProductPriceMissing.
func (s *ProductService) ResolvePrice(ctx context.Context, id int) (string, float64, error) {
	product, err := s.ProductRepo.GetAvailableProductByID(ctx, id)
	if err != nil {
		return "", 0, err
	}
	if product.Price == nil {
		return "", 0, models.ErrProductPriceMissing
	}

	return product.Name, *product.Price, nil
}

func (s *ProductService) cacheGet(ctx context.Context, id int) (models.Product, bool) {
	if s.Cache == nil {
		return models.Product{}, false
	}
	data, err := s.Cache.Get(ctx, productCacheKey(id)).Bytes()
	if err != nil {
		return models.Product{}, false
	}
	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return models.Product{}, false
	}
	return product, true
}

func (s *ProductService) cacheSet(ctx context.Context, product models.Product) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, productCacheKey(product.ID), data, productCacheTTL)
}

func (s *ProductService) cacheDelete(ctx context.Context, id int) {
	if s.Cache == nil {
		return
	}
	s.Cache.Del(ctx, productCacheKey(id))
}

func productCacheKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}
