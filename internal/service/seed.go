package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

var defaultCatalog = []entity.Product{
	{
		Name:        "Durban Poison",
		Description: "Pure landrace sativa with a sweet anise aroma.",
		Price:       decimal.RequireFromString("120.00"),
		Category:    "flower",
		Image:       "/images/durban-poison.jpg",
		THC:         "18%",
		Effects:     []string{"energetic", "uplifted", "creative"},
		Featured:    true,
		InStock:     true,
		Stock:       25,
	},
	{
		Name:        "Swazi Gold",
		Description: "Classic regional sativa, earthy with citrus notes.",
		Price:       decimal.RequireFromString("100.00"),
		Category:    "flower",
		Image:       "/images/swazi-gold.jpg",
		THC:         "16%",
		Effects:     []string{"happy", "focused"},
		InStock:     true,
		Stock:       30,
	},
	{
		Name:        "Cheese Hybrid",
		Description: "Pungent indica-leaning hybrid for evening use.",
		Price:       decimal.RequireFromString("140.00"),
		Category:    "flower",
		Image:       "/images/cheese-hybrid.jpg",
		THC:         "20%",
		Effects:     []string{"relaxed", "sleepy"},
		InStock:     true,
		Stock:       15,
	},
	{
		Name:        "CBD Balm 250mg",
		Description: "Topical balm for localised relief.",
		Price:       decimal.RequireFromString("180.00"),
		Category:    "topicals",
		Image:       "/images/cbd-balm.jpg",
		InStock:     true,
		Stock:       40,
	},
}

// RefreshProducts wipes the catalog and reloads the default product set.
func (s *CatalogService) RefreshProducts(ctx context.Context) error {
	if err := s.products.Clear(ctx); err != nil {
		logger.Error().Err(err).Msg("Error clearing products")
		return err
	}

	for _, product := range defaultCatalog {
		product.ID = uuid.NewString()
		product.CreatedAt = time.Now()
		if err := s.products.Create(ctx, &product); err != nil {
			logger.Error().Err(err).Msgf("Error seeding product %s", product.Name)
			return err
		}
	}
	return nil
}
