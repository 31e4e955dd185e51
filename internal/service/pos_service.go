package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

// POSService records point-of-sale transactions and keeps the catalog stock
// in step, best effort. The sale record is never rolled back for a failed
// stock update.
type POSService struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	events   *EventPublisher
	validate *validator.Validate
}

func NewPOSService(sales repository.SaleRepository, products repository.ProductRepository, events *EventPublisher) *POSService {
	return &POSService{
		sales:    sales,
		products: products,
		events:   events,
		validate: validator.New(),
	}
}

// RecordSale persists the sale snapshot, then decrements stock per item
// independently. A missing product or failed update is logged and skipped;
// stock never goes below zero.
func (s *POSService) RecordSale(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if err := s.validate.Struct(sale); err != nil {
		return nil, err
	}

	sale.ID = uuid.NewString()
	sale.Timestamp = time.Now()

	if err := s.sales.Create(ctx, sale); err != nil {
		logger.Error().Err(err).Msg("Error recording sale")
		return nil, err
	}

	for _, item := range sale.Items {
		if err := s.decrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Error().Err(err).Msgf("Failed to update stock for product %s", item.ProductID)
		}
	}

	if err := s.events.Publish(ctx, "sale-recorded", sale.ID, sale); err != nil {
		logger.Error().Err(err).Msgf("Error publishing sale event for %s", sale.ID)
	}

	return sale, nil
}

func (s *POSService) decrementStock(ctx context.Context, productID string, quantity int) error {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	newStock := product.Stock - quantity
	if newStock < 0 {
		newStock = 0
	}

	logger.Info().Msgf("Updating product %s: stock %d -> %d (sold %d)", product.Name, product.Stock, newStock, quantity)
	product.Stock = newStock
	return s.products.Update(ctx, product)
}

func (s *POSService) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	return s.sales.GetAll(ctx)
}

// Stats summarises today's sales for the POS dashboard.
func (s *POSService) Stats(ctx context.Context) (*entity.SalesStats, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	sales, err := s.sales.GetRange(ctx, today, tomorrow)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching today's sales")
		return nil, err
	}

	stats := &entity.SalesStats{
		TodayTotal:  decimal.Zero,
		TodayCount:  len(sales),
		AverageSale: decimal.Zero,
	}
	for _, sale := range sales {
		stats.TodayTotal = stats.TodayTotal.Add(sale.Total)
	}
	if stats.TodayCount > 0 {
		stats.AverageSale = stats.TodayTotal.DivRound(decimal.NewFromInt(int64(stats.TodayCount)), 2)
	}
	return stats, nil
}
