package services

import (
	"context"

	"synapseBack/internal/models"
	"synapseBack/internal/repositories"
)

type OrderService struct {
	OrderRepo *repositories.OrderRepository
}

func (s *OrderService) GetOrders(ctx context.Context) ([]models.MerchOrder, error) {
	return s.OrderRepo.GetOrders(ctx)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int) (models.MerchOrder, error) {
	return s.OrderRepo.GetOrderByID(ctx, id)
}
