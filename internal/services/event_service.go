package services

import (
	"context"

	"synapseBack/internal/models"
	"synapseBack/internal/repositories"
)

type EventService struct {
	EventRepo *repositories.EventRepository
}

func (s *EventService) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	return s.EventRepo.CreateEvent(ctx, event)
}

func (s *EventService) GetEventByID(ctx context.Context, id int) (models.Event, error) {
	return s.EventRepo.GetEventByID(ctx, id)
}

func (s *EventService) GetEvents(ctx context.Context) ([]models.Event, error) {
	return s.EventRepo.GetEvents(ctx)
}

func (s *EventService) GetEventsByCategory(ctx context.Context, categoryID int) ([]models.Event, error) {
	return s.EventRepo.GetEventsByCategory(ctx, categoryID)
}

func (s *EventService) UpdateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	return s.EventRepo.UpdateEvent(ctx, event)
}

func (s *EventService) DeleteEvent(ctx context.Context, id int) error {
	return s.EventRepo.DeleteEvent(ctx, id)
}
