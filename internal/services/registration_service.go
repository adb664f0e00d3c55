package services

import (
	"context"

	"synapseBack/internal/models"
	"synapseBack/internal/repositories"
)

type RegistrationService struct {
	RegistrationRepo *repositories.RegistrationRepository
	EventRepo        *repositories.EventRepository
}

func (s *RegistrationService) CreateRegistration(ctx context.Context, reg models.Registration) (models.Registration, error) {
	event, err := s.EventRepo.GetEventByID(ctx, reg.EventID)
	if err != nil {
		return models.Registration{}, err
	}
	if !event.RegistrationOpen {
		return models.Registration{}, models.ErrRegistrationClosed
	}

	return s.RegistrationRepo.CreateRegistration(ctx, reg)
}

func (s *RegistrationService) GetRegistrations(ctx context.Context) ([]models.Registration, error) {
	return s.RegistrationRepo.GetRegistrations(ctx)
}

func (s *RegistrationService) GetRegistrationsByEvent(ctx context.Context, eventID int) ([]models.Registration, error) {
	return s.RegistrationRepo.GetRegistrationsByEvent(ctx, eventID)
}

func (s *RegistrationService) GetRegistrationsByUser(ctx context.Context, userID int) ([]models.Registration, error) {
	return s.RegistrationRepo.GetRegistrationsByUser(ctx, userID)
}

func (s *RegistrationService) UpdateRegistrationStatus(ctx context.Context, id int, status string) error {
	return s.RegistrationRepo.UpdateRegistrationStatus(ctx, id, status)
}

func (s *RegistrationService) DeleteRegistration(ctx context.Context, id int) error {
	return s.RegistrationRepo.DeleteRegistration(ctx, id)
}
