package services

import (
	"context"

	"synapseBack/internal/models"
	"synapseBack/internal/repositories"
)

type SponsorService struct {
	SponsorRepo *repositories.SponsorRepository
}

func (s *SponsorService) CreateSponsor(ctx context.Context, sponsor models.Sponsor) (models.Sponsor, error) {
	return s.SponsorRepo.CreateSponsor(ctx, sponsor)
}

func (s *SponsorService) GetSponsors(ctx context.Context) ([]models.Sponsor, error) {
	return s.SponsorRepo.GetSponsors(ctx)
}

func (s *SponsorService) UpdateSponsor(ctx context.Context, sponsor models.Sponsor) (models.Sponsor, error) {
	return s.SponsorRepo.UpdateSponsor(ctx, sponsor)
}

func (s *SponsorService) DeleteSponsor(ctx context.Context, id int) error {
	return s.SponsorRepo.DeleteSponsor(ctx, id)
}

type AccommodationService struct {
	AccommodationRepo *repositories.AccommodationRepository
}

func (s *AccommodationService) CreateAccommodation(ctx context.Context, acc models.Accommodation) (models.Accommodation, error) {
	return s.AccommodationRepo.CreateAccommodation(ctx, acc)
}

func (s *AccommodationService) GetAccommodationByID(ctx context.Context, id int) (models.Accommodation, error) {
	return s.AccommodationRepo.GetAccommodationByID(ctx, id)
}

func (s *AccommodationService) GetAccommodations(ctx context.Context) ([]models.Accommodation, error) {
	return s.AccommodationRepo.GetAccommodations(ctx)
}

func (s *AccommodationService) UpdateAccommodation(ctx context.Context, acc models.Accommodation) (models.Accommodation, error) {
	return s.AccommodationRepo.UpdateAccommodation(ctx, acc)
}

func (s *AccommodationService) DeleteAccommodation(ctx context.Context, id int) error {
	return s.AccommodationRepo.DeleteAccommodation(ctx, id)
}
