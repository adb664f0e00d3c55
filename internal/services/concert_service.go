package services

import (
	"context"

	"synapseBack/internal/models"
	"synapseBack/internal/repositories"
)

type ConcertService struct {
	ConcertRepo *repositories.ConcertRepository
}

func (s *ConcertService) CreateConcert(ctx context.Context, concert models.Concert) (models.Concert, error) {
	return s.ConcertRepo.CreateConcert(ctx, concert)
}

func (s *ConcertService) GetConcertByID(ctx context.Context, id int) (models.Concert, error) {
	return s.ConcertRepo.GetConcertByID(ctx, id)
}

func (s *ConcertService) GetConcerts(ctx context.Context) ([]models.Concert, error) {
	return s.ConcertRepo.GetConcerts(ctx)
}

func (s *ConcertService) UpdateConcert(ctx context.Context, concert models.Concert) (models.Concert, error) {
	return s.ConcertRepo.UpdateConcert(ctx, concert)
}

func (s *ConcertService) DeleteConcert(ctx context.Context, id int) error {
	return s.ConcertRepo.DeleteConcert(ctx, id)
}

type ArtistService struct {
	ArtistRepo *repositories.ArtistRepository
}

func (s *ArtistService) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	return s.ArtistRepo.CreateArtist(ctx, artist)
}

func (s *ArtistService) GetArtistByID(ctx context.Context, id int) (models.Artist, error) {
	return s.ArtistRepo.GetArtistByID(ctx, id)
}

func (s *ArtistService) GetArtists(ctx context.Context) ([]models.Artist, error) {
	return s.ArtistRepo.GetArtists(ctx)
}

func (s *ArtistService) UpdateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	return s.ArtistRepo.UpdateArtist(ctx, artist)
}

func (s *ArtistService) DeleteArtist(ctx context.Context, id int) error {
	return s.ArtistRepo.DeleteArtist(ctx, id)
}
