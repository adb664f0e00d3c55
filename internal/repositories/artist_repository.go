package repositories

import (
	"context"
	"database/sql"
	"time"

	"synapseBack/internal/models"
)

var (
	ErrArtistNotFound = models.ErrArtistNotFound
)

type ArtistRepository struct {
	DB *sql.DB
}

func (r *ArtistRepository) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	artist.CreatedAt = time.Now()

	query := `
		INSERT INTO artists (name, genre, bio, photo_url, instagram, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		artist.Name, artist.Genre, artist.Bio, artist.PhotoURL, artist.Instagram, artist.CreatedAt,
	)
	if err != nil {
		return models.Artist{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Artist{}, err
	}
	artist.ID = int(id)

	return artist, nil
}

func (r *ArtistRepository) GetArtistByID(ctx context.Context, id int) (models.Artist, error) {
	var artist models.Artist

	query := `
		SELECT id, name, genre, bio, photo_url, instagram, created_at, updated_at
		FROM artists
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&artist.ID, &artist.Name, &artist.Genre, &artist.Bio,
		&artist.PhotoURL, &artist.Instagram, &artist.CreatedAt, &artist.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Artist{}, ErrArtistNotFound
		}
		return models.Artist{}, err
	}

	return artist, nil
}

func (r *ArtistRepository) GetArtists(ctx context.Context) ([]models.Artist, error) {
	query := `
		SELECT id, name, genre, bio, photo_url, instagram, created_at, updated_at
		FROM artists
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var a models.Artist
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Genre, &a.Bio,
			&a.PhotoURL, &a.Instagram, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return artists, nil
}

func (r *ArtistRepository) UpdateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	query := `
		UPDATE artists
		SET name = ?, genre = ?, bio = ?, photo_url = ?, instagram = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		artist.Name, artist.Genre, artist.Bio, artist.PhotoURL, artist.Instagram, time.Now(), artist.ID,
	)
	if err != nil {
		return models.Artist{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Artist{}, err
	}
	if rowsAffected == 0 {
		return models.Artist{}, ErrArtistNotFound
	}

	return r.GetArtistByID(ctx, artist.ID)
}

func (r *ArtistRepository) DeleteArtist(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrArtistNotFound
	}
	return nil
}
