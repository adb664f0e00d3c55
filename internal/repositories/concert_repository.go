package repositories

import (
	"context"
	"database/sql"
	"time"

	"synapseBack/internal/models"
)

var (
	ErrConcertNotFound = models.ErrConcertNotFound
)

type ConcertRepository struct {
	DB *sql.DB
}

func (r *ConcertRepository) CreateConcert(ctx context.Context, concert models.Concert) (models.Concert, error) {
	concert.CreatedAt = time.Now()

	query := `
		INSERT INTO concerts (name, artist_id, day, venue, start_time, poster_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		concert.Name, concert.ArtistID, concert.Day, concert.Venue,
		concert.StartTime, concert.PosterURL, concert.CreatedAt,
	)
	if err != nil {
		return models.Concert{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Concert{}, err
	}
	concert.ID = int(id)

	return concert, nil
}

func (r *ConcertRepository) GetConcertByID(ctx context.Context, id int) (models.Concert, error) {
	var concert models.Concert

	query := `
		SELECT id, name, artist_id, day, venue, start_time, poster_url, created_at, updated_at
		FROM concerts
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&concert.ID, &concert.Name, &concert.ArtistID, &concert.Day, &concert.Venue,
		&concert.StartTime, &concert.PosterURL, &concert.CreatedAt, &concert.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Concert{}, ErrConcertNotFound
		}
		return models.Concert{}, err
	}

	return concert, nil
}

func (r *ConcertRepository) GetConcerts(ctx context.Context) ([]models.Concert, error) {
	query := `
		SELECT id, name, artist_id, day, venue, start_time, poster_url, created_at, updated_at
		FROM concerts
		ORDER BY day, start_time
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var concerts []models.Concert
	for rows.Next() {
		var c models.Concert
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ArtistID, &c.Day, &c.Venue,
			&c.StartTime, &c.PosterURL, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		concerts = append(concerts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return concerts, nil
}

func (r *ConcertRepository) UpdateConcert(ctx context.Context, concert models.Concert) (models.Concert, error) {
	query := `
		UPDATE concerts
		SET name = ?, artist_id = ?, day = ?, venue = ?, start_time = ?, poster_url = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		concert.Name, concert.ArtistID, concert.Day, concert.Venue,
		concert.StartTime, concert.PosterURL, time.Now(), concert.ID,
	)
	if err != nil {
		return models.Concert{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Concert{}, err
	}
	if rowsAffected == 0 {
		return models.Concert{}, ErrConcertNotFound
	}

	return r.GetConcertByID(ctx, concert.ID)
}

func (r *ConcertRepository) DeleteConcert(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM concerts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrConcertNotFound
	}
	return nil
}
