package repositories

import (
	"context"
	"database/sql"
	"time"

	"synapseBack/internal/models"
)

var (
	ErrAccommodationNotFound = models.ErrAccommodationNotFound
)

type AccommodationRepository struct {
	DB *sql.DB
}

func (r *AccommodationRepository) CreateAccommodation(ctx context.Context, acc models.Accommodation) (models.Accommodation, error) {
	acc.CreatedAt = time.Now()

	query := `
		INSERT INTO accommodations (name, description, price_per_day, capacity, is_available, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		acc.Name, acc.Description, acc.PricePerDay, acc.Capacity, acc.IsAvailable, acc.CreatedAt,
	)
	if err != nil {
		return models.Accommodation{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Accommodation{}, err
	}
	acc.ID = int(id)

	return acc, nil
}

func (r *AccommodationRepository) GetAccommodationByID(ctx context.Context, id int) (models.Accommodation, error) {
	var acc models.Accommodation

	query := `
		SELECT id, name, description, price_per_day, capacity, is_available, created_at
		FROM accommodations
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&acc.ID, &acc.Name, &acc.Description, &acc.PricePerDay,
		&acc.Capacity, &acc.IsAvailable, &acc.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Accommodation{}, ErrAccommodationNotFound
		}
		return models.Accommodation{}, err
	}

	return acc, nil
}

func (r *AccommodationRepository) GetAccommodations(ctx context.Context) ([]models.Accommodation, error) {
	query := `
		SELECT id, name, description, price_per_day, capacity, is_available, created_at
		FROM accommodations
		ORDER BY price_per_day
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accs []models.Accommodation
	for rows.Next() {
		var a models.Accommodation
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Description, &a.PricePerDay,
			&a.Capacity, &a.IsAvailable, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		accs = append(accs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accs, nil
}

func (r *AccommodationRepository) UpdateAccommodation(ctx context.Context, acc models.Accommodation) (models.Accommodation, error) {
	query := `
		UPDATE accommodations
		SET name = ?, description = ?, price_per_day = ?, capacity = ?, is_available = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		acc.Name, acc.Description, acc.PricePerDay, acc.Capacity, acc.IsAvailable, acc.ID,
	)
	if err != nil {
		return models.Accommodation{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Accommodation{}, err
	}
	if rowsAffected == 0 {
		return models.Accommodation{}, ErrAccommodationNotFound
	}

	return acc, nil
}

func (r *AccommodationRepository) DeleteAccommodation(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM accommodations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAccommodationNotFound
	}
	return nil
}
