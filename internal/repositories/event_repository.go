package repositories

import (
	"context"
	"database/sql"
	"time"

	"synapseBack/internal/models"
)

var (
	ErrEventNotFound = models.ErrEventNotFound
)

type EventRepository struct {
	DB *sql.DB
}

func (r *EventRepository) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	event.CreatedAt = time.Now()

	query := `
		INSERT INTO events (title, slug, description, category_id, venue, start_time, end_time,
			rules, prize_pool, poster_url, registration_open, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		event.Title, event.Slug, event.Description, event.CategoryID, event.Venue,
		event.StartTime, event.EndTime, event.Rules, event.PrizePool, event.PosterURL,
		event.RegistrationOpen, event.CreatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Event{}, err
	}
	event.ID = int(id)

	return event, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id int) (models.Event, error) {
	var event models.Event

	query := `
		SELECT id, title, slug, description, category_id, venue, start_time, end_time,
			rules, prize_pool, poster_url, registration_open, created_at, updated_at
		FROM events
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.Title, &event.Slug, &event.Description, &event.CategoryID,
		&event.Venue, &event.StartTime, &event.EndTime, &event.Rules, &event.PrizePool,
		&event.PosterURL, &event.RegistrationOpen, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, err
	}

	return event, nil
}

func (r *EventRepository) GetEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, title, slug, description, category_id, venue, start_time, end_time,
			rules, prize_pool, poster_url, registration_open, created_at, updated_at
		FROM events
		ORDER BY start_time
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Slug, &e.Description, &e.CategoryID,
			&e.Venue, &e.StartTime, &e.EndTime, &e.Rules, &e.PrizePool,
			&e.PosterURL, &e.RegistrationOpen, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) GetEventsByCategory(ctx context.Context, categoryID int) ([]models.Event, error) {
	query := `
		SELECT id, title, slug, description, category_id, venue, start_time, end_time,
			rules, prize_pool, poster_url, registration_open, created_at, updated_at
		FROM events
		WHERE category_id = ?
		ORDER BY start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Slug, &e.Description, &e.CategoryID,
			&e.Venue, &e.StartTime, &e.EndTime, &e.Rules, &e.PrizePool,
			&e.PosterURL, &e.RegistrationOpen, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	query := `
		UPDATE events
		SET title = ?, slug = ?, description = ?, category_id = ?, venue = ?, start_time = ?,
			end_time = ?, rules = ?, prize_pool = ?, poster_url = ?, registration_open = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		event.Title, event.Slug, event.Description, event.CategoryID, event.Venue,
		event.StartTime, event.EndTime, event.Rules, event.PrizePool, event.PosterURL,
		event.RegistrationOpen, time.Now(), event.ID,
	)
	if err != nil {
		return models.Event{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Event{}, err
	}
	if rowsAffected == 0 {
		return models.Event{}, ErrEventNotFound
	}

	return r.GetEventByID(ctx, event.ID)
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
