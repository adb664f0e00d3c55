package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"synapseBack/internal/models"
)

var (
	ErrRegistrationNotFound = models.ErrRegistrationNotFound
)

type RegistrationRepository struct {
	DB *sql.DB
}

func (r *RegistrationRepository) CreateRegistration(ctx context.Context, reg models.Registration) (models.Registration, error) {
	reg.CreatedAt = time.Now()
	if reg.Status == "" {
		reg.Status = "pending"
	}

	query := `
		INSERT INTO registrations (user_id, event_id, status, created_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, reg.UserID, reg.EventID, reg.Status, reg.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.Registration{}, models.ErrDuplicateRegistration
		}
		return models.Registration{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Registration{}, err
	}
	reg.ID = int(id)

	return reg, nil
}

func (r *RegistrationRepository) GetRegistrations(ctx context.Context) ([]models.Registration, error) {
	query := `
		SELECT r.id, r.user_id, r.event_id, r.status, r.created_at, e.title, u.name
		FROM registrations r
		JOIN events e ON e.id = r.event_id
		JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at DESC
	`
	return r.queryRegistrations(ctx, query)
}

func (r *RegistrationRepository) GetRegistrationsByEvent(ctx context.Context, eventID int) ([]models.Registration, error) {
	query := `
		SELECT r.id, r.user_id, r.event_id, r.status, r.created_at, e.title, u.name
		FROM registrations r
		JOIN events e ON e.id = r.event_id
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = ?
		ORDER BY r.created_at DESC
	`
	return r.queryRegistrations(ctx, query, eventID)
}

func (r *RegistrationRepository) GetRegistrationsByUser(ctx context.Context, userID int) ([]models.Registration, error) {
	query := `
		SELECT r.id, r.user_id, r.event_id, r.status, r.created_at, e.title, u.name
		FROM registrations r
		JOIN events e ON e.id = r.event_id
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = ?
		ORDER BY r.created_at DESC
	`
	return r.queryRegistrations(ctx, query, userID)
}

func (r *RegistrationRepository) queryRegistrations(ctx context.Context, query string, args ...interface{}) ([]models.Registration, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &reg.CreatedAt,
			&reg.EventTitle, &reg.UserName,
		); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regs, nil
}

func (r *RegistrationRepository) UpdateRegistrationStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE registrations SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

func (r *RegistrationRepository) DeleteRegistration(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM registrations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}
