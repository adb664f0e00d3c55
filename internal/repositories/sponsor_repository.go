package repositories

import (
	"context"
	"database/sql"
	"time"

	"synapseBack/internal/models"
)

var (
	ErrSponsorNotFound = models.ErrSponsorNotFound
)

type SponsorRepository struct {
	DB *sql.DB
}

func (r *SponsorRepository) CreateSponsor(ctx context.Context, sponsor models.Sponsor) (models.Sponsor, error) {
	sponsor.CreatedAt = time.Now()

	query := `
		INSERT INTO sponsors (name, tier, logo_url, website, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		sponsor.Name, sponsor.Tier, sponsor.LogoURL, sponsor.Website, sponsor.CreatedAt,
	)
	if err != nil {
		return models.Sponsor{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Sponsor{}, err
	}
	sponsor.ID = int(id)

	return sponsor, nil
}

func (r *SponsorRepository) GetSponsors(ctx context.Context) ([]models.Sponsor, error) {
	query := `
		SELECT id, name, tier, logo_url, website, created_at
		FROM sponsors
		ORDER BY tier, name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sponsors []models.Sponsor
	for rows.Next() {
		var s models.Sponsor
		if err := rows.Scan(&s.ID, &s.Name, &s.Tier, &s.LogoURL, &s.Website, &s.CreatedAt); err != nil {
			return nil, err
		}
		sponsors = append(sponsors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sponsors, nil
}

func (r *SponsorRepository) UpdateSponsor(ctx context.Context, sponsor models.Sponsor) (models.Sponsor, error) {
	query := `
		UPDATE sponsors
		SET name = ?, tier = ?, logo_url = ?, website = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		sponsor.Name, sponsor.Tier, sponsor.LogoURL, sponsor.Website, sponsor.ID,
	)
	if err != nil {
		return models.Sponsor{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Sponsor{}, err
	}
	if rowsAffected == 0 {
		return models.Sponsor{}, ErrSponsorNotFound
	}

	return sponsor, nil
}

func (r *SponsorRepository) DeleteSponsor(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sponsors WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSponsorNotFound
	}
	return nil
}
