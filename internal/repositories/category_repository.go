package repositories

import (
	"context"
	"database/sql"
	"time"

	"synapseBack/internal/models"
)

var (
	ErrCategoryNotFound = models.ErrCategoryNotFound
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	category.CreatedAt = time.Now()

	query := `
		INSERT INTO categories (name, icon, created_at)
		VALUES (?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, category.Name, category.Icon, category.CreatedAt)
	if err != nil {
		return models.Category{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Category{}, err
	}
	category.ID = int(id)

	return category, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	var category models.Category

	query := `
		SELECT id, name, icon, created_at, updated_at
		FROM categories
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.Icon, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Category{}, ErrCategoryNotFound
		}
		return models.Category{}, err
	}

	return category, nil
}

func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, icon, created_at, updated_at
		FROM categories
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query := `
		UPDATE categories
		SET name = ?, icon = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, category.Name, category.Icon, time.Now(), category.ID)
	if err != nil {
		return models.Category{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Category{}, err
	}
	if rowsAffected == 0 {
		return models.Category{}, ErrCategoryNotFound
	}

	return r.GetCategoryByID(ctx, category.ID)
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
