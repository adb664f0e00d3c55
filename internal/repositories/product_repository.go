package repositories

import (
	"context"
	"database/sql"
	"time"

	"synapseBack/internal/models"
)

var (
	ErrProductNotFound = models.ErrProductNotFound
)

type ProductRepository struct {
	DB *sql.DB
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	product.CreatedAt = time.Now()

	query := `
		INSERT INTO products (name, description, price, image_url, sizes, is_available, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.Sizes, product.IsAvailable, product.CreatedAt,
	)
	if err != nil {
		return models.Product{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Product{}, err
	}
	product.ID = int(id)

	return product, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (models.Product, error) {
	var product models.Product

	query := `
		SELECT id, name, description, price, image_url, sizes, is_available, created_at, updated_at
		FROM products
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.ImageURL,
		&product.Sizes, &product.IsAvailable, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}

	return product, nil
}

// GetAvailableProductByID restricts the lookup to items that are still
// on sale. The payment flow must never price a delisted item.
func (r *ProductRepository) GetAvailableProductByID(ctx context.Context, id int) (models.Product, error) {
	var product models.Product

	query := `
		SELECT id, name, description, price, image_url, sizes, is_available, created_at, updated_at
		FROM products
		WHERE id = ? AND is_available = 1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.ImageURL,
		&product.Sizes, &product.IsAvailable, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}

	return product, nil
}

func (r *ProductRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, sizes, is_available, created_at, updated_at
		FROM products
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
			&p.Sizes, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	query := `
		UPDATE products
		SET name = ?, description = ?, price = ?, image_url = ?, sizes = ?, is_available = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.Sizes, product.IsAvailable, time.Now(), product.ID,
	)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Product{}, err
	}
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}

	return r.GetProductByID(ctx, product.ID)
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
