package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"synapseBack/internal/models"
)

var (
	ErrOrderNotFound = models.ErrOrderNotFound
)

// OrderRepository is the append-only purchase ledger. Orders are only
// ever inserted; the unique key on razorpay_payment_id is the safety
// net against a double-submitted verification writing two rows.
type OrderRepository struct {
	DB *sql.DB
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order models.MerchOrder) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO merch_orders (user_id, total, status, payment_method,
			razorpay_order_id, razorpay_payment_id, order_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		order.UserID, order.Total, order.Status, order.PaymentMethod,
		order.RazorpayOrderID, order.RazorpayPaymentID, order.OrderDate,
	)
	if err != nil {
		tx.Rollback()
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return 0, models.ErrDuplicatePayment
		}
		return 0, err
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO merch_order_items (order_id, product_id, name, size, quantity, unit_price)
			VALUES (?, ?, ?, ?, ?, ?)
		`, orderID, item.ProductID, item.Name, item.Size, item.Quantity, item.UnitPrice)
		if err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return int(orderID), nil
}

func (r *OrderRepository) GetOrderIDByPaymentID(ctx context.Context, paymentID string) (int, error) {
	var id int
	err := r.DB.QueryRowContext(ctx,
		`SELECT id FROM merch_orders WHERE razorpay_payment_id = ?`, paymentID,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrOrderNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (models.MerchOrder, error) {
	var order models.MerchOrder

	query := `
		SELECT id, user_id, total, status, payment_method,
			razorpay_order_id, razorpay_payment_id, order_date
		FROM merch_orders
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.Total, &order.Status, &order.PaymentMethod,
		&order.RazorpayOrderID, &order.RazorpayPaymentID, &order.OrderDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.MerchOrder{}, ErrOrderNotFound
		}
		return models.MerchOrder{}, err
	}

	itemRows, err := r.DB.QueryContext(ctx, `
		SELECT product_id, name, size, quantity, unit_price
		FROM merch_order_items
		WHERE order_id = ?
	`, order.ID)
	if err != nil {
		return models.MerchOrder{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.OrderItem
		if err := itemRows.Scan(&item.ProductID, &item.Name, &item.Size, &item.Quantity, &item.UnitPrice); err != nil {
			return models.MerchOrder{}, err
		}
		order.Items = append(order.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return models.MerchOrder{}, err
	}

	return order, nil
}

func (r *OrderRepository) GetOrders(ctx context.Context) ([]models.MerchOrder, error) {
	query := `
		SELECT id, user_id, total, status, payment_method,
			razorpay_order_id, razorpay_payment_id, order_date
		FROM merch_orders
		ORDER BY order_date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.MerchOrder
	for rows.Next() {
		var o models.MerchOrder
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Total, &o.Status, &o.PaymentMethod,
			&o.RazorpayOrderID, &o.RazorpayPaymentID, &o.OrderDate,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
