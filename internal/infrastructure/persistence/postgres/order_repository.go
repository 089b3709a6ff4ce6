package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/afeayo2/Econmmerce/internal/domain/order"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) EnsureSchema(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			email TEXT NOT NULL,
			address TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			items JSONB NOT NULL,
			total_amount NUMERIC NOT NULL,
			payment_method TEXT NOT NULL,
			payment_status TEXT NOT NULL,
			status TEXT NOT NULL,
			gateway_ref TEXT NOT NULL DEFAULT '',
			shipping JSONB,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders (customer_id);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}

// Save replaces the whole document; the upsert keeps create and update on
// the same code path.
func (r *OrderRepository) Save(ctx context.Context, o *domain.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	var shipping []byte
	if o.Shipping != nil {
		shipping, err = json.Marshal(o.Shipping)
		if err != nil {
			return fmt.Errorf("encode shipping: %w", err)
		}
	}

	const query = `
		INSERT INTO orders (id, customer_id, customer_name, email, address, phone,
			items, total_amount, payment_method, payment_status, status,
			gateway_ref, shipping, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE
		SET customer_id = EXCLUDED.customer_id,
			customer_name = EXCLUDED.customer_name,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			items = EXCLUDED.items,
			total_amount = EXCLUDED.total_amount,
			payment_method = EXCLUDED.payment_method,
			payment_status = EXCLUDED.payment_status,
			status = EXCLUDED.status,
			gateway_ref = EXCLUDED.gateway_ref,
			shipping = EXCLUDED.shipping,
			created_at = EXCLUDED.created_at;
	`

	_, err = r.pool.Exec(ctx, query,
		o.ID,
		o.CustomerID,
		o.CustomerName,
		o.Email,
		o.Address,
		o.Phone,
		items,
		o.TotalAmount,
		string(o.PaymentMethod),
		string(o.PaymentStatus),
		string(o.Status),
		o.GatewayRef,
		shipping,
		o.CreatedAt,
	)
	return err
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = orderSelect + ` WHERE id = $1;`

	row := r.pool.QueryRow(ctx, query, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	const query = orderSelect + ` WHERE customer_id = $1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	const query = orderSelect + ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

const orderSelect = `
	SELECT id, customer_id, customer_name, email, address, phone,
		items, total_amount, payment_method, payment_status, status,
		gateway_ref, shipping, created_at
	FROM orders`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o        domain.Order
		items    []byte
		shipping []byte
	)
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.CustomerName,
		&o.Email,
		&o.Address,
		&o.Phone,
		&items,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.Status,
		&o.GatewayRef,
		&shipping,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if len(shipping) > 0 {
		o.Shipping = &domain.Shipping{}
		if err := json.Unmarshal(shipping, o.Shipping); err != nil {
			return nil, fmt.Errorf("decode shipping: %w", err)
		}
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]*domain.Order, error) {
	var out []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
