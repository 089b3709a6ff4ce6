package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/afeayo2/Econmmerce/internal/domain/product"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC NOT NULL,
			stock INT NOT NULL CHECK (stock >= 0),
			category TEXT NOT NULL,
			sub_category TEXT NOT NULL DEFAULT '',
			images TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}

func (r *ProductRepository) Save(ctx context.Context, p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}

	const query = `
		INSERT INTO products (id, name, description, price, stock, category,
			sub_category, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			stock = EXCLUDED.stock,
			category = EXCLUDED.category,
			sub_category = EXCLUDED.sub_category,
			images = EXCLUDED.images,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.Price,
		p.Stock,
		string(p.Category),
		p.SubCategory,
		p.Images,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	const query = productSelect + ` WHERE id = $1;`

	var p domain.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Category,
		&p.SubCategory,
		&p.Images,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	const query = productSelect + ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Stock,
			&p.Category,
			&p.SubCategory,
			&p.Images,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock reserves stock with a conditional update: the row only
// changes while stock >= quantity, so concurrent checkouts cannot drive
// stock negative. A false return means the reservation lost the race or
// the stock was already too low.
func (r *ProductRepository) DecrementStock(ctx context.Context, id string, quantity int) (bool, error) {
	const query = `
		UPDATE products
		SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2;
	`
	tag, err := r.pool.Exec(ctx, query, id, quantity)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementStock is the compensating restock used when a reservation has to
// be rolled back or an order is cancelled.
func (r *ProductRepository) IncrementStock(ctx context.Context, id string, quantity int) error {
	const query = `
		UPDATE products
		SET stock = stock + $2, updated_at = now()
		WHERE id = $1;
	`
	_, err := r.pool.Exec(ctx, query, id, quantity)
	return err
}

const productSelect = `
	SELECT id, name, description, price, stock, category, sub_category,
		images, created_at, updated_at
	FROM products`
