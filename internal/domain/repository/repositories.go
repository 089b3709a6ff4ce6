package repository

import (
	"context"

	"github.com/afeayo2/Econmmerce/internal/domain/order"
	"github.com/afeayo2/Econmmerce/internal/domain/product"
)

// OrderRepository is the order ledger. Save has full-document replace
// semantics; FindByID returns (nil, nil) when the order is absent.
type OrderRepository interface {
	Save(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id string) (*order.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)
	FindAll(ctx context.Context) ([]*order.Order, error)
}

// ProductRepository is the catalog store. FindByID returns (nil, nil) when
// the product is absent. DecrementStock is the conditional reservation:
// it subtracts quantity only while stock >= quantity and reports whether a
// row was affected.
type ProductRepository interface {
	Save(ctx context.Context, p *product.Product) error
	FindByID(ctx context.Context, id string) (*product.Product, error)
	FindAll(ctx context.Context) ([]*product.Product, error)
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, quantity int) (bool, error)
	IncrementStock(ctx context.Context, id string, quantity int) error
}
