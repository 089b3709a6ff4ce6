package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/afeayo2/Econmmerce/internal/domain/product"
	"github.com/afeayo2/Econmmerce/internal/domain/repository"
)

// Service covers admin catalog maintenance and public reads. Image URLs are
// produced by an external content store and stored as-is.
type Service struct {
	products repository.ProductRepository
}

func NewService(products repository.ProductRepository) *Service {
	return &Service{products: products}
}

type CreateCommand struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Stock       int              `json:"stock"`
	Category    product.Category `json:"category"`
	SubCategory string           `json:"sub_category"`
	Images      []string         `json:"images"`
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*product.Product, error) {
	p, err := product.New(uuid.NewString(), cmd.Name, cmd.Description, cmd.Price,
		cmd.Stock, cmd.Category, cmd.SubCategory, cmd.Images)
	if err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return p, nil
}

type UpdateCommand struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Price       *float64          `json:"price"`
	Stock       *int              `json:"stock"`
	Category    *product.Category `json:"category"`
	SubCategory *string           `json:"sub_category"`
	Images      []string          `json:"images"`
}

func (s *Service) Update(ctx context.Context, id string, cmd UpdateCommand) (*product.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", product.ErrNotFound, id)
	}

	if cmd.Name != nil {
		p.Name = *cmd.Name
	}
	if cmd.Description != nil {
		p.Description = *cmd.Description
	}
	if cmd.Price != nil {
		if *cmd.Price <= 0 {
			return nil, product.ErrInvalidPrice
		}
		p.Price = *cmd.Price
	}
	if cmd.Stock != nil {
		if *cmd.Stock < 0 {
			return nil, product.ErrInvalidStock
		}
		p.Stock = *cmd.Stock
	}
	if cmd.Category != nil {
		if !cmd.Category.Valid() {
			return nil, product.ErrInvalidCategory
		}
		p.Category = *cmd.Category
	}
	if cmd.SubCategory != nil {
		p.SubCategory = *cmd.SubCategory
	}
	if cmd.Images != nil {
		p.Images = cmd.Images
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product %s: %w", id, err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", product.ErrNotFound, id)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*product.Product, error) {
	return s.products.FindAll(ctx)
}
