package product

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound              = errors.New("product not found")
	ErrInsufficientStock     = errors.New("not enough stock")
	ErrCustomizationRequired = errors.New("customization is required")
	ErrInvalidCategory       = errors.New("unknown product category")
	ErrMissingField          = errors.New("required field is missing")
	ErrInvalidPrice          = errors.New("price must be greater than zero")
	ErrInvalidStock          = errors.New("stock must not be negative")
)

type Category string

const (
	CategoryMoissanite Category = "Moissanite Diamond Jewelry"
	CategoryCustomized Category = "Customized Jewelry (Pre-Order)"
	CategoryWristwatch Category = "Wristwatch"
	CategoryJewelrySet Category = "Jewelry Set"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMoissanite, CategoryCustomized, CategoryWristwatch, CategoryJewelrySet:
		return true
	}
	return false
}

// customizedMarker flags categories whose products need personalized
// text/font/color at purchase time.
const customizedMarker = "customized"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    Category  `json:"category"`
	SubCategory string    `json:"sub_category,omitempty"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func New(id, name, description string, price float64, stock int, category Category, subCategory string, images []string) (*Product, error) {
	if id == "" || name == "" {
		return nil, ErrMissingField
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	now := time.Now().UTC()
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Category:    category,
		SubCategory: subCategory,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// RequiresCustomization reports whether the category matches the customized
// marker (case-insensitive substring).
func (p *Product) RequiresCustomization() bool {
	return strings.Contains(strings.ToLower(string(p.Category)), customizedMarker)
}
