package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New("p1", "Moissanite Ring", "shiny", 1500, 5,
		CategoryMoissanite, "Ring", []string{"https://cdn.example.com/ring.jpg"})

	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)
	assert.False(t, p.RequiresCustomization())
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		run     func() (*Product, error)
		wantErr error
	}{
		{"missing name", func() (*Product, error) {
			return New("p1", "", "", 10, 1, CategoryWristwatch, "", nil)
		}, ErrMissingField},
		{"zero price", func() (*Product, error) {
			return New("p1", "Watch", "", 0, 1, CategoryWristwatch, "", nil)
		}, ErrInvalidPrice},
		{"negative stock", func() (*Product, error) {
			return New("p1", "Watch", "", 10, -1, CategoryWristwatch, "", nil)
		}, ErrInvalidStock},
		{"bad category", func() (*Product, error) {
			return New("p1", "Watch", "", 10, 1, Category("Shoes"), "", nil)
		}, ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.run()
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequiresCustomization(t *testing.T) {
	custom := &Product{Category: CategoryCustomized}
	assert.True(t, custom.RequiresCustomization())

	plain := &Product{Category: CategoryJewelrySet}
	assert.False(t, plain.RequiresCustomization())
}
