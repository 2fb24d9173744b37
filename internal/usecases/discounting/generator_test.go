package discounting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shopify-discount-api/internal/config"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		AutoDiscount: config.AutoDiscount{
			Count:               6,
			TagName:             "auto-desconto",
			MinPercent:          10,
			MaxPercent:          25,
			RevertLookbackHours: 24,
		},
	}
}

func TestGenerator_Generate(t *testing.T) {
	tests := []struct {
		name     string
		product  *domain.Product
		percent  int
		validate func(t *testing.T, discount *domain.Discount, err error)
	}{
		{
			name: "Desconto de 20% sobre o lucro preserva o custo",
			product: &domain.Product{
				ID:           "gid://shopify/Product/1",
				Cost:         40.0,
				SellingPrice: 100.0,
			},
			percent: 20,
			validate: func(t *testing.T, discount *domain.Discount, err error) {
				// Lucro 60, desconto de 20% do lucro = 12 -> preço 88.00
				assert.NoError(t, err)
				assert.Equal(t, 20, discount.DiscountPercentage)
				assert.Equal(t, 100.0, discount.OriginalPrice)
				assert.Equal(t, 88.0, discount.DiscountedPrice)
				assert.Equal(t, 12.0, discount.SavingsAmount)
				assert.Equal(t, 12.0, discount.SavingsPercentage)
				assert.Equal(t, 60.0, discount.ProfitMargin)
			},
		},
		{
			name: "Desconto máximo de 25% mantém preço acima do custo",
			product: &domain.Product{
				ID:           "gid://shopify/Product/2",
				Cost:         79.9,
				SellingPrice: 89.9,
			},
			percent: 25,
			validate: func(t *testing.T, discount *domain.Discount, err error) {
				assert.NoError(t, err)
				assert.Greater(t, discount.DiscountedPrice, 79.9)
				assert.Less(t, discount.DiscountedPrice, 89.9)
			},
		},
		{
			name: "Arredondamento para cima no centavo favorece o lojista",
			product: &domain.Product{
				ID:           "gid://shopify/Product/3",
				Cost:         10.0,
				SellingPrice: 19.99,
			},
			percent: 13,
			validate: func(t *testing.T, discount *domain.Discount, err error) {
				// Lucro 9.99, 13% de desconto -> 10 + 9.99*0.87 = 18.6913 -> 18.70
				assert.NoError(t, err)
				assert.Equal(t, 18.70, discount.DiscountedPrice)
			},
		},
		{
			name: "Produto sem lucro positivo é rejeitado",
			product: &domain.Product{
				ID:           "gid://shopify/Product/4",
				Cost:         50.0,
				SellingPrice: 50.0,
			},
			percent: 15,
			validate: func(t *testing.T, discount *domain.Discount, err error) {
				assert.ErrorIs(t, err, ErrNonPositiveProfit)
				assert.Nil(t, discount)
			},
		},
		{
			name: "Produto com custo acima do preço é rejeitado",
			product: &domain.Product{
				ID:           "gid://shopify/Product/5",
				Cost:         80.0,
				SellingPrice: 50.0,
			},
			percent: 15,
			validate: func(t *testing.T, discount *domain.Discount, err error) {
				assert.ErrorIs(t, err, ErrNonPositiveProfit)
				assert.Nil(t, discount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewGenerator(testConfig()).WithRandInt(func(min, max int) int {
				return tt.percent
			})

			discount, err := generator.Generate(tt.product)
			tt.validate(t, discount, err)
		})
	}
}

func TestGenerator_Generate_RespeitaLimites(t *testing.T) {
	generator := NewGenerator(testConfig())

	product := &domain.Product{
		ID:           "gid://shopify/Product/10",
		Cost:         37.53,
		SellingPrice: 129.9,
	}

	for i := 0; i < 500; i++ {
		discount, err := generator.Generate(product)
		assert.NoError(t, err)

		// Percentual sorteado dentro de [min, max]
		assert.GreaterOrEqual(t, discount.DiscountPercentage, 10)
		assert.LessOrEqual(t, discount.DiscountPercentage, 25)

		// Preço descontado nunca abaixo do custo nem acima do preço original
		assert.Greater(t, discount.DiscountedPrice, product.Cost)
		assert.Less(t, discount.DiscountedPrice, product.SellingPrice)

		// Preço sempre com no máximo duas casas decimais
		cents := discount.DiscountedPrice * 100
		assert.InDelta(t, math.Round(cents), cents, 1e-6)
	}
}
