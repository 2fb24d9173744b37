package discounting

import (
	"errors"
	"math/rand"

	"github.com/vfg2006/shopify-discount-api/internal/config"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
	"github.com/vfg2006/shopify-discount-api/pkg/utils"
)

// ErrNonPositiveProfit indica um produto com custo maior ou igual ao preço.
// O fetcher de catálogo já exclui esses produtos do pool; a checagem aqui é
// a garantia de que o preço descontado nunca supera o preço de venda.
var ErrNonPositiveProfit = errors.New("produto sem lucro positivo")

// Generator calcula o desconto aleatório de um produto preservando o piso de
// margem: o percentual sorteado incide só sobre o lucro, nunca sobre o custo.
type Generator struct {
	minPercent int
	maxPercent int
	randInt    func(min, max int) int
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		minPercent: cfg.AutoDiscount.MinPercent,
		maxPercent: cfg.AutoDiscount.MaxPercent,
		randInt: func(min, max int) int {
			return rand.Intn(max-min+1) + min
		},
	}
}

// WithRandInt troca a fonte de aleatoriedade. Apenas para testes.
func (g *Generator) WithRandInt(randInt func(min, max int) int) *Generator {
	g.randInt = randInt
	return g
}

func (g *Generator) Generate(product *domain.Product) (*domain.Discount, error) {
	profit := product.SellingPrice - product.Cost
	if profit <= 0 {
		return nil, ErrNonPositiveProfit
	}

	profitMargin := utils.RoundWithTwoDecimalPlace(profit / product.SellingPrice * 100)

	discountPercentage := g.randInt(g.minPercent, g.maxPercent)

	discountedProfit := profit * (1 - float64(discountPercentage)/100)
	discountedPrice := utils.CeilToCent(product.Cost + discountedProfit)

	savingsAmount := utils.RoundWithTwoDecimalPlace(product.SellingPrice - discountedPrice)
	savingsPercentage := utils.RoundWithTwoDecimalPlace(savingsAmount / product.SellingPrice * 100)

	return &domain.Discount{
		ProfitMargin:       profitMargin,
		DiscountPercentage: discountPercentage,
		OriginalPrice:      product.SellingPrice,
		DiscountedPrice:    discountedPrice,
		SavingsAmount:      savingsAmount,
		SavingsPercentage:  savingsPercentage,
	}, nil
}
