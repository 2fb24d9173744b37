package shopify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	shopifydomain "github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/shopifyclient"
	clientmocks "github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/shopifyclient/mocks"
	"github.com/vfg2006/shopify-discount-api/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		AutoDiscount: config.AutoDiscount{
			PageSize: 250,
		},
	}
}

func credsForTest() shopifyclient.ShopCredentials {
	return shopifyclient.ShopCredentials{
		ShopDomain:  "loja.myshopify.com",
		AccessToken: "shpat_test",
	}
}

type edgeOptions struct {
	noImage        bool
	noVariant      bool
	inventory      int
	price          string
	unitCost       *string
	compareAtPrice *string
}

func buildEdge(id string, opts edgeOptions) shopifydomain.ProductEdge {
	node := shopifydomain.ProductNode{
		ID:    "gid://shopify/Product/" + id,
		Title: "Produto " + id,
	}

	if !opts.noImage {
		node.FeaturedImage = &shopifydomain.Image{URL: "https://cdn.shopify.com/" + id + ".jpg"}
	}

	if !opts.noVariant {
		variant := shopifydomain.VariantNode{
			ID:                "gid://shopify/ProductVariant/" + id,
			Title:             "Default",
			Price:             opts.price,
			CompareAtPrice:    opts.compareAtPrice,
			InventoryQuantity: opts.inventory,
		}
		if opts.unitCost != nil {
			variant.InventoryItem.UnitCost = &shopifydomain.MoneyV2{Amount: *opts.unitCost, CurrencyCode: "BRL"}
		}
		node.Variants.Edges = []shopifydomain.VariantEdge{{Node: variant}}
	}

	return shopifydomain.ProductEdge{Cursor: "cursor-" + id, Node: node}
}

func stringPtr(s string) *string {
	return &s
}

func TestService_FetchEligibleProducts_Elegibilidade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := New(testConfig(), client)

	edges := []shopifydomain.ProductEdge{
		// Elegível, com custo real do vendor
		buildEdge("1", edgeOptions{inventory: 5, price: "100.00", unitCost: stringPtr("40.00")}),
		// Sem imagem
		buildEdge("2", edgeOptions{noImage: true, inventory: 5, price: "50.00"}),
		// Sem variante
		buildEdge("3", edgeOptions{noVariant: true}),
		// Sem estoque
		buildEdge("4", edgeOptions{inventory: 0, price: "50.00"}),
		// Sem unitCost: custo imputado em 50% do preço
		buildEdge("5", edgeOptions{inventory: 2, price: "80.00"}),
		// Custo acima do preço: margem não positiva, fora do pool
		buildEdge("6", edgeOptions{inventory: 3, price: "30.00", unitCost: stringPtr("45.00")}),
	}

	client.EXPECT().
		ListProducts(gomock.Any(), credsForTest(), nil, 250).
		Return(&shopifydomain.ProductPage{
			Edges:        edges,
			PageInfo:     shopifydomain.PageInfo{HasNextPage: false},
			CurrencyCode: "BRL",
		}, nil)

	products, stats, err := service.FetchEligibleProducts(context.Background(), credsForTest())

	assert.NoError(t, err)
	assert.Len(t, products, 2)

	assert.Equal(t, 6, stats.TotalScanned)
	assert.Equal(t, 1, stats.PagesFetched)
	assert.Equal(t, 2, stats.Eligible)
	assert.Equal(t, 1, stats.SkippedNonPositiveMargin)
	assert.False(t, stats.Partial)

	// Produto 1: custo real do vendor
	assert.Equal(t, "gid://shopify/Product/1", products[0].ID)
	assert.Equal(t, 40.0, products[0].Cost)
	assert.False(t, products[0].EstimatedCost)
	assert.Equal(t, "BRL", products[0].CurrencyCode)

	// Produto 5: custo imputado em 50% do preço de venda
	assert.Equal(t, "gid://shopify/Product/5", products[1].ID)
	assert.Equal(t, 40.0, products[1].Cost)
	assert.True(t, products[1].EstimatedCost)
}

func TestService_FetchEligibleProducts_Paginacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := New(testConfig(), client)

	cursor := "cursor-1"

	client.EXPECT().
		ListProducts(gomock.Any(), credsForTest(), nil, 250).
		Return(&shopifydomain.ProductPage{
			Edges:        []shopifydomain.ProductEdge{buildEdge("1", edgeOptions{inventory: 1, price: "100.00", unitCost: stringPtr("40.00")})},
			PageInfo:     shopifydomain.PageInfo{HasNextPage: true, EndCursor: &cursor},
			CurrencyCode: "BRL",
		}, nil)

	client.EXPECT().
		ListProducts(gomock.Any(), credsForTest(), &cursor, 250).
		Return(&shopifydomain.ProductPage{
			Edges:    []shopifydomain.ProductEdge{buildEdge("2", edgeOptions{inventory: 1, price: "200.00", unitCost: stringPtr("90.00")})},
			PageInfo: shopifydomain.PageInfo{HasNextPage: false},
		}, nil)

	products, stats, err := service.FetchEligibleProducts(context.Background(), credsForTest())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 2, stats.PagesFetched)
	assert.False(t, stats.Partial)
}

func TestService_FetchEligibleProducts_ErroNaPrimeiraPaginaEhFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	service := New(testConfig(), client)

	client.EXPECT().
		ListProducts(gomock.Any(), credsForTest(), nil, 250).
		Return(nil, assert.AnError)

	products, stats, err := service.FetchEligibleProducts(context.Background(), credsForTest())

	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Nil(t, stats)
}

func TestService_FetchEligibleProducts_ErroEmPaginaPosteriorDegrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	cache := NewCatalogCache(5 * time.Minute)
	service := New(testConfig(), client).WithCache(cache)

	cursor := "cursor-1"

	client.EXPECT().
		ListProducts(gomock.Any(), credsForTest(), nil, 250).
		Return(&shopifydomain.ProductPage{
			Edges:        []shopifydomain.ProductEdge{buildEdge("1", edgeOptions{inventory: 1, price: "100.00", unitCost: stringPtr("40.00")})},
			PageInfo:     shopifydomain.PageInfo{HasNextPage: true, EndCursor: &cursor},
			CurrencyCode: "BRL",
		}, nil)

	client.EXPECT().
		ListProducts(gomock.Any(), credsForTest(), &cursor, 250).
		Return(nil, assert.AnError)

	products, stats, err := service.FetchEligibleProducts(context.Background(), credsForTest())

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.True(t, stats.Partial)

	// Resultado parcial não entra no cache
	_, _, ok := cache.Get("loja.myshopify.com")
	assert.False(t, ok)
}

func TestService_FetchEligibleProducts_UsaCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	cache := NewCatalogCache(5 * time.Minute)
	service := New(testConfig(), client).WithCache(cache)

	client.EXPECT().
		ListProducts(gomock.Any(), credsForTest(), nil, 250).
		Return(&shopifydomain.ProductPage{
			Edges:        []shopifydomain.ProductEdge{buildEdge("1", edgeOptions{inventory: 1, price: "100.00", unitCost: stringPtr("40.00")})},
			PageInfo:     shopifydomain.PageInfo{HasNextPage: false},
			CurrencyCode: "BRL",
		}, nil).
		Times(1)

	// Primeira chamada varre a API; segunda vem do cache
	first, _, err := service.FetchEligibleProducts(context.Background(), credsForTest())
	assert.NoError(t, err)

	second, _, err := service.FetchEligibleProducts(context.Background(), credsForTest())
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	// Invalidação força nova varredura
	service.InvalidateCache("loja.myshopify.com")

	client.EXPECT().
		ListProducts(gomock.Any(), credsForTest(), nil, 250).
		Return(&shopifydomain.ProductPage{
			Edges:    []shopifydomain.ProductEdge{},
			PageInfo: shopifydomain.PageInfo{HasNextPage: false},
		}, nil)

	third, _, err := service.FetchEligibleProducts(context.Background(), credsForTest())
	assert.NoError(t, err)
	assert.Empty(t, third)
}

func TestService_PageSize(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		expected int
	}{
		{name: "Dentro dos limites", pageSize: 150, expected: 150},
		{name: "Abaixo do mínimo", pageSize: 10, expected: 100},
		{name: "Acima do máximo", pageSize: 500, expected: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.AutoDiscount.PageSize = tt.pageSize

			service := New(cfg, nil)
			assert.Equal(t, tt.expected, service.pageSize())
		})
	}
}
