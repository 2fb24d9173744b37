package discounting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	shopifymocks "github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/mocks"
	"github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/shopifyclient"
	discountingmocks "github.com/vfg2006/shopify-discount-api/internal/usecases/discounting/mocks"
	repomocks "github.com/vfg2006/shopify-discount-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func credsForTest() shopifyclient.ShopCredentials {
	return shopifyclient.ShopCredentials{
		ShopDomain:  "loja.myshopify.com",
		AccessToken: "shpat_test",
	}
}

func sessionForTest() *domain.ShopSession {
	return &domain.ShopSession{
		ID:          "offline_loja.myshopify.com",
		Shop:        "loja.myshopify.com",
		AccessToken: "shpat_test",
	}
}

func productForTest(id string) *domain.Product {
	return &domain.Product{
		ID:           "gid://shopify/Product/" + id,
		Title:        "Produto " + id,
		VariantID:    "gid://shopify/ProductVariant/" + id,
		Cost:         40.0,
		SellingPrice: 100.0,
	}
}

func successResult(product *domain.Product) domain.MutationResult {
	return domain.MutationResult{
		Status:    domain.MutationStatusSuccess,
		ProductID: product.ID,
		VariantID: product.VariantID,
	}
}

type serviceMocks struct {
	sessionRepo *repomocks.MockShopSessionRepository
	ledgerRepo  *repomocks.MockDiscountLogRepository
	integrator  *shopifymocks.MockShopifyIntegrator
	mutator     *discountingmocks.MockPriceMutator
}

func newServiceForTest(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		sessionRepo: repomocks.NewMockShopSessionRepository(ctrl),
		ledgerRepo:  repomocks.NewMockDiscountLogRepository(ctrl),
		integrator:  shopifymocks.NewMockShopifyIntegrator(ctrl),
		mutator:     discountingmocks.NewMockPriceMutator(ctrl),
	}

	generator := NewGenerator(testConfig()).WithRandInt(func(min, max int) int {
		return 15
	})

	service := NewService(
		testConfig(),
		m.sessionRepo,
		m.ledgerRepo,
		m.integrator,
		m.mutator,
		generator,
	)

	return service, m
}

func TestService_RunForShop(t *testing.T) {
	shop := "loja.myshopify.com"
	creds := credsForTest()

	tests := []struct {
		name     string
		count    int
		setup    func(m serviceMocks)
		validate func(t *testing.T, report *domain.RunReport, err error)
	}{
		{
			name:  "Ciclo completo com reversão e aplicação",
			count: 2,
			setup: func(m serviceMocks) {
				m.sessionRepo.EXPECT().GetByShop(shop).Return(sessionForTest(), nil)

				// Fase de reversão: um desconto ativo da janela anterior
				previous := &domain.DiscountLogEntry{
					ID:        1,
					Shop:      shop,
					ProductID: "gid://shopify/Product/90",
					VariantID: "gid://shopify/ProductVariant/90",
				}
				m.ledgerRepo.EXPECT().
					ListAppliedSince(shop, gomock.Any()).
					Return([]*domain.DiscountLogEntry{previous}, nil)

				m.mutator.EXPECT().
					Revert(gomock.Any(), creds, previous).
					Return(domain.MutationResult{Status: domain.MutationStatusSuccess})

				// Fase de aplicação: dois produtos elegíveis
				products := []*domain.Product{productForTest("1"), productForTest("2")}
				m.integrator.EXPECT().
					FetchEligibleProducts(gomock.Any(), creds).
					Return(products, &domain.ScanStats{TotalScanned: 2, Eligible: 2}, nil)

				m.mutator.EXPECT().
					Apply(gomock.Any(), creds, shop, gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ shopifyclient.ShopCredentials, _ string, product *domain.Product, discount *domain.Discount, runID string) domain.MutationResult {
						assert.NotEmpty(t, runID)
						assert.Equal(t, 15, discount.DiscountPercentage)
						return successResult(product)
					}).
					Times(2)

				m.integrator.EXPECT().InvalidateCache(shop)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, report.Reverted)
				assert.Equal(t, 0, report.RevertFailed)
				assert.Equal(t, 2, report.Applied)
				assert.Equal(t, 0, report.ApplyFailed)
				assert.NotEmpty(t, report.RunID)
				assert.Len(t, report.ApplyResults, 2)
			},
		},
		{
			name:  "Pool menor que a cota desconta todos sem repetição",
			count: 6,
			setup: func(m serviceMocks) {
				m.sessionRepo.EXPECT().GetByShop(shop).Return(sessionForTest(), nil)

				m.ledgerRepo.EXPECT().
					ListAppliedSince(shop, gomock.Any()).
					Return([]*domain.DiscountLogEntry{}, nil)

				products := []*domain.Product{productForTest("1"), productForTest("2"), productForTest("3")}
				m.integrator.EXPECT().
					FetchEligibleProducts(gomock.Any(), creds).
					Return(products, &domain.ScanStats{TotalScanned: 3, Eligible: 3}, nil)

				seen := make(map[string]bool)
				m.mutator.EXPECT().
					Apply(gomock.Any(), creds, shop, gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ shopifyclient.ShopCredentials, _ string, product *domain.Product, _ *domain.Discount, _ string) domain.MutationResult {
						assert.False(t, seen[product.ID], "produto sorteado em duplicidade")
						seen[product.ID] = true
						return successResult(product)
					}).
					Times(3)

				m.integrator.EXPECT().InvalidateCache(shop)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, report.Applied)
			},
		},
		{
			name:  "Catálogo sem produtos elegíveis encerra o ciclo sem aplicar",
			count: 6,
			setup: func(m serviceMocks) {
				m.sessionRepo.EXPECT().GetByShop(shop).Return(sessionForTest(), nil)

				m.ledgerRepo.EXPECT().
					ListAppliedSince(shop, gomock.Any()).
					Return([]*domain.DiscountLogEntry{}, nil)

				m.integrator.EXPECT().
					FetchEligibleProducts(gomock.Any(), creds).
					Return([]*domain.Product{}, &domain.ScanStats{TotalScanned: 10}, nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, report.Applied)
				assert.Equal(t, "nenhum produto elegível encontrado", report.Message)
			},
		},
		{
			name:  "Falha por item não interrompe os demais",
			count: 2,
			setup: func(m serviceMocks) {
				m.sessionRepo.EXPECT().GetByShop(shop).Return(sessionForTest(), nil)

				m.ledgerRepo.EXPECT().
					ListAppliedSince(shop, gomock.Any()).
					Return([]*domain.DiscountLogEntry{}, nil)

				products := []*domain.Product{productForTest("1"), productForTest("2")}
				m.integrator.EXPECT().
					FetchEligibleProducts(gomock.Any(), creds).
					Return(products, &domain.ScanStats{TotalScanned: 2, Eligible: 2}, nil)

				first := true
				m.mutator.EXPECT().
					Apply(gomock.Any(), creds, shop, gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ shopifyclient.ShopCredentials, _ string, product *domain.Product, _ *domain.Discount, _ string) domain.MutationResult {
						if first {
							first = false
							return domain.MutationResult{
								Status:    domain.MutationStatusError,
								ProductID: product.ID,
								Message:   "erro ao atualizar preço",
							}
						}
						return successResult(product)
					}).
					Times(2)

				m.integrator.EXPECT().InvalidateCache(shop)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, report.Applied)
				assert.Equal(t, 1, report.ApplyFailed)
				assert.Len(t, report.Errors, 1)
			},
		},
		{
			name:  "Erro na varredura do catálogo é fatal para o ciclo",
			count: 6,
			setup: func(m serviceMocks) {
				m.sessionRepo.EXPECT().GetByShop(shop).Return(sessionForTest(), nil)

				m.ledgerRepo.EXPECT().
					ListAppliedSince(shop, gomock.Any()).
					Return([]*domain.DiscountLogEntry{}, nil)

				m.integrator.EXPECT().
					FetchEligibleProducts(gomock.Any(), creds).
					Return(nil, nil, assert.AnError)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.Error(t, err)
				assert.Nil(t, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceForTest(ctrl)
			tt.setup(m)

			report, err := service.RunForShop(context.Background(), shop, tt.count)
			tt.validate(t, report, err)
		})
	}
}

func TestService_RunForShop_FallbackDeCredenciais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceForTest(ctrl)
	service.cfg.Shopify.ShopDomain = "loja.myshopify.com"
	service.cfg.Shopify.AdminToken = "shpat_estatico"

	fallbackCreds := shopifyclient.ShopCredentials{
		ShopDomain:  "loja.myshopify.com",
		AccessToken: "shpat_estatico",
	}

	// Sem sessão no banco: usa o token estático configurado
	m.sessionRepo.EXPECT().GetByShop("loja.myshopify.com").Return(nil, nil)

	m.ledgerRepo.EXPECT().
		ListAppliedSince("loja.myshopify.com", gomock.Any()).
		Return([]*domain.DiscountLogEntry{}, nil)

	m.integrator.EXPECT().
		FetchEligibleProducts(gomock.Any(), fallbackCreds).
		Return([]*domain.Product{}, &domain.ScanStats{}, nil)

	report, err := service.RunForShop(context.Background(), "loja.myshopify.com", 6)

	assert.NoError(t, err)
	assert.NotNil(t, report)
}

func TestService_RunForShop_SemCredenciais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceForTest(ctrl)

	m.sessionRepo.EXPECT().GetByShop("loja.myshopify.com").Return(nil, nil)

	report, err := service.RunForShop(context.Background(), "loja.myshopify.com", 6)

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "nenhuma credencial disponível")
}

func TestService_RunForAllShops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceForTest(ctrl)

	m.sessionRepo.EXPECT().ListShops().Return([]string{"a.myshopify.com", "b.myshopify.com"}, nil)

	// Loja A falha na resolução de credenciais; loja B completa o ciclo
	m.sessionRepo.EXPECT().GetByShop("a.myshopify.com").Return(nil, assert.AnError)

	sessionB := &domain.ShopSession{Shop: "b.myshopify.com", AccessToken: "shpat_b"}
	credsB := shopifyclient.ShopCredentials{ShopDomain: "b.myshopify.com", AccessToken: "shpat_b"}

	m.sessionRepo.EXPECT().GetByShop("b.myshopify.com").Return(sessionB, nil)
	m.ledgerRepo.EXPECT().
		ListAppliedSince("b.myshopify.com", gomock.Any()).
		Return([]*domain.DiscountLogEntry{}, nil)
	m.integrator.EXPECT().
		FetchEligibleProducts(gomock.Any(), credsB).
		Return([]*domain.Product{}, &domain.ScanStats{}, nil)

	reports, err := service.RunForAllShops(context.Background(), 6)

	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Len(t, reports[0].Errors, 1)
	assert.Empty(t, reports[1].Errors)
}

func TestService_GetShopDiscountStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceForTest(ctrl)

	m.ledgerRepo.EXPECT().CountByShop("loja.myshopify.com").Return(int64(120), nil)
	m.ledgerRepo.EXPECT().CountAppliedByShop("loja.myshopify.com").Return(int64(6), nil)

	status, err := service.GetShopDiscountStatus("loja.myshopify.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(120), status.TotalLogs)
	assert.Equal(t, int64(6), status.ActiveDiscounts)
}

func TestService_ListShopDiscounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceForTest(ctrl)

	entries := []*domain.DiscountLogEntry{
		{ID: 1, Shop: "loja.myshopify.com", CreatedAt: time.Now()},
		{ID: 2, Shop: "loja.myshopify.com", CreatedAt: time.Now()},
	}

	m.ledgerRepo.EXPECT().ListByShop("loja.myshopify.com", uint64(50), uint64(0)).Return(entries, nil)
	m.ledgerRepo.EXPECT().CountByShop("loja.myshopify.com").Return(int64(2), nil)

	result, total, err := service.ListShopDiscounts("loja.myshopify.com", 50, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, result, 2)
}
