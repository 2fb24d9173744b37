// Package discounting implementa o ciclo diário de descontos automáticos:
// reverte os descontos do dia anterior, varre o catálogo elegível, sorteia
// produtos e aplica novos descontos registrando tudo no ledger.
package discounting

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/shopify-discount-api/infrastructure/repository"
	"github.com/vfg2006/shopify-discount-api/internal/config"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
	"github.com/vfg2006/shopify-discount-api/pkg/utils"
)

type AutoDiscounter interface {
	RunForShop(ctx context.Context, shop string, count int) (*domain.RunReport, error)
	RunForAllShops(ctx context.Context, count int) ([]*domain.RunReport, error)
	ListShopDiscounts(shop string, limit, offset uint64) ([]*domain.DiscountLogEntry, int64, error)
	GetShopDiscountStatus(shop string) (*domain.ShopDiscountStatus, error)
}

type Service struct {
	cfg         *config.Config
	sessionRepo repository.ShopSessionRepository
	ledgerRepo  repository.DiscountLogRepository
	integrator  shopify.ShopifyIntegrator
	mutator     PriceMutator
	generator   *Generator
	shuffle     func(n int, swap func(i, j int))
}

func NewService(
	cfg *config.Config,
	sessionRepo repository.ShopSessionRepository,
	ledgerRepo repository.DiscountLogRepository,
	integrator shopify.ShopifyIntegrator,
	mutator PriceMutator,
	generator *Generator,
) *Service {
	return &Service{
		cfg:         cfg,
		sessionRepo: sessionRepo,
		ledgerRepo:  ledgerRepo,
		integrator:  integrator,
		mutator:     mutator,
		generator:   generator,
		shuffle:     rand.Shuffle,
	}
}

// WithShuffle troca a fonte de embaralhamento do sorteio. Apenas para testes.
func (s *Service) WithShuffle(shuffle func(n int, swap func(i, j int))) *Service {
	s.shuffle = shuffle
	return s
}

// RunForShop executa o ciclo completo de uma loja: reversão, varredura,
// sorteio e aplicação. Falhas por item não interrompem o ciclo; só a
// varredura de catálogo é fatal. count <= 0 usa o padrão configurado.
func (s *Service) RunForShop(ctx context.Context, shop string, count int) (*domain.RunReport, error) {
	if count <= 0 {
		count = s.cfg.AutoDiscount.Count
	}

	report := &domain.RunReport{
		RunID:     utils.GenerateID(),
		Shop:      shop,
		StartedAt: time.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"shop":   shop,
		"run_id": report.RunID,
		"count":  count,
	}).Info("Iniciando ciclo de descontos automáticos")

	creds, err := s.resolveCredentials(shop)
	if err != nil {
		return nil, err
	}

	s.revertPrevious(ctx, creds, shop, report)

	products, stats, err := s.integrator.FetchEligibleProducts(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("erro ao varrer o catálogo da loja %s: %w", shop, err)
	}
	report.ScanStats = stats

	if len(products) == 0 {
		report.Message = "nenhum produto elegível encontrado"
		report.CompletedAt = time.Now()

		logrus.WithFields(logrus.Fields{
			"shop":   shop,
			"run_id": report.RunID,
		}).Warn("Ciclo encerrado sem produtos elegíveis")

		return report, nil
	}

	selected := s.sample(products, count)

	s.applyDiscounts(ctx, creds, shop, selected, report)

	// O catálogo em cache ficou obsoleto: os preços acabaram de mudar
	s.integrator.InvalidateCache(shop)

	report.CompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"shop":          shop,
		"run_id":        report.RunID,
		"reverted":      report.Reverted,
		"revert_failed": report.RevertFailed,
		"applied":       report.Applied,
		"apply_failed":  report.ApplyFailed,
	}).Info("Ciclo de descontos automáticos concluído")

	return report, nil
}

// RunForAllShops roda o ciclo sequencialmente para cada loja com sessão
// registrada. Falha de uma loja não impede as demais.
func (s *Service) RunForAllShops(ctx context.Context, count int) ([]*domain.RunReport, error) {
	shops, err := s.sessionRepo.ListShops()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}

	if len(shops) == 0 && s.cfg.Shopify.ShopDomain != "" {
		shops = []string{s.cfg.Shopify.ShopDomain}
	}

	reports := make([]*domain.RunReport, 0, len(shops))
	for _, shop := range shops {
		report, err := s.RunForShop(ctx, shop, count)
		if err != nil {
			logrus.WithError(err).WithField("shop", shop).
				Error("Erro no ciclo de descontos da loja, seguindo para a próxima")

			reports = append(reports, &domain.RunReport{
				Shop:        shop,
				StartedAt:   time.Now(),
				CompletedAt: time.Now(),
				Errors:      []string{err.Error()},
				Message:     "ciclo falhou",
			})
			continue
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (s *Service) ListShopDiscounts(shop string, limit, offset uint64) ([]*domain.DiscountLogEntry, int64, error) {
	entries, err := s.ledgerRepo.ListByShop(shop, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.ledgerRepo.CountByShop(shop)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (s *Service) GetShopDiscountStatus(shop string) (*domain.ShopDiscountStatus, error) {
	total, err := s.ledgerRepo.CountByShop(shop)
	if err != nil {
		return nil, err
	}

	active, err := s.ledgerRepo.CountAppliedByShop(shop)
	if err != nil {
		return nil, err
	}

	return &domain.ShopDiscountStatus{
		Shop:            shop,
		TotalLogs:       total,
		ActiveDiscounts: active,
	}, nil
}

// resolveCredentials busca o token da loja na tabela de sessões; sem sessão,
// cai no token estático configurado por ambiente.
func (s *Service) resolveCredentials(shop string) (shopifyclient.ShopCredentials, error) {
	session, err := s.sessionRepo.GetByShop(shop)
	if err != nil {
		return shopifyclient.ShopCredentials{}, fmt.Errorf("erro ao buscar sessão da loja %s: %w", shop, err)
	}

	if session != nil && session.AccessToken != "" {
		return shopifyclient.ShopCredentials{
			ShopDomain:  session.Shop,
			AccessToken: session.AccessToken,
		}, nil
	}

	if s.cfg.Shopify.AdminToken != "" {
		return shopifyclient.ShopCredentials{
			ShopDomain:  shop,
			AccessToken: s.cfg.Shopify.AdminToken,
		}, nil
	}

	return shopifyclient.ShopCredentials{}, fmt.Errorf("nenhuma credencial disponível para a loja %s", shop)
}

// revertPrevious restaura os descontos da janela anterior antes de aplicar
// novos. Falha por item é tolerada e contabilizada no relatório.
func (s *Service) revertPrevious(ctx context.Context, creds shopifyclient.ShopCredentials, shop string, report *domain.RunReport) {
	since := time.Now().Add(-time.Duration(s.cfg.AutoDiscount.RevertLookbackHours) * time.Hour)

	entries, err := s.ledgerRepo.ListAppliedSince(shop, since)
	if err != nil {
		logrus.WithError(err).WithField("shop", shop).
			Error("Erro ao listar descontos a reverter, seguindo sem reversão")

		report.Errors = append(report.Errors, fmt.Sprintf("erro ao listar descontos a reverter: %v", err))
		return
	}

	for i, entry := range entries {
		result := s.mutator.Revert(ctx, creds, entry)
		report.RevertResults = append(report.RevertResults, result)

		if result.Status == domain.MutationStatusSuccess {
			report.Reverted++
		} else {
			report.RevertFailed++
			report.Errors = append(report.Errors, result.Message)

			logrus.WithFields(logrus.Fields{
				"shop":       shop,
				"product_id": entry.ProductID,
				"message":    result.Message,
			}).Error("Erro ao reverter desconto")
		}

		if i < len(entries)-1 {
			s.throttle(ctx)
		}
	}
}

// sample sorteia min(count, len(products)) produtos sem repetição
func (s *Service) sample(products []*domain.Product, count int) []*domain.Product {
	shuffled := make([]*domain.Product, len(products))
	copy(shuffled, products)

	s.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}

	return shuffled[:count]
}

func (s *Service) applyDiscounts(ctx context.Context, creds shopifyclient.ShopCredentials, shop string, products []*domain.Product, report *domain.RunReport) {
	for i, product := range products {
		discount, err := s.generator.Generate(product)
		if err != nil {
			report.ApplyFailed++
			report.Errors = append(report.Errors, fmt.Sprintf("produto %s: %v", product.ID, err))

			report.ApplyResults = append(report.ApplyResults, domain.MutationResult{
				Status:       domain.MutationStatusError,
				ProductID:    product.ID,
				ProductTitle: product.Title,
				VariantID:    product.VariantID,
				Message:      err.Error(),
			})
			continue
		}

		result := s.mutator.Apply(ctx, creds, shop, product, discount, report.RunID)
		report.ApplyResults = append(report.ApplyResults, result)

		if result.Status == domain.MutationStatusSuccess {
			report.Applied++

			logrus.WithFields(logrus.Fields{
				"shop":       shop,
				"product_id": product.ID,
				"percentage": discount.DiscountPercentage,
				"original":   discount.OriginalPrice,
				"discounted": discount.DiscountedPrice,
			}).Info("Desconto aplicado")
		} else {
			report.ApplyFailed++
			report.Errors = append(report.Errors, result.Message)

			logrus.WithFields(logrus.Fields{
				"shop":       shop,
				"product_id": product.ID,
				"message":    result.Message,
			}).Error("Erro ao aplicar desconto")
		}

		if i < len(products)-1 {
			s.throttle(ctx)
		}
	}
}

// throttle espaça as chamadas ao Admin API para respeitar o rate limit
func (s *Service) throttle(ctx context.Context) {
	delay := time.Duration(s.cfg.AutoDiscount.RequestDelayMs) * time.Millisecond
	if delay <= 0 {
		return
	}

	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}
