// Package shopify integra o serviço com a Admin GraphQL API da Shopify.
package shopify

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/shopify-discount-api/internal/config"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
)

const (
	minPageSize = 100
	maxPageSize = 250

	// Custo imputado quando o vendor não tem unitCost: 50% do preço de venda
	estimatedCostRatio = 0.5
)

type ShopifyIntegrator interface {
	FetchEligibleProducts(ctx context.Context, creds shopifyclient.ShopCredentials) ([]*domain.Product, *domain.ScanStats, error)
	InvalidateCache(shop string)
}

type Service struct {
	cfg    *config.Config
	client shopifyclient.Client
	cache  *CatalogCache
}

func New(cfg *config.Config, client shopifyclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// WithCache habilita o cache de catálogo por loja
func (s *Service) WithCache(cache *CatalogCache) *Service {
	s.cache = cache
	return s
}

// FetchEligibleProducts pagina o catálogo inteiro da loja e devolve os
// produtos elegíveis para desconto: com imagem, com variante, com estoque
// positivo e com margem positiva. Erro na primeira página é fatal; erro em
// página posterior interrompe a paginação e devolve resultado parcial,
// sinalizado em ScanStats.Partial.
func (s *Service) FetchEligibleProducts(ctx context.Context, creds shopifyclient.ShopCredentials) ([]*domain.Product, *domain.ScanStats, error) {
	if s.cache != nil {
		if products, stats, ok := s.cache.Get(creds.ShopDomain); ok {
			logrus.WithFields(logrus.Fields{
				"shop":     creds.ShopDomain,
				"products": len(products),
			}).Debug("Catálogo obtido do cache")
			return products, stats, nil
		}
	}

	stats := &domain.ScanStats{}

	edges, currencyCode, err := s.fetchAllPages(ctx, creds, stats)
	if err != nil {
		return nil, nil, err
	}

	products := s.filterEligible(edges, currencyCode, stats)

	logrus.WithFields(logrus.Fields{
		"shop":     creds.ShopDomain,
		"scanned":  stats.TotalScanned,
		"eligible": stats.Eligible,
		"pages":    stats.PagesFetched,
		"partial":  stats.Partial,
	}).Info("Varredura de catálogo concluída")

	if s.cache != nil && !stats.Partial {
		s.cache.Store(creds.ShopDomain, products, stats)
	}

	return products, stats, nil
}

// InvalidateCache descarta o catálogo em cache de uma loja. O orquestrador
// chama após cada execução, já que os preços acabaram de mudar.
func (s *Service) InvalidateCache(shop string) {
	if s.cache != nil {
		s.cache.Invalidate(shop)
	}
}

// fetchAllPages acumula as edges cruas de todas as páginas do catálogo
func (s *Service) fetchAllPages(ctx context.Context, creds shopifyclient.ShopCredentials, stats *domain.ScanStats) ([]shopifydomain.ProductEdge, string, error) {
	pageSize := s.pageSize()

	var (
		edges        []shopifydomain.ProductEdge
		cursor       *string
		currencyCode string
	)

	for {
		page, err := s.client.ListProducts(ctx, creds, cursor, pageSize)
		if err != nil {
			// Falha na primeira página é fatal; depois disso seguimos em
			// modo degradado com o que já foi acumulado
			if stats.PagesFetched == 0 {
				return nil, "", err
			}

			logrus.WithError(err).WithFields(logrus.Fields{
				"shop":  creds.ShopDomain,
				"page":  stats.PagesFetched + 1,
				"edges": len(edges),
			}).Warn("Erro ao buscar página do catálogo, seguindo com resultado parcial")

			stats.Partial = true
			break
		}

		stats.PagesFetched++
		edges = append(edges, page.Edges...)

		if page.CurrencyCode != "" {
			currencyCode = page.CurrencyCode
		}

		if !page.PageInfo.HasNextPage || page.PageInfo.EndCursor == nil {
			break
		}
		cursor = page.PageInfo.EndCursor
	}

	stats.TotalScanned = len(edges)

	return edges, currencyCode, nil
}

// filterEligible aplica os estágios de elegibilidade em um segundo passe
func (s *Service) filterEligible(edges []shopifydomain.ProductEdge, currencyCode string, stats *domain.ScanStats) []*domain.Product {
	products := make([]*domain.Product, 0, len(edges))

	for _, edge := range edges {
		node := edge.Node

		if node.FeaturedImage == nil || node.FeaturedImage.URL == "" {
			continue
		}
		stats.WithImage++

		if len(node.Variants.Edges) == 0 {
			continue
		}
		stats.WithVariant++

		variant := node.Variants.Edges[0].Node
		if variant.InventoryQuantity <= 0 {
			continue
		}
		stats.InStock++

		price, err := strconv.ParseFloat(variant.Price, 64)
		if err != nil || price <= 0 {
			logrus.WithFields(logrus.Fields{
				"product_id": node.ID,
				"price":      variant.Price,
			}).Warn("Produto com preço inválido, ignorando")
			continue
		}

		cost, estimated := resolveCost(variant, price)

		// Margem não positiva (custo >= preço) tornaria o desconto maior que
		// o preço de venda; produto fica fora do pool
		if cost >= price {
			stats.SkippedNonPositiveMargin++
			continue
		}

		var compareAt *float64
		if variant.CompareAtPrice != nil {
			if parsed, err := strconv.ParseFloat(*variant.CompareAtPrice, 64); err == nil {
				compareAt = &parsed
			}
		}

		stats.Eligible++
		products = append(products, &domain.Product{
			ID:                node.ID,
			Title:             node.Title,
			ImageURL:          node.FeaturedImage.URL,
			Cost:              cost,
			EstimatedCost:     estimated,
			SellingPrice:      price,
			CompareAtPrice:    compareAt,
			InventoryQuantity: variant.InventoryQuantity,
			VariantID:         variant.ID,
			VariantTitle:      variant.Title,
			CurrencyCode:      currencyCode,
		})
	}

	return products
}

func resolveCost(variant shopifydomain.VariantNode, price float64) (float64, bool) {
	if variant.InventoryItem.UnitCost != nil {
		if cost, err := strconv.ParseFloat(variant.InventoryItem.UnitCost.Amount, 64); err == nil && cost > 0 {
			return cost, false
		}
	}

	return price * estimatedCostRatio, true
}

func (s *Service) pageSize() int {
	pageSize := s.cfg.AutoDiscount.PageSize
	if pageSize < minPageSize {
		pageSize = minPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize
}
