package discounting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/shopify-discount-api/infrastructure/repository"
	"github.com/vfg2006/shopify-discount-api/internal/config"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
)

// PriceMutator executa as mutações de preço na Shopify e mantém o ledger
// consistente com elas. A tag é best-effort: falha em tag não desfaz a
// mudança de preço.
type PriceMutator interface {
	Apply(ctx context.Context, creds shopifyclient.ShopCredentials, shop string, product *domain.Product, discount *domain.Discount, runID string) domain.MutationResult
	Revert(ctx context.Context, creds shopifyclient.ShopCredentials, entry *domain.DiscountLogEntry) domain.MutationResult
}

type Mutator struct {
	cfg        *config.Config
	client     shopifyclient.Client
	ledgerRepo repository.DiscountLogRepository
}

func NewMutator(
	cfg *config.Config,
	client shopifyclient.Client,
	ledgerRepo repository.DiscountLogRepository,
) *Mutator {
	return &Mutator{
		cfg:        cfg,
		client:     client,
		ledgerRepo: ledgerRepo,
	}
}

// Apply aplica o desconto na variante do produto e registra o lançamento no
// ledger. O compareAtPrice recebe o preço original para a vitrine exibir o
// preço riscado. Falha na persistência do ledger falha o item: um desconto
// aplicado sem lançamento nunca seria revertido.
func (m *Mutator) Apply(
	ctx context.Context,
	creds shopifyclient.ShopCredentials,
	shop string,
	product *domain.Product,
	discount *domain.Discount,
	runID string,
) domain.MutationResult {
	compareAt := product.SellingPrice

	err := m.client.UpdateVariantPrice(ctx, creds, product.ID, product.VariantID, discount.DiscountedPrice, &compareAt)
	if err != nil {
		return failure(product.ID, product.Title, product.VariantID,
			fmt.Sprintf("erro ao atualizar preço: %v", err))
	}

	if err := m.client.AddTags(ctx, creds, product.ID, []string{m.cfg.AutoDiscount.TagName}); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"shop":       shop,
			"product_id": product.ID,
		}).Warn("Erro ao adicionar tag de desconto, seguindo sem tag")
	}

	entry := &domain.DiscountLogEntry{
		Shop:               shop,
		RunID:              runID,
		ProductID:          product.ID,
		ProductTitle:       product.Title,
		VariantID:          product.VariantID,
		VariantTitle:       product.VariantTitle,
		OriginalPrice:      product.SellingPrice,
		DiscountedPrice:    discount.DiscountedPrice,
		CompareAtPrice:     product.CompareAtPrice,
		CostPrice:          product.Cost,
		EstimatedCost:      product.EstimatedCost,
		ProfitMargin:       discount.ProfitMargin,
		DiscountPercentage: discount.DiscountPercentage,
		SavingsAmount:      discount.SavingsAmount,
		SavingsPercentage:  discount.SavingsPercentage,
		CurrencyCode:       product.CurrencyCode,
		ImageURL:           product.ImageURL,
		InventoryQuantity:  product.InventoryQuantity,
		IsAutoDiscount:     true,
		IsReverted:         false,
		Notes:              domain.DiscountNotesApplied,
	}

	if _, err := m.ledgerRepo.Create(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"shop":       shop,
			"product_id": product.ID,
			"run_id":     runID,
		}).Error("Desconto aplicado na Shopify mas não registrado no ledger")

		return failure(product.ID, product.Title, product.VariantID,
			fmt.Sprintf("erro ao registrar lançamento no ledger: %v", err))
	}

	return domain.MutationResult{
		Status:       domain.MutationStatusSuccess,
		ProductID:    product.ID,
		ProductTitle: product.Title,
		VariantID:    product.VariantID,
		Discount:     discount,
	}
}

// Revert restaura o preço original de um lançamento e o marca como
// revertido. É idempotente: lançamento já revertido não gera nova chamada
// externa.
func (m *Mutator) Revert(
	ctx context.Context,
	creds shopifyclient.ShopCredentials,
	entry *domain.DiscountLogEntry,
) domain.MutationResult {
	if entry.IsReverted {
		return domain.MutationResult{
			Status:       domain.MutationStatusSuccess,
			ProductID:    entry.ProductID,
			ProductTitle: entry.ProductTitle,
			VariantID:    entry.VariantID,
			Message:      "lançamento já revertido",
		}
	}

	productID := entry.ProductID
	if productID == "" {
		// Lançamentos antigos não guardavam o ID do produto
		resolved, err := m.client.GetProductIDByVariant(ctx, creds, entry.VariantID)
		if err != nil {
			return failure(entry.ProductID, entry.ProductTitle, entry.VariantID,
				fmt.Sprintf("erro ao resolver produto da variante: %v", err))
		}
		productID = resolved
	}

	// CompareAtPrice volta a nulo: o preço riscado só existe enquanto o
	// desconto está ativo
	err := m.client.UpdateVariantPrice(ctx, creds, productID, entry.VariantID, entry.OriginalPrice, nil)
	if err != nil {
		return failure(entry.ProductID, entry.ProductTitle, entry.VariantID,
			fmt.Sprintf("erro ao restaurar preço: %v", err))
	}

	if err := m.client.RemoveTags(ctx, creds, productID, []string{m.cfg.AutoDiscount.TagName}); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"shop":       entry.Shop,
			"product_id": productID,
		}).Warn("Erro ao remover tag de desconto, seguindo sem remover")
	}

	if err := m.ledgerRepo.MarkReverted(entry.ID, time.Now(), domain.DiscountNotesReverted); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"shop":   entry.Shop,
			"log_id": entry.ID,
		}).Error("Preço restaurado na Shopify mas lançamento não marcado como revertido")

		return failure(entry.ProductID, entry.ProductTitle, entry.VariantID,
			fmt.Sprintf("erro ao marcar lançamento como revertido: %v", err))
	}

	return domain.MutationResult{
		Status:       domain.MutationStatusSuccess,
		ProductID:    entry.ProductID,
		ProductTitle: entry.ProductTitle,
		VariantID:    entry.VariantID,
	}
}

func failure(productID, productTitle, variantID, message string) domain.MutationResult {
	return domain.MutationResult{
		Status:       domain.MutationStatusError,
		ProductID:    productID,
		ProductTitle: productTitle,
		VariantID:    variantID,
		Message:      message,
	}
}
