package shopifyclient

import (
	"context"
	"fmt"

	shopifydomain "github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/domain"
)

const productVariantQuery = `
query GetProductByVariant($id: ID!) {
  productVariant(id: $id) {
    id
    product {
      id
    }
  }
}`

// GetProductIDByVariant resolve o id do produto dono de uma variante. Usado
// na reversão quando o lançamento do ledger não tem o product_id em cache.
func (c *ShopifyClient) GetProductIDByVariant(ctx context.Context, creds ShopCredentials, variantID string) (string, error) {
	variables := map[string]any{
		"id": variantID,
	}

	var data shopifydomain.ProductVariantData
	if err := c.execute(ctx, creds, productVariantQuery, variables, &data); err != nil {
		return "", err
	}

	if data.ProductVariant == nil {
		return "", fmt.Errorf("variante não encontrada: %s", variantID)
	}

	return data.ProductVariant.Product.ID, nil
}
