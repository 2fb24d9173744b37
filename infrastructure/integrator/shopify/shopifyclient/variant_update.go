package shopifyclient

import (
	"context"
	"strconv"

	shopifydomain "github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/domain"
)

const variantsBulkUpdateMutation = `
mutation UpdateVariantPrice($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
    productVariants {
      id
      price
      compareAtPrice
    }
    userErrors {
      field
      message
    }
  }
}`

// UpdateVariantPrice define o preço (e opcionalmente o compareAtPrice) de uma
// variante. compareAtPrice nil limpa o preço de comparação na loja.
func (c *ShopifyClient) UpdateVariantPrice(ctx context.Context, creds ShopCredentials, productID, variantID string, price float64, compareAtPrice *float64) error {
	variant := map[string]any{
		"id":    variantID,
		"price": formatPrice(price),
	}

	// compareAtPrice precisa ser enviado explicitamente como null para limpar
	if compareAtPrice != nil {
		variant["compareAtPrice"] = formatPrice(*compareAtPrice)
	} else {
		variant["compareAtPrice"] = nil
	}

	variables := map[string]any{
		"productId": productID,
		"variants":  []map[string]any{variant},
	}

	var data shopifydomain.VariantsBulkUpdateData
	if err := c.execute(ctx, creds, variantsBulkUpdateMutation, variables, &data); err != nil {
		return err
	}

	if userErrors := data.ProductVariantsBulkUpdate.UserErrors; len(userErrors) > 0 {
		return &shopifydomain.UserErrorsError{
			Action: "productVariantsBulkUpdate",
			Errors: userErrors,
		}
	}

	return nil
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
