package shopifyclient

import (
	"context"

	shopifydomain "github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/domain"
)

const productsQuery = `
query ListProducts($first: Int!, $after: String, $query: String) {
  shop {
    currencyCode
  }
  products(first: $first, after: $after, query: $query) {
    edges {
      cursor
      node {
        id
        title
        featuredImage {
          url
        }
        variants(first: 1) {
          edges {
            node {
              id
              title
              price
              compareAtPrice
              inventoryQuantity
              inventoryItem {
                unitCost {
                  amount
                  currencyCode
                }
              }
            }
          }
        }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// ListProducts busca uma página do catálogo de produtos ativos da loja.
func (c *ShopifyClient) ListProducts(ctx context.Context, creds ShopCredentials, cursor *string, pageSize int) (*shopifydomain.ProductPage, error) {
	variables := map[string]any{
		"first": pageSize,
		"query": "status:active",
	}
	if cursor != nil {
		variables["after"] = *cursor
	}

	var data shopifydomain.ProductsQueryData
	if err := c.execute(ctx, creds, productsQuery, variables, &data); err != nil {
		return nil, err
	}

	return &shopifydomain.ProductPage{
		Edges:        data.Products.Edges,
		PageInfo:     data.Products.PageInfo,
		CurrencyCode: data.Shop.CurrencyCode,
	}, nil
}
