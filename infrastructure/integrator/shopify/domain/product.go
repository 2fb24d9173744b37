package domain

// Tipos espelhando a forma da query de produtos da Admin GraphQL API.

type MoneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type Image struct {
	URL string `json:"url"`
}

type InventoryItem struct {
	UnitCost *MoneyV2 `json:"unitCost"`
}

type VariantNode struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Price             string        `json:"price"`
	CompareAtPrice    *string       `json:"compareAtPrice"`
	InventoryQuantity int           `json:"inventoryQuantity"`
	InventoryItem     InventoryItem `json:"inventoryItem"`
}

type VariantEdge struct {
	Node VariantNode `json:"node"`
}

type ProductNode struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	FeaturedImage *Image `json:"featuredImage"`
	Variants      struct {
		Edges []VariantEdge `json:"edges"`
	} `json:"variants"`
}

type ProductEdge struct {
	Cursor string      `json:"cursor"`
	Node   ProductNode `json:"node"`
}

type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

// ProductPage é uma página da paginação por cursor do catálogo.
type ProductPage struct {
	Edges        []ProductEdge
	PageInfo     PageInfo
	CurrencyCode string
}

type ProductsQueryData struct {
	Shop struct {
		CurrencyCode string `json:"currencyCode"`
	} `json:"shop"`
	Products struct {
		Edges    []ProductEdge `json:"edges"`
		PageInfo PageInfo      `json:"pageInfo"`
	} `json:"products"`
}

type VariantsBulkUpdateData struct {
	ProductVariantsBulkUpdate struct {
		ProductVariants []struct {
			ID             string  `json:"id"`
			Price          string  `json:"price"`
			CompareAtPrice *string `json:"compareAtPrice"`
		} `json:"productVariants"`
		UserErrors []UserError `json:"userErrors"`
	} `json:"productVariantsBulkUpdate"`
}

type TagsAddData struct {
	TagsAdd struct {
		UserErrors []UserError `json:"userErrors"`
	} `json:"tagsAdd"`
}

type TagsRemoveData struct {
	TagsRemove struct {
		UserErrors []UserError `json:"userErrors"`
	} `json:"tagsRemove"`
}

type ProductVariantData struct {
	ProductVariant *struct {
		ID      string `json:"id"`
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
	} `json:"productVariant"`
}
