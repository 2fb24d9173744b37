package domain

// Product representa um produto do catálogo da loja, já normalizado a partir
// da Admin API. O serviço não é dono deste dado; ele é apenas observado.
type Product struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	ImageURL          string   `json:"image_url"`
	Cost              float64  `json:"cost"`
	EstimatedCost     bool     `json:"estimated_cost"`
	SellingPrice      float64  `json:"selling_price"`
	CompareAtPrice    *float64 `json:"compare_at_price"`
	InventoryQuantity int      `json:"inventory_quantity"`
	VariantID         string   `json:"variant_id"`
	VariantTitle      string   `json:"variant_title"`
	CurrencyCode      string   `json:"currency_code"`
}

// ScanStats registra os totais de cada estágio do filtro de elegibilidade,
// para observabilidade do fetch de catálogo. Partial indica que a paginação
// foi interrompida por erro e o resultado é parcial.
type ScanStats struct {
	PagesFetched             int  `json:"pages_fetched"`
	TotalScanned             int  `json:"total_scanned"`
	WithImage                int  `json:"with_image"`
	WithVariant              int  `json:"with_variant"`
	InStock                  int  `json:"in_stock"`
	SkippedNonPositiveMargin int  `json:"skipped_non_positive_margin"`
	Eligible                 int  `json:"eligible"`
	Partial                  bool `json:"partial"`
}
