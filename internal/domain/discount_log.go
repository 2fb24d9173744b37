package domain

import "time"

// Marcadores de estado gravados no campo notes de cada lançamento.
const (
	DiscountNotesApplied  = "Desconto automático aplicado"
	DiscountNotesReverted = "Desconto automático revertido"
)

// DiscountLogEntry é um lançamento do ledger de descontos: uma linha por
// evento de mutação de preço. A reversão muta a linha original (is_reverted,
// reverted_at, notes) em vez de criar uma linha espelhada.
type DiscountLogEntry struct {
	ID                 int64      `json:"id"`
	Shop               string     `json:"shop"`
	RunID              string     `json:"run_id"`
	ProductID          string     `json:"product_id"`
	ProductTitle       string     `json:"product_title"`
	VariantID          string     `json:"variant_id"`
	VariantTitle       string     `json:"variant_title"`
	OriginalPrice      float64    `json:"original_price"`
	DiscountedPrice    float64    `json:"discounted_price"`
	CompareAtPrice     *float64   `json:"compare_at_price"`
	CostPrice          float64    `json:"cost_price"`
	EstimatedCost      bool       `json:"estimated_cost"`
	ProfitMargin       float64    `json:"profit_margin"`
	DiscountPercentage int        `json:"discount_percentage"`
	SavingsAmount      float64    `json:"savings_amount"`
	SavingsPercentage  float64    `json:"savings_percentage"`
	CurrencyCode       string     `json:"currency_code"`
	ImageURL           string     `json:"image_url"`
	InventoryQuantity  int        `json:"inventory_quantity"`
	IsAutoDiscount     bool       `json:"is_auto_discount"`
	IsReverted         bool       `json:"is_reverted"`
	RevertedAt         *time.Time `json:"reverted_at"`
	Notes              string     `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
