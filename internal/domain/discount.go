package domain

// Discount é o objeto de valor derivado pelo gerador de descontos.
// Invariante: DiscountedPrice >= custo do produto, por construção —
// o desconto incide apenas sobre o lucro, nunca abaixo do custo.
type Discount struct {
	ProfitMargin       float64 `json:"profit_margin"`
	DiscountPercentage int     `json:"discount_percentage"`
	OriginalPrice      float64 `json:"original_price"`
	DiscountedPrice    float64 `json:"discounted_price"`
	SavingsAmount      float64 `json:"savings_amount"`
	SavingsPercentage  float64 `json:"savings_percentage"`
}
