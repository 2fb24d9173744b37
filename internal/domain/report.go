package domain

import "time"

const (
	MutationStatusSuccess = "success"
	MutationStatusError   = "error"
)

// MutationResult é o resultado por item de uma aplicação ou reversão de
// desconto. Erros do vendor nunca estouram além do mutador; viram resultado.
type MutationResult struct {
	Status       string    `json:"status"`
	ProductID    string    `json:"product_id"`
	ProductTitle string    `json:"product_title"`
	VariantID    string    `json:"variant_id"`
	Message      string    `json:"message,omitempty"`
	Discount     *Discount `json:"discount,omitempty"`
}

// ShopDiscountStatus resume o estado do ledger de descontos de uma loja
type ShopDiscountStatus struct {
	Shop            string `json:"shop"`
	TotalLogs       int64  `json:"total_logs"`
	ActiveDiscounts int64  `json:"active_discounts"`
}

// RunReport é o relatório agregado de uma execução do orquestrador para uma
// loja: contagens das fases de reversão e aplicação mais o detalhe por item.
type RunReport struct {
	RunID         string           `json:"run_id"`
	Shop          string           `json:"shop"`
	StartedAt     time.Time        `json:"started_at"`
	CompletedAt   time.Time        `json:"completed_at"`
	Reverted      int              `json:"reverted"`
	RevertFailed  int              `json:"revert_failed"`
	Applied       int              `json:"applied"`
	ApplyFailed   int              `json:"apply_failed"`
	Errors        []string         `json:"errors"`
	ScanStats     *ScanStats       `json:"scan_stats,omitempty"`
	RevertResults []MutationResult `json:"revert_results"`
	ApplyResults  []MutationResult `json:"apply_results"`
	Message       string           `json:"message,omitempty"`
}
