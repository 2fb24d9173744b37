package domain

import "time"

// ShopSession é a sessão offline de uma loja, gravada na tabela
// shopify_sessions pelo app externo que faz o OAuth. Este serviço só lê.
type ShopSession struct {
	ID          string    `json:"id"`
	Shop        string    `json:"shop"`
	AccessToken string    `json:"-"`
	Scope       string    `json:"scope"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
