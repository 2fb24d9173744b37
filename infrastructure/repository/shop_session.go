package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shopify-discount-api/infrastructure/database/postgres"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
)

const shopSessionsTable = "shopify_sessions"

// ShopSessionRepository lê as sessões offline gravadas pelo app externo que
// faz o OAuth com a Shopify. Este serviço nunca escreve nesta tabela.
type ShopSessionRepository interface {
	ListShops() ([]string, error)
	GetByShop(shop string) (*domain.ShopSession, error)
}

type shopSessionRepository struct {
	conn *postgres.Connection
}

func NewShopSessionRepository(conn *postgres.Connection) ShopSessionRepository {
	return &shopSessionRepository{
		conn: conn,
	}
}

func (r *shopSessionRepository) ListShops() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT shop").
		From(shopSessionsTable).
		OrderBy("shop ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	shops := make([]string, 0)
	for rows.Next() {
		var shop string
		if err := rows.Scan(&shop); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		shops = append(shops, shop)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return shops, nil
}

func (r *shopSessionRepository) GetByShop(shop string) (*domain.ShopSession, error) {
	query, args, err := squirrel.
		Select("id, shop, access_token, scope, created_at, updated_at").
		From(shopSessionsTable).
		Where(squirrel.Eq{"shop": shop}).
		OrderBy("updated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	session := &domain.ShopSession{}
	err = r.conn.QueryRow(query, args...).Scan(
		&session.ID,
		&session.Shop,
		&session.AccessToken,
		&session.Scope,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar sessão da loja: %w", err)
	}

	return session, nil
}
