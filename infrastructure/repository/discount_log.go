package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/shopify-discount-api/infrastructure/database/postgres"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
)

const (
	discountLogsTable = "discount_logs"

	discountLogColumns = `id, shop, run_id, product_id, product_title, variant_id, variant_title,
		original_price, discounted_price, compare_at_price, cost_price, estimated_cost,
		profit_margin, discount_percentage, savings_amount, savings_percentage,
		currency_code, image_url, inventory_quantity, is_auto_discount,
		is_reverted, reverted_at, notes, created_at, updated_at`
)

type DiscountLogRepository interface {
	Create(entry *domain.DiscountLogEntry) (*domain.DiscountLogEntry, error)
	MarkReverted(id int64, revertedAt time.Time, notes string) error
	ListAppliedSince(shop string, since time.Time) ([]*domain.DiscountLogEntry, error)
	ListByShop(shop string, limit, offset uint64) ([]*domain.DiscountLogEntry, error)
	CountByShop(shop string) (int64, error)
	CountAppliedByShop(shop string) (int64, error)
}

type discountLogRepository struct {
	conn *postgres.Connection
}

func NewDiscountLogRepository(conn *postgres.Connection) DiscountLogRepository {
	return &discountLogRepository{
		conn: conn,
	}
}

func (r *discountLogRepository) Create(entry *domain.DiscountLogEntry) (*domain.DiscountLogEntry, error) {
	query, args, err := squirrel.
		Insert(discountLogsTable).
		Columns(
			"shop", "run_id", "product_id", "product_title", "variant_id", "variant_title",
			"original_price", "discounted_price", "compare_at_price", "cost_price", "estimated_cost",
			"profit_margin", "discount_percentage", "savings_amount", "savings_percentage",
			"currency_code", "image_url", "inventory_quantity", "is_auto_discount",
			"is_reverted", "notes",
		).
		Values(
			entry.Shop, entry.RunID, entry.ProductID, entry.ProductTitle, entry.VariantID, entry.VariantTitle,
			entry.OriginalPrice, entry.DiscountedPrice, entry.CompareAtPrice, entry.CostPrice, entry.EstimatedCost,
			entry.ProfitMargin, entry.DiscountPercentage, entry.SavingsAmount, entry.SavingsPercentage,
			entry.CurrencyCode, entry.ImageURL, entry.InventoryQuantity, entry.IsAutoDiscount,
			entry.IsReverted, entry.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir lançamento no ledger: %w", err)
	}

	return entry, nil
}

// MarkReverted é a transição de estado única do lançamento: muta a linha
// original em vez de criar uma linha espelhada de reversão.
func (r *discountLogRepository) MarkReverted(id int64, revertedAt time.Time, notes string) error {
	query, args, err := squirrel.
		Update(discountLogsTable).
		Set("is_reverted", true).
		Set("reverted_at", revertedAt).
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao marcar lançamento como revertido: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("lançamento não encontrado: %d", id)
	}

	return nil
}

// ListAppliedSince busca os lançamentos "aplicado, não revertido" da loja
// dentro da janela de reversão.
func (r *discountLogRepository) ListAppliedSince(shop string, since time.Time) ([]*domain.DiscountLogEntry, error) {
	query, args, err := squirrel.
		Select(discountLogColumns).
		From(discountLogsTable).
		Where(squirrel.Eq{"shop": shop, "is_auto_discount": true, "is_reverted": false}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *discountLogRepository) ListByShop(shop string, limit, offset uint64) ([]*domain.DiscountLogEntry, error) {
	query, args, err := squirrel.
		Select(discountLogColumns).
		From(discountLogsTable).
		Where(squirrel.Eq{"shop": shop}).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *discountLogRepository) CountByShop(shop string) (int64, error) {
	return r.count(squirrel.Eq{"shop": shop})
}

func (r *discountLogRepository) CountAppliedByShop(shop string) (int64, error) {
	return r.count(squirrel.Eq{"shop": shop, "is_auto_discount": true, "is_reverted": false})
}

func (r *discountLogRepository) count(where squirrel.Eq) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(discountLogsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar lançamentos: %w", err)
	}

	return total, nil
}

func (r *discountLogRepository) queryEntries(query string, args []interface{}) ([]*domain.DiscountLogEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.DiscountLogEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func scanEntry(rows *sql.Rows) (*domain.DiscountLogEntry, error) {
	entry := &domain.DiscountLogEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.Shop,
		&entry.RunID,
		&entry.ProductID,
		&entry.ProductTitle,
		&entry.VariantID,
		&entry.VariantTitle,
		&entry.OriginalPrice,
		&entry.DiscountedPrice,
		&entry.CompareAtPrice,
		&entry.CostPrice,
		&entry.EstimatedCost,
		&entry.ProfitMargin,
		&entry.DiscountPercentage,
		&entry.SavingsAmount,
		&entry.SavingsPercentage,
		&entry.CurrencyCode,
		&entry.ImageURL,
		&entry.InventoryQuantity,
		&entry.IsAutoDiscount,
		&entry.IsReverted,
		&entry.RevertedAt,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
