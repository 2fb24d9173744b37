package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
	"github.com/vfg2006/shopify-discount-api/internal/usecases/discounting"
	"github.com/vfg2006/shopify-discount-api/pkg/apiErrors"
)

const (
	defaultDiscountsPageSize = 50
	maxDiscountsPageSize     = 200
)

// DiscountListResponse é a resposta paginada do ledger de uma loja
type DiscountListResponse struct {
	Shop    string                    `json:"shop"`
	Total   int64                     `json:"total"`
	Limit   uint64                    `json:"limit"`
	Offset  uint64                    `json:"offset"`
	Entries []*domain.DiscountLogEntry `json:"entries"`
}

// ListShopDiscounts lista os lançamentos do ledger de descontos de uma loja
func ListShopDiscounts(service discounting.AutoDiscounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListShopDiscounts")

		shop := httprouter.ParamsFromContext(r.Context()).ByName("shop")
		if shop == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Loja não especificada", nil)
			return
		}

		limit := parseQueryUint(r, "limit", defaultDiscountsPageSize)
		if limit > maxDiscountsPageSize {
			limit = maxDiscountsPageSize
		}
		offset := parseQueryUint(r, "offset", 0)

		entries, total, err := service.ListShopDiscounts(shop, limit, offset)
		if err != nil {
			logrus.WithError(err).WithField("shop", shop).Error("Erro ao listar lançamentos do ledger")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar descontos da loja", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DiscountListResponse{
			Shop:    shop,
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			Entries: entries,
		})
	}
}

// GetShopDiscountStatus resume o estado do ledger de uma loja
func GetShopDiscountStatus(service discounting.AutoDiscounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetShopDiscountStatus")

		shop := httprouter.ParamsFromContext(r.Context()).ByName("shop")
		if shop == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Loja não especificada", nil)
			return
		}

		status, err := service.GetShopDiscountStatus(shop)
		if err != nil {
			logrus.WithError(err).WithField("shop", shop).Error("Erro ao consultar status do ledger")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar status de descontos da loja", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

func parseQueryUint(r *http.Request, name string, fallback uint64) uint64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fallback
	}

	return value
}
