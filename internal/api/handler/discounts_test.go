package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
	discountingmocks "github.com/vfg2006/shopify-discount-api/internal/usecases/discounting/mocks"
	"go.uber.org/mock/gomock"
)

func requestWithShopParam(method, target, shop string) *http.Request {
	req := httptest.NewRequest(method, target, nil)

	params := httprouter.Params{{Key: "shop", Value: shop}}
	ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)

	return req.WithContext(ctx)
}

func TestListShopDiscounts(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		shop           string
		setup          func(service *discountingmocks.MockAutoDiscounter)
		expectedStatus int
		validate       func(t *testing.T, body []byte)
	}{
		{
			name:   "Lista paginada com valores padrão",
			target: "/v1/shops/loja.myshopify.com/discounts",
			shop:   "loja.myshopify.com",
			setup: func(service *discountingmocks.MockAutoDiscounter) {
				entries := []*domain.DiscountLogEntry{
					{ID: 1, Shop: "loja.myshopify.com", ProductTitle: "Óculos de Sol"},
				}
				service.EXPECT().
					ListShopDiscounts("loja.myshopify.com", uint64(50), uint64(0)).
					Return(entries, int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var response DiscountListResponse
				assert.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, int64(1), response.Total)
				assert.Len(t, response.Entries, 1)
				assert.Equal(t, "Óculos de Sol", response.Entries[0].ProductTitle)
			},
		},
		{
			name:   "Limite acima do teto é truncado",
			target: "/v1/shops/loja.myshopify.com/discounts?limit=9999&offset=10",
			shop:   "loja.myshopify.com",
			setup: func(service *discountingmocks.MockAutoDiscounter) {
				service.EXPECT().
					ListShopDiscounts("loja.myshopify.com", uint64(200), uint64(10)).
					Return([]*domain.DiscountLogEntry{}, int64(0), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Erro do serviço vira 500",
			target: "/v1/shops/loja.myshopify.com/discounts",
			shop:   "loja.myshopify.com",
			setup: func(service *discountingmocks.MockAutoDiscounter) {
				service.EXPECT().
					ListShopDiscounts("loja.myshopify.com", uint64(50), uint64(0)).
					Return(nil, int64(0), assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Loja ausente é rejeitada",
			target:         "/v1/shops//discounts",
			shop:           "",
			setup:          func(service *discountingmocks.MockAutoDiscounter) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := discountingmocks.NewMockAutoDiscounter(ctrl)
			tt.setup(service)

			recorder := httptest.NewRecorder()
			ListShopDiscounts(service).ServeHTTP(recorder, requestWithShopParam(http.MethodGet, tt.target, tt.shop))

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.validate != nil {
				tt.validate(t, recorder.Body.Bytes())
			}
		})
	}
}

func TestGetShopDiscountStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := discountingmocks.NewMockAutoDiscounter(ctrl)
	service.EXPECT().
		GetShopDiscountStatus("loja.myshopify.com").
		Return(&domain.ShopDiscountStatus{
			Shop:            "loja.myshopify.com",
			TotalLogs:       120,
			ActiveDiscounts: 6,
		}, nil)

	recorder := httptest.NewRecorder()
	req := requestWithShopParam(http.MethodGet, "/v1/shops/loja.myshopify.com/discounts/status", "loja.myshopify.com")

	GetShopDiscountStatus(service).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var status domain.ShopDiscountStatus
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &status))
	assert.Equal(t, int64(120), status.TotalLogs)
	assert.Equal(t, int64(6), status.ActiveDiscounts)
}
