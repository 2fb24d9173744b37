package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
	"github.com/vfg2006/shopify-discount-api/internal/scheduler"
	"github.com/vfg2006/shopify-discount-api/internal/usecases/discounting"
	"github.com/vfg2006/shopify-discount-api/pkg/apiErrors"
	"github.com/vfg2006/shopify-discount-api/pkg/middleware"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AutoDiscountSyncService *scheduler.AutoDiscountSyncService
	Discounter              discounting.AutoDiscounter
}

// RunAutoDiscountRequest é o corpo opcional do disparo manual do ciclo
type RunAutoDiscountRequest struct {
	Shop  string `json:"shop,omitempty"`
	Count int    `json:"count,omitempty"`
}

// RunAutoDiscountJob executa manualmente o ciclo de descontos automáticos.
// Com "shop" no corpo, roda síncrono para a loja e devolve o relatório
// completo; sem "shop", dispara o ciclo de todas as lojas em background.
func RunAutoDiscountJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunAutoDiscountJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		var req RunAutoDiscountRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")

		if req.Shop != "" {
			report, err := services.Discounter.RunForShop(r.Context(), req.Shop, req.Count)
			if err != nil {
				logrus.WithError(err).WithField("shop", req.Shop).Error("Erro ao executar ciclo de descontos da loja")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao executar ciclo de descontos", map[string]any{
					"shop": req.Shop,
				})
				return
			}

			json.NewEncoder(w).Encode(report)
			return
		}

		if services.AutoDiscountSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de descontos automáticos não disponível", nil)
			return
		}

		// O ciclo completo pode demorar vários minutos; roda em background
		services.AutoDiscountSyncService.TriggerManualSync(context.Background())

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Ciclo de descontos automáticos iniciado com sucesso",
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || (userClaims.UserRoleID != middleware.RoleAdmin && userClaims.UserRoleID != middleware.RoleSupervisor) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores ou supervisores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"auto-discount": services.AutoDiscountSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
