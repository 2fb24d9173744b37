package handler

import (
	"net/http"

	"github.com/vfg2006/shopify-discount-api/internal/api/handler/router"
	"github.com/vfg2006/shopify-discount-api/internal/usecases/authenticating"
	"github.com/vfg2006/shopify-discount-api/internal/usecases/discounting"
	"github.com/vfg2006/shopify-discount-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Discounts(service discounting.AutoDiscounter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/shops/:shop/discounts",
			Method:      http.MethodGet,
			Handler:     ListShopDiscounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/shops/:shop/discounts/status",
			Method:      http.MethodGet,
			Handler:     GetShopDiscountStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/auto-discount/run",
			Method:      http.MethodPost,
			Handler:     RunAutoDiscountJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
