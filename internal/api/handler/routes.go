package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dealing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
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

func Metrics(service reporting.MetricsService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    "/api/cache",
			Method:  http.MethodDelete,
			Handler: ClearCache(service),
		},
	}
}

func Deals(service dealing.Dealer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/deals",
			Method:  http.MethodGet,
			Handler: GetDeals(service),
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
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
