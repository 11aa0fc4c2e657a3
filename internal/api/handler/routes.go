package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/safarind/umrah-marketplace-api/internal/api/handler/router"
	"github.com/safarind/umrah-marketplace-api/internal/scheduler"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/booking"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/discovery"
	"github.com/safarind/umrah-marketplace-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Packages(service discovery.DiscoveryService, authSecret string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/packages",
			Method:  http.MethodGet,
			Handler: ListPackages(service),
		},
		{
			Path:        "/v1/admin/packages",
			Method:      http.MethodGet,
			Handler:     AdminListPackages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authSecret)},
		},
	}
}

func Bookings(service booking.BookingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/bookings",
			Method:  http.MethodPost,
			Handler: CreateBooking(service),
		},
		{
			Path:    "/v1/bookings/prefill",
			Method:  http.MethodGet,
			Handler: GetPrefill(service),
		},
	}
}

func CronJobs(service *scheduler.ExpirySweepService, authSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/cron/expiry/run",
			Method:      http.MethodPost,
			Handler:     RunExpirySweep(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authSecret)},
		},
		{
			Path:        "/v1/admin/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authSecret)},
		},
	}
}
