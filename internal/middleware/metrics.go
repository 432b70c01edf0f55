package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// InitMetrics creates the HTTP metrics collector for serviceName on reg.
// Pass prometheus.DefaultRegisterer in production so /metrics also exposes
// the service and cache collectors.
func InitMetrics(serviceName string, reg prometheus.Registerer) *fiberprometheus.FiberPrometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return fiberprometheus.NewWithRegistry(reg, serviceName, "http", "", nil)
}

// MetricsMiddleware records request count and latency for every route.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
