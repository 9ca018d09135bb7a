package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetMetrics devolve o relatório do período informado em ?period=
func GetMetrics(service reporting.MetricsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")

		result, err := service.GetMetrics(r.Context(), period)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("period", period).Error("Erro ao calcular métricas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.MetricsResponse{
			Success:   true,
			Data:      result.Report,
			Timestamp: time.Now().UTC(),
			Cached:    result.Cached,
			Period:    result.Period,
			DateRange: result.DateRange.Response(),
		})
	}
}

// ClearCache remove uma entrada do cache de métricas, ou todas quando ?key= não é informado.
// Aceita tanto a chave completa (metrics_month) quanto o período (mes).
func ClearCache(service reporting.MetricsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("key")

		if key == "" {
			service.ClearCache(r.Context())
			log.ForContext(r.Context()).Info("Cache de métricas limpo")

			writeJSON(w, r, http.StatusOK, map[string]any{
				"success": true,
				"message": "Cache limpo",
			})
			return
		}

		if period, ok := domain.ParsePeriod(key); ok {
			key = reporting.CacheKey(period)
		}

		service.ClearCache(r.Context(), key)
		log.ForContext(r.Context()).WithField("key", key).Info("Entrada do cache de métricas removida")

		writeJSON(w, r, http.StatusOK, map[string]any{
			"success": true,
			"message": "Entrada do cache removida",
			"key":     key,
		})
	}
}
