package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dealing"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetDeals lista os negócios enriquecidos, filtrados por ?status= e ?period=
func GetDeals(service dealing.Dealer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.DealFilters{
			Status: r.URL.Query().Get("status"),
			Period: r.URL.Query().Get("period"),
		}

		deals, err := service.ListDeals(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
				"status": filters.Status,
				"period": filters.Period,
			}).Error("Erro ao listar negócios")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		if deals == nil {
			deals = []domain.EnrichedDeal{}
		}

		writeJSON(w, r, http.StatusOK, domain.DealsResponse{
			Success:   true,
			Data:      deals,
			Count:     len(deals),
			Timestamp: time.Now().UTC(),
		})
	}
}
