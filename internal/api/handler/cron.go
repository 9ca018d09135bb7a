package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMetricsWarmup = "metrics-warmup"
	CronJobTypeAll           = "all"
)

// ManualJob é uma rotina agendada que também pode ser disparada pela API
type ManualJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MetricsWarmupService ManualJob
}

func (s CronJobServices) jobs() map[string]ManualJob {
	jobs := make(map[string]ManualJob)
	if s.MetricsWarmupService != nil {
		jobs[CronJobTypeMetricsWarmup] = s.MetricsWarmupService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithField("type", cronType)
		jobs := services.jobs()

		var selected []string
		switch cronType {
		case CronJobTypeAll:
			for name := range jobs {
				selected = append(selected, name)
			}
		case CronJobTypeMetricsWarmup:
			if jobs[cronType] == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de pré-aquecimento de métricas não disponível", nil)
				return
			}
			selected = []string{cronType}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: metrics-warmup, all", nil)
			return
		}

		started := make([]string, 0, len(selected))
		for _, name := range selected {
			if jobs[name].TriggerManualSync(r.Context()) {
				started = append(started, name)
			}
		}

		if len(selected) > 0 && len(started) == 0 {
			logger.Warn("Cron job já em execução")
			apiErrors.WriteError(w, apiErrors.ErrAlreadyExists, "Cron job já em execução", nil)
			return
		}

		logger.WithField("started", started).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
