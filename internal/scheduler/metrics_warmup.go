package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// MetricsWarmupConfig representa a configuração do pré-aquecimento do cache de métricas
type MetricsWarmupConfig struct {
	CronSchedule string
	Periods      []domain.Period
	Enabled      bool
}

// MetricsWarmupService recalcula periodicamente os relatórios mais consultados
// para que o dashboard encontre o cache sempre quente
type MetricsWarmupService struct {
	scheduler      *gocron.Scheduler
	config         MetricsWarmupConfig
	metricsService reporting.MetricsService

	runMutex        sync.Mutex
	running         bool
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastErrors      map[domain.Period]string
}

func NewMetricsWarmupService(metricsService reporting.MetricsService, appConfig *config.Config) *MetricsWarmupService {
	warmupConfig := MetricsWarmupConfig{
		CronSchedule: appConfig.MetricsWarmup.CronSchedule,
		Periods:      canonicalPeriods(appConfig.MetricsWarmup.Periods),
		Enabled:      appConfig.MetricsWarmup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"periods":       warmupConfig.Periods,
		"enabled":       warmupConfig.Enabled,
	}).Info("Configuração do pré-aquecimento de métricas carregada")

	return &MetricsWarmupService{
		scheduler:      gocron.NewScheduler(domain.SaoPaulo),
		config:         warmupConfig,
		metricsService: metricsService,
		lastErrors:     make(map[domain.Period]string),
	}
}

// canonicalPeriods converte os tokens configurados, descartando repetições
func canonicalPeriods(tokens []string) []domain.Period {
	seen := make(map[domain.Period]bool)
	periods := make([]domain.Period, 0, len(tokens))

	for _, token := range tokens {
		period, ok := domain.ParsePeriod(token)
		if !ok {
			logrus.WithField("period", token).Warn("Período de pré-aquecimento desconhecido, ignorando")
			continue
		}
		if seen[period] {
			continue
		}
		seen[period] = true
		periods = append(periods, period)
	}

	return periods
}

// Start inicia o agendador
func (s *MetricsWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Pré-aquecimento de métricas desabilitado por configuração")
		return nil
	}

	if len(s.config.Periods) == 0 {
		logrus.Warn("Pré-aquecimento de métricas habilitado sem períodos válidos")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de pré-aquecimento de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmUp(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pré-aquecimento de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de pré-aquecimento de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// warmUp recalcula os períodos configurados em sequência. Execuções sobrepostas são ignoradas.
func (s *MetricsWarmupService) warmUp(ctx context.Context) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Pré-aquecimento de métricas já em andamento, ignorando")
		return
	}
	s.running = true

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "-"
	}
	startTime := time.Now()
	s.lastRunID = runID
	s.lastStartedAt = startTime
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando pré-aquecimento de métricas")

	errs := make(map[domain.Period]string)
	for _, period := range s.config.Periods {
		if ctx.Err() != nil {
			logger.Warn("Pré-aquecimento interrompido pelo encerramento da aplicação")
			break
		}

		if _, err := s.metricsService.Refresh(ctx, string(period)); err != nil {
			logger.WithError(err).WithField("period", period).Error("Erro ao pré-aquecer métricas")
			errs[period] = err.Error()
		}
	}

	s.runMutex.Lock()
	s.lastCompletedAt = time.Now()
	s.lastErrors = errs
	s.runMutex.Unlock()

	logger.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"periods":  len(s.config.Periods),
		"errors":   len(errs),
	}).Info("Pré-aquecimento de métricas concluído")
}

// TriggerManualSync dispara um pré-aquecimento fora do agendamento.
// Retorna false quando já existe uma execução em andamento.
func (s *MetricsWarmupService) TriggerManualSync(ctx context.Context) bool {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Pré-aquecimento de métricas já em andamento, ignorando solicitação manual")
		return false
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando pré-aquecimento manual de métricas")
	go s.warmUp(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *MetricsWarmupService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	lastErrors := make(map[string]string, len(s.lastErrors))
	for period, err := range s.lastErrors {
		lastErrors[string(period)] = err
	}

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"periods":           s.config.Periods,
		"running":           s.running,
		"last_run_id":       s.lastRunID,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_errors":       lastErrors,
	}
}
