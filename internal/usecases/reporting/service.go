package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/pipedrive"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const cacheKeyPrefix = "metrics_"

// CacheKey é a chave de cache do relatório de um período canônico
func CacheKey(period domain.Period) string {
	return cacheKeyPrefix + string(period)
}

type Service struct {
	pipedrive pipedrive.PipedriveIntegrator
	cache     cache.Cache[*domain.MetricsReport]
	ttl       time.Duration
	now       func() time.Time
}

func NewService(
	cfg *config.Config,
	pipedriveService pipedrive.PipedriveIntegrator,
	reportCache cache.Cache[*domain.MetricsReport],
) MetricsService {
	return &Service{
		pipedrive: pipedriveService,
		cache:     reportCache,
		ttl:       cfg.Cache.TTL,
		now:       time.Now,
	}
}

func (s *Service) GetMetrics(ctx context.Context, token string) (*domain.MetricsResult, error) {
	period := domain.CanonicalPeriod(token)
	dateRange := domain.ResolvePeriod(string(period), s.now())

	if report, ok := s.cache.Get(ctx, CacheKey(period)); ok && report != nil {
		logrus.WithField("period", period).Debug("metrics: relatório servido do cache")
		return &domain.MetricsResult{
			Report:    report,
			Period:    period,
			DateRange: dateRange,
			Cached:    true,
		}, nil
	}

	return s.compute(ctx, period, dateRange)
}

func (s *Service) Refresh(ctx context.Context, token string) (*domain.MetricsResult, error) {
	period := domain.CanonicalPeriod(token)
	return s.compute(ctx, period, domain.ResolvePeriod(string(period), s.now()))
}

func (s *Service) ClearCache(ctx context.Context, keys ...string) {
	s.cache.Clear(ctx, keys...)
}

func (s *Service) compute(ctx context.Context, period domain.Period, dateRange domain.DateRange) (*domain.MetricsResult, error) {
	start := time.Now()

	var (
		deals      []domain.Deal
		activities []domain.Activity
		users      []domain.User
		pipelines  []domain.Pipeline

		dealsErr, activitiesErr, usersErr, pipelinesErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		deals, dealsErr = s.pipedrive.FetchDeals(ctx)
	}()

	go func() {
		defer wg.Done()
		activities, activitiesErr = s.pipedrive.FetchActivities(ctx, dateRange.Start, dateRange.End)
	}()

	go func() {
		defer wg.Done()
		users, usersErr = s.pipedrive.FetchUsers(ctx)
	}()

	go func() {
		defer wg.Done()
		pipelines, pipelinesErr = s.pipedrive.FetchPipelines(ctx)
	}()

	wg.Wait()

	if dealsErr != nil {
		return nil, fmt.Errorf("erro ao buscar negócios: %w", dealsErr)
	}
	if activitiesErr != nil {
		return nil, fmt.Errorf("erro ao buscar atividades: %w", activitiesErr)
	}
	if usersErr != nil {
		return nil, fmt.Errorf("erro ao buscar usuários: %w", usersErr)
	}
	if pipelinesErr != nil {
		return nil, fmt.Errorf("erro ao buscar funis: %w", pipelinesErr)
	}

	report := ComputeMetrics(deals, activities, users, pipelines, dateRange.Start, dateRange.End, s.now())

	s.cache.Set(ctx, CacheKey(period), report, s.ttl)

	logrus.WithFields(logrus.Fields{
		"period":     period,
		"deals":      len(deals),
		"activities": len(activities),
		"duration":   time.Since(start).String(),
	}).Info("metrics: relatório recalculado")

	return &domain.MetricsResult{
		Report:    report,
		Period:    period,
		DateRange: dateRange,
		Cached:    false,
	}, nil
}
