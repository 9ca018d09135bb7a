package dealing

//go:generate mockgen -source=service.go -destination=mocks/mock_dealing.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/pipedrive"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Dealer interface {
	// ListDeals devolve os negócios enriquecidos com nomes, filtrados por status e período
	ListDeals(ctx context.Context, filters domain.DealFilters) ([]domain.EnrichedDeal, error)
}

type Service struct {
	pipedrive pipedrive.PipedriveIntegrator
	now       func() time.Time
}

func NewService(pipedriveService pipedrive.PipedriveIntegrator) Dealer {
	return &Service{
		pipedrive: pipedriveService,
		now:       time.Now,
	}
}

func (s *Service) ListDeals(ctx context.Context, filters domain.DealFilters) ([]domain.EnrichedDeal, error) {
	var (
		deals     []domain.Deal
		users     []domain.User
		pipelines []domain.Pipeline

		dealsErr, usersErr, pipelinesErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		deals, dealsErr = s.pipedrive.FetchDeals(ctx)
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
	if usersErr != nil {
		return nil, fmt.Errorf("erro ao buscar usuários: %w", usersErr)
	}
	if pipelinesErr != nil {
		return nil, fmt.Errorf("erro ao buscar funis: %w", pipelinesErr)
	}

	userNames := domain.UserNames(users)
	pipelineNames := domain.PipelineNames(pipelines)
	status := domain.DealStatus(filters.Status)
	matchesPeriod := s.periodFilter(filters)

	result := make([]domain.EnrichedDeal, 0, len(deals))
	for _, d := range deals {
		if status != "" && d.Status != status {
			continue
		}
		if !matchesPeriod(referenceDate(d, status)) {
			continue
		}

		result = append(result, domain.EnrichedDeal{
			ID:           d.ID,
			Title:        d.Title,
			Value:        d.Value,
			Status:       d.Status,
			StageID:      d.StageID,
			OwnerID:      d.OwnerID,
			OwnerName:    userNames.Name(d.OwnerID),
			PipelineID:   d.PipelineID,
			PipelineName: pipelineNames.Name(d.PipelineID),
			AddTime:      utils.FormatDateTime(d.AddTime),
			UpdateTime:   utils.FormatDateTime(d.UpdateTime),
			WonTime:      utils.FormatDateTime(d.WonTime),
			LostTime:     utils.FormatDateTime(d.LostTime),
			LostReason:   d.LostReason,
		})
	}

	return result, nil
}

// periodFilter monta o predicado de período. Sem período nada é filtrado; com um período,
// negócios sem a data de referência são descartados e tokens desconhecidos só exigem a data.
func (s *Service) periodFilter(filters domain.DealFilters) func(*time.Time) bool {
	if filters.Period == "" {
		return func(*time.Time) bool { return true }
	}

	period, ok := domain.ParsePeriod(filters.Period)
	if !ok {
		return func(t *time.Time) bool { return t != nil }
	}

	dateRange := domain.ResolvePeriod(string(period), s.now())
	return dateRange.Contains
}

// referenceDate escolhe a data usada no filtro de período conforme o status pedido
func referenceDate(d domain.Deal, status domain.DealStatus) *time.Time {
	switch status {
	case domain.DealStatusWon:
		return d.WonTime
	case domain.DealStatusLost:
		return d.LostTime
	default:
		return d.AddTime
	}
}
