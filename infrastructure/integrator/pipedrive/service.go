package pipedrive

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	pipedrivedomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/pipedrive/domain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/pipedrive/pipedriveclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type PipedriveIntegrator interface {
	FetchDeals(ctx context.Context) ([]domain.Deal, error)
	FetchActivities(ctx context.Context, since, until time.Time) ([]domain.Activity, error)
	FetchUsers(ctx context.Context) ([]domain.User, error)
	FetchPipelines(ctx context.Context) ([]domain.Pipeline, error)
}

type PipedriveService struct {
	Client         pipedriveclient.Client
	excludedUserID int
}

func New(cfg *config.Config, client pipedriveclient.Client) PipedriveIntegrator {
	return &PipedriveService{
		Client:         client,
		excludedUserID: cfg.Pipedrive.ExcludedUserID,
	}
}

// FetchDeals busca todos os negócios não excluídos, descartando os do usuário excluído
func (s *PipedriveService) FetchDeals(ctx context.Context) ([]domain.Deal, error) {
	resp, err := s.Client.GetDeals(ctx, pipedriveclient.DealsParams{
		Status: pipedriveclient.DealStatusAllNotDeleted,
	})
	if err != nil {
		return nil, err
	}

	deals := make([]domain.Deal, 0, len(resp))
	for _, d := range resp {
		if !valid("deals", d.ID, d) {
			continue
		}
		if s.isExcluded(d.OwnerID()) {
			continue
		}
		deals = append(deals, d.ToDomain())
	}

	return deals, nil
}

func (s *PipedriveService) FetchActivities(ctx context.Context, since, until time.Time) ([]domain.Activity, error) {
	resp, err := s.Client.GetActivities(ctx, pipedriveclient.ActivitiesParams{
		Since: since.Format(time.DateOnly),
		Until: until.Format(time.DateOnly),
	})
	if err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(resp))
	for _, a := range resp {
		if !valid("activities", a.ID, a) {
			continue
		}
		if s.isExcluded(a.UserID) {
			continue
		}
		activities = append(activities, a.ToDomain())
	}

	return activities, nil
}

// FetchUsers não aplica a exclusão: o usuário excluído continua resolvendo nomes
func (s *PipedriveService) FetchUsers(ctx context.Context) ([]domain.User, error) {
	resp, err := s.Client.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(resp))
	for _, u := range resp {
		if !valid("users", u.ID, u) {
			continue
		}
		users = append(users, u.ToDomain())
	}

	return users, nil
}

func (s *PipedriveService) FetchPipelines(ctx context.Context) ([]domain.Pipeline, error) {
	resp, err := s.Client.GetPipelines(ctx)
	if err != nil {
		return nil, err
	}

	pipelines := make([]domain.Pipeline, 0, len(resp))
	for _, p := range resp {
		if !valid("pipelines", p.ID, p) {
			continue
		}
		pipelines = append(pipelines, p.ToDomain())
	}

	return pipelines, nil
}

func (s *PipedriveService) isExcluded(userID int) bool {
	return s.excludedUserID > 0 && userID == s.excludedUserID
}

func valid(resource string, id int, record any) bool {
	if err := pipedrivedomain.Validate(record); err != nil {
		logrus.WithFields(logrus.Fields{
			"resource": resource,
			"id":       id,
		}).WithError(err).Warn("pipedrive: registro inválido descartado")
		return false
	}
	return true
}
