package pipedriveclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"net/http"
	"time"

	pipedrivedomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/pipedrive/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// DefaultPageSize é o tamanho de página usado quando a configuração não define outro
const DefaultPageSize = 500

type Client interface {
	GetDeals(ctx context.Context, params DealsParams) ([]pipedrivedomain.Deal, error)
	GetActivities(ctx context.Context, params ActivitiesParams) ([]pipedrivedomain.Activity, error)
	GetUsers(ctx context.Context) ([]pipedrivedomain.User, error)
	GetPipelines(ctx context.Context) ([]pipedrivedomain.Pipeline, error)
}

type PipedriveClient struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	pageSize   int
}

func NewClient(cfg *config.Config) Client {
	return newClient(cfg.Pipedrive, &http.Client{
		Timeout: cfg.Pipedrive.Timeout,
	})
}

func newClient(cfg config.Pipedrive, httpClient *http.Client) *PipedriveClient {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if httpClient.Timeout == 0 {
		httpClient.Timeout = 30 * time.Second
	}

	return &PipedriveClient{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiToken:   cfg.APIToken,
		pageSize:   pageSize,
	}
}
