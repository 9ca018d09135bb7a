package pipedriveclient

import (
	"context"
	"net/url"

	pipedrivedomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/pipedrive/domain"
)

// DealStatusAllNotDeleted é o filtro de status que traz negócios abertos, ganhos e perdidos
const DealStatusAllNotDeleted = "all_not_deleted"

type DealsParams struct {
	Status string
}

type ActivitiesParams struct {
	Since string
	Until string
}

func (c *PipedriveClient) GetDeals(ctx context.Context, params DealsParams) ([]pipedrivedomain.Deal, error) {
	query := url.Values{}
	status := params.Status
	if status == "" {
		status = DealStatusAllNotDeleted
	}
	query.Set("status", status)

	return FetchCollection[pipedrivedomain.Deal](ctx, c, "deals", query)
}

func (c *PipedriveClient) GetActivities(ctx context.Context, params ActivitiesParams) ([]pipedrivedomain.Activity, error) {
	query := url.Values{}
	if params.Since != "" {
		query.Set("since", params.Since)
	}
	if params.Until != "" {
		query.Set("until", params.Until)
	}

	return FetchCollection[pipedrivedomain.Activity](ctx, c, "activities", query)
}

func (c *PipedriveClient) GetUsers(ctx context.Context) ([]pipedrivedomain.User, error) {
	return FetchCollection[pipedrivedomain.User](ctx, c, "users", nil)
}

func (c *PipedriveClient) GetPipelines(ctx context.Context) ([]pipedrivedomain.Pipeline, error) {
	return FetchCollection[pipedrivedomain.Pipeline](ctx, c, "pipelines", nil)
}
