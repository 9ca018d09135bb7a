package pipedriveclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	pipedrivedomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/pipedrive/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FetchCollection busca todas as páginas de uma coleção do Pipedrive, começando em start=0 e
// avançando pageSize itens enquanto o servidor indicar more_items_in_collection.
// Qualquer falha em uma página aborta a busca inteira.
func FetchCollection[T any](ctx context.Context, c *PipedriveClient, resource string, params url.Values) ([]T, error) {
	all := make([]T, 0)
	start := 0

	for {
		page, err := fetchPage[T](ctx, c, resource, params, start)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Data...)

		logrus.WithFields(logrus.Fields{
			"resource": resource,
			"start":    start,
			"items":    len(page.Data),
			"has_more": page.HasMore(),
		}).Debug("pipedrive: página recebida")

		if !page.HasMore() {
			break
		}

		start += c.pageSize
	}

	return all, nil
}

func fetchPage[T any](ctx context.Context, c *PipedriveClient, resource string, params url.Values, start int) (*pipedrivedomain.Page[T], error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "pipedrive: erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/v1", resource)

	query := url.Values{}
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("api_token", c.apiToken)
	query.Set("start", strconv.Itoa(start))
	query.Set("limit", strconv.Itoa(c.pageSize))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "pipedrive: erro ao criar a requisição de %s", resource)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "pipedrive: erro ao executar a requisição de %s", resource)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "pipedrive: erro ao ler a resposta de %s", resource)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resource, resp.Status, body)
	}

	var page pipedrivedomain.Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrapf(err, "pipedrive: erro ao decodificar a resposta de %s", resource)
	}

	return &page, nil
}

func statusError(resource, status string, body []byte) error {
	var errorResp pipedrivedomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error != "" {
		return errors.Errorf("pipedrive: requisição de %s falhou com status %s: %s", resource, status, errorResp.Error)
	}
	return errors.Errorf("pipedrive: requisição de %s falhou com status %s", resource, status)
}
