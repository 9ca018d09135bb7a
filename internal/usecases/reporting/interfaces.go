package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporting.go -package=mocks

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// MetricsService calcula o relatório de métricas do dashboard com cache por período
type MetricsService interface {
	// GetMetrics devolve o relatório do período (token em inglês ou português, padrão mês)
	GetMetrics(ctx context.Context, period string) (*domain.MetricsResult, error)

	// Refresh recalcula o relatório ignorando o cache e o regrava
	Refresh(ctx context.Context, period string) (*domain.MetricsResult, error)

	// ClearCache remove as chaves informadas, ou todas quando nenhuma é informada
	ClearCache(ctx context.Context, keys ...string)
}
