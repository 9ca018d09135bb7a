package reporting

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// 15/03/2024 10:00 em São Paulo
var referenceNow = time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)

func ts(value string) *time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return &t
}

func monthRange() domain.DateRange {
	return domain.ResolvePeriod("month", referenceNow)
}

func compute(deals []domain.Deal, users []domain.User, pipelines []domain.Pipeline) *domain.MetricsReport {
	r := monthRange()
	return ComputeMetrics(deals, nil, users, pipelines, r.Start, r.End, referenceNow)
}

var (
	testUsers = []domain.User{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bruno"},
		{ID: 3, Name: "Carla"},
	}
	testPipelines = []domain.Pipeline{
		{ID: 10, Name: "Comercial"},
		{ID: 20, Name: "Parcerias"},
	}
)

func TestComputeMetrics_GanhosPorDono(t *testing.T) {
	deals := []domain.Deal{
		{ID: 1, Title: "A", Value: 1000, Status: domain.DealStatusWon, OwnerID: 1, PipelineID: 10, WonTime: ts("2024-03-05 12:00:00")},
		{ID: 2, Title: "B", Value: 2000, Status: domain.DealStatusWon, OwnerID: 1, PipelineID: 10, WonTime: ts("2024-03-10 12:00:00")},
	}

	report := compute(deals, testUsers, testPipelines)

	assert.Equal(t, []domain.OwnerStats{{OwnerName: "Ana", DealCount: 2, TotalValue: 3000}}, report.MonthlyStatsByOwner)
	assert.Equal(t, []domain.PipelineStats{{PipelineName: "Comercial", DealCount: 2, TotalValue: 3000}}, report.MonthlyStatsByPipeline)
	assert.Equal(t, 2, report.General.WonCount)
	assert.Equal(t, 3000.0, report.General.WonValue)
	assert.Equal(t, 2, report.General.MonthlyWonCount)
	assert.Equal(t, 3000.0, report.General.MonthlyWonValue)
}

func TestComputeMetrics_SomaDosDonosIgualAosGanhos(t *testing.T) {
	deals := []domain.Deal{
		{ID: 1, Value: 500, Status: domain.DealStatusWon, OwnerID: 1, WonTime: ts("2024-03-01 03:00:00")},
		{ID: 2, Value: 700, Status: domain.DealStatusWon, OwnerID: 2, WonTime: ts("2024-03-02 12:00:00")},
		{ID: 3, Value: 900, Status: domain.DealStatusWon, OwnerID: 3, WonTime: ts("2024-03-15 20:00:00")},
		{ID: 4, Value: 100, Status: domain.DealStatusWon, OwnerID: 99, WonTime: ts("2024-03-12 12:00:00")},
		// fora do período: 29/02 23:59 em São Paulo
		{ID: 5, Value: 800, Status: domain.DealStatusWon, OwnerID: 1, WonTime: ts("2024-03-01 02:59:59")},
		// status diferente de ganho não conta, mesmo com won_time no período
		{ID: 6, Value: 300, Status: domain.DealStatusOpen, OwnerID: 2, WonTime: ts("2024-03-05 12:00:00")},
		{ID: 7, Value: 300, Status: domain.DealStatusWon, OwnerID: 2},
	}

	report := compute(deals, testUsers, testPipelines)

	total := 0
	for _, o := range report.MonthlyStatsByOwner {
		total += o.DealCount
	}
	assert.Equal(t, 4, report.General.WonCount)
	assert.Equal(t, report.General.WonCount, total)

	names := make([]string, 0, len(report.MonthlyStatsByOwner))
	for _, o := range report.MonthlyStatsByOwner {
		names = append(names, o.OwnerName)
	}
	assert.Equal(t, []string{"Carla", "Bruno", "Ana", domain.UnknownName}, names)
	assert.Equal(t, domain.UnknownName, report.MonthlyStatsByPipeline[0].PipelineName)
}

func TestComputeMetrics_OrdenacaoEstavelNosEmpates(t *testing.T) {
	deals := []domain.Deal{
		{ID: 1, Value: 100, Status: domain.DealStatusWon, OwnerID: 2, WonTime: ts("2024-03-05 12:00:00")},
		{ID: 2, Value: 100, Status: domain.DealStatusWon, OwnerID: 1, WonTime: ts("2024-03-05 12:00:00")},
		{ID: 3, Value: 200, Status: domain.DealStatusWon, OwnerID: 3, WonTime: ts("2024-03-05 12:00:00")},
	}

	report := compute(deals, testUsers, testPipelines)

	require.Len(t, report.MonthlyStatsByOwner, 3)
	assert.Equal(t, "Carla", report.MonthlyStatsByOwner[0].OwnerName)
	assert.Equal(t, "Bruno", report.MonthlyStatsByOwner[1].OwnerName)
	assert.Equal(t, "Ana", report.MonthlyStatsByOwner[2].OwnerName)
}

func TestComputeMetrics_NovoEPerdidoNaMesmaRequisicao(t *testing.T) {
	deals := []domain.Deal{
		{
			ID:         1,
			Title:      "Perdido no mesmo mês",
			Value:      400,
			Status:     domain.DealStatusLost,
			OwnerID:    1,
			AddTime:    ts("2024-03-02 12:00:00"),
			UpdateTime: ts("2024-03-08 12:00:00"),
		},
		{
			ID:         2,
			Value:      600,
			Status:     domain.DealStatusLost,
			AddTime:    ts("2024-01-02 12:00:00"),
			UpdateTime: ts("2024-03-09 12:00:00"),
		},
	}

	report := compute(deals, testUsers, testPipelines)

	assert.Equal(t, 1, report.General.NewCount)
	assert.Equal(t, 400.0, report.General.NewValue)
	assert.Equal(t, 2, report.General.LostCount)
	assert.Equal(t, 1000.0, report.General.LostValue)
	require.Len(t, report.NewDealsList, 1)
	assert.Equal(t, domain.NewDeal{Title: "Perdido no mesmo mês", Value: 400, OwnerName: "Ana", PipelineName: domain.UnknownName}, report.NewDealsList[0])
}

func TestComputeMetrics_ResumoDeFechamento(t *testing.T) {
	deals := []domain.Deal{
		{ID: 1, Value: 100, Status: domain.DealStatusOpen, StageID: domain.StageNegotiation},
		{ID: 2, Value: 50, Status: domain.DealStatusOpen, StageID: domain.StageOpportunity},
		{ID: 3, Value: 150, Status: domain.DealStatusOpen, StageID: domain.StageNegotiation},
		{ID: 4, Value: 999, Status: domain.DealStatusWon, StageID: domain.StageContract},
		{ID: 5, Value: 999, Status: domain.DealStatusLost, StageID: domain.StageOpportunity},
		{ID: 6, Value: 999, Status: domain.DealStatusOpen, StageID: domain.StageMeetingScheduled},
	}

	report := compute(deals, testUsers, testPipelines)

	assert.Equal(t, []domain.StageSummary{
		{StageName: "Negociação", DealCount: 2, TotalValue: 250},
		{StageName: "Oportunidade", DealCount: 1, TotalValue: 50},
	}, report.ClosingPipelineSummary)

	for _, s := range report.ClosingPipelineSummary {
		assert.Contains(t, []string{"Oportunidade", "Negociação", "Contrato"}, s.StageName)
	}
}

func TestComputeMetrics_ContadoresDeEtapa(t *testing.T) {
	inRange := ts("2024-03-14 15:00:00")
	outOfRange := ts("2024-02-20 15:00:00")

	deals := []domain.Deal{
		{ID: 1, StageID: domain.StageMeetingScheduled, Status: domain.DealStatusOpen, StageChangeTime: inRange, AddTime: inRange},
		{ID: 2, StageID: domain.StageMeetingScheduled, Status: domain.DealStatusOpen, StageChangeTime: outOfRange, UpdateTime: inRange},
		{ID: 3, StageID: domain.StageNoShow, Status: domain.DealStatusOpen, StageChangeTime: inRange},
		{ID: 4, StageID: domain.StageOpportunity, Status: domain.DealStatusOpen, StageChangeTime: inRange},
		{ID: 5, StageID: 3, Status: domain.DealStatusWon, StageChangeTime: inRange},
		{ID: 6, StageID: domain.StageContract, Status: domain.DealStatusOpen, StageChangeTime: outOfRange},
		{ID: 7, StageID: domain.StageContract, Status: domain.DealStatusOpen},
	}

	report := compute(deals, testUsers, testPipelines)
	g := report.General

	assert.Equal(t, 1, g.Scheduled)
	assert.Equal(t, 1, g.NoShow)
	assert.Equal(t, 2, g.RealizedSuccessfully)
	assert.Equal(t, 2, g.MeetingsScheduledStage)
	assert.Equal(t, 2, g.TotalMeetingsScheduled)
	assert.Equal(t, 1, g.MeetingsCreatedThisMonth)
	assert.Equal(t, 1, g.MeetingsUpdatedThisMonth)
	assert.Equal(t, 0, g.MeetingsScheduledActivities)
}

func TestComputeMetrics_CalendarioRelativoAoAgora(t *testing.T) {
	deals := []domain.Deal{
		// 14/03 23:00 em São Paulo
		{ID: 1, Value: 10, Status: domain.DealStatusWon, WonTime: ts("2024-03-15 02:00:00")},
		{ID: 2, Value: 20, Status: domain.DealStatusWon, WonTime: ts("2024-03-14 12:00:00")},
		// 15/03 00:30 em São Paulo, já é hoje
		{ID: 3, Value: 40, Status: domain.DealStatusWon, WonTime: ts("2024-03-15 03:30:00")},
		{ID: 4, Value: 80, Status: domain.DealStatusLost, WonTime: ts("2024-03-14 12:00:00")},
	}

	r := domain.ResolvePeriod("today", referenceNow)
	report := ComputeMetrics(deals, nil, testUsers, testPipelines, r.Start, r.End, referenceNow)
	g := report.General

	assert.Equal(t, 2, g.YesterdayWonCount)
	assert.Equal(t, 30.0, g.YesterdayWonValue)
	assert.Equal(t, 1, g.WonCount)
	assert.Equal(t, 40.0, g.WonValue)
	assert.Equal(t, "março de 2024", g.CurrentMonth)
	assert.Equal(t, 15, g.DaysInMonth)
	assert.Equal(t, 16, g.DaysRemaining)
}

func TestComputeMetrics_NomesPadrao(t *testing.T) {
	deals := []domain.Deal{
		{ID: 1, Value: 10, OwnerID: 42, PipelineID: 77, Status: domain.DealStatusOpen, AddTime: ts("2024-03-10 12:00:00")},
	}
	users := []domain.User{{ID: 42, Name: "Antigo"}, {ID: 42, Name: "Atual"}}

	report := compute(deals, users, testPipelines)

	require.Len(t, report.NewDealsList, 1)
	assert.Equal(t, domain.UntitledDeal, report.NewDealsList[0].Title)
	assert.Equal(t, "Atual", report.NewDealsList[0].OwnerName)
	assert.Equal(t, domain.UnknownName, report.NewDealsList[0].PipelineName)
}

func TestComputeMetrics_SemNegocios(t *testing.T) {
	report := compute(nil, nil, nil)

	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(report)
	require.NoError(t, err)

	body := string(raw)
	for _, field := range []string{
		"monthly_stats_by_owner", "monthly_stats_by_pipeline", "by_pipeline", "by_owner",
		"closing_pipeline_summary", "lost_reasons", "new_deals_list",
	} {
		assert.Contains(t, body, `"`+field+`":[]`)
	}
	assert.Zero(t, report.General.NewCount)
	assert.Equal(t, "março de 2024", report.General.CurrentMonth)
}
