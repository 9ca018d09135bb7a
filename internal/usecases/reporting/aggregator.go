package reporting

import (
	"fmt"
	"slices"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// annotatedDeal é um negócio com os nomes de dono e funil já resolvidos
type annotatedDeal struct {
	domain.Deal
	OwnerName    string
	PipelineName string
}

type group struct {
	name  string
	count int
	value float64
}

// groupBy acumula contagem e soma por nome, preservando a ordem do primeiro encontro
type groupBy struct {
	index  map[string]int
	groups []group
}

func newGroupBy() *groupBy {
	return &groupBy{index: make(map[string]int)}
}

func (g *groupBy) add(name string, value float64) {
	i, ok := g.index[name]
	if !ok {
		i = len(g.groups)
		g.index[name] = i
		g.groups = append(g.groups, group{name: name})
	}
	g.groups[i].count++
	g.groups[i].value += value
}

// ranked devolve os grupos ordenados por valor total decrescente, mantendo a ordem de encontro nos empates
func (g *groupBy) ranked() []group {
	out := slices.Clone(g.groups)
	slices.SortStableFunc(out, func(a, b group) int {
		switch {
		case a.value > b.value:
			return -1
		case a.value < b.value:
			return 1
		default:
			return 0
		}
	})
	return out
}

// ComputeMetrics monta o relatório de métricas para o período [periodStart, periodEnd].
// Os contadores de dias e o "ontem" são relativos a now em UTC-3, não ao período consultado.
func ComputeMetrics(
	deals []domain.Deal,
	activities []domain.Activity,
	users []domain.User,
	pipelines []domain.Pipeline,
	periodStart, periodEnd time.Time,
	now time.Time,
) *domain.MetricsReport {
	period := domain.DateRange{Start: periodStart, End: periodEnd}

	local := now.In(domain.SaoPaulo)
	yesterday := local.AddDate(0, 0, -1)
	yesterdayRange := domain.DateRange{Start: domain.StartOfDay(yesterday), End: domain.EndOfDay(yesterday)}

	userNames := domain.UserNames(users)
	pipelineNames := domain.PipelineNames(pipelines)

	annotated := make([]annotatedDeal, 0, len(deals))
	for _, d := range deals {
		annotated = append(annotated, annotatedDeal{
			Deal:         d,
			OwnerName:    userNames.Name(d.OwnerID),
			PipelineName: pipelineNames.Name(d.PipelineID),
		})
	}

	report := &domain.MetricsReport{
		MonthlyStatsByOwner:    []domain.OwnerStats{},
		MonthlyStatsByPipeline: []domain.PipelineStats{},
		// by_pipeline, by_owner e lost_reasons não são calculados pelo dashboard atual e saem sempre vazios
		ByPipeline:             []domain.PipelineBreakdown{},
		ByOwner:                []domain.OwnerBreakdown{},
		ClosingPipelineSummary: []domain.StageSummary{},
		LostReasons:            []domain.LostReason{},
		NewDealsList:           []domain.NewDeal{},
	}
	general := &report.General

	byOwner := newGroupBy()
	byPipeline := newGroupBy()
	byStage := newGroupBy()

	for _, d := range annotated {
		if period.Contains(d.AddTime) {
			general.NewCount++
			general.NewValue += d.Value
			report.NewDealsList = append(report.NewDealsList, newDealItem(d))
		}

		if d.Status == domain.DealStatusWon && period.Contains(d.WonTime) {
			general.WonCount++
			general.WonValue += d.Value
			byOwner.add(d.OwnerName, d.Value)
			byPipeline.add(d.PipelineName, d.Value)
		}

		if d.Status == domain.DealStatusWon && yesterdayRange.Contains(d.WonTime) {
			general.YesterdayWonCount++
			general.YesterdayWonValue += d.Value
		}

		if d.Status == domain.DealStatusLost && period.Contains(d.UpdateTime) {
			general.LostCount++
			general.LostValue += d.Value
		}

		if period.Contains(d.StageChangeTime) {
			switch d.StageID {
			case domain.StageMeetingScheduled:
				general.Scheduled++
			case domain.StageNoShow:
				general.NoShow++
			}
			if domain.IsClosingStage(d.StageID) || d.Status == domain.DealStatusWon {
				general.RealizedSuccessfully++
			}
		}

		if d.StageID == domain.StageMeetingScheduled {
			general.MeetingsScheduledStage++
			if period.Contains(d.AddTime) {
				general.MeetingsCreatedThisMonth++
			}
			if period.Contains(d.UpdateTime) {
				general.MeetingsUpdatedThisMonth++
			}
		}

		if d.Status == domain.DealStatusOpen {
			if label, ok := domain.ClosingStageLabel(d.StageID); ok {
				byStage.add(label, d.Value)
			}
		}
	}

	general.MonthlyWonCount = general.WonCount
	general.MonthlyWonValue = general.WonValue
	general.TotalMeetingsScheduled = general.MeetingsScheduledStage
	// TODO: derivar das atividades do tipo reunião quando o Pipedrive expuser o tipo de forma consistente
	general.MeetingsScheduledActivities = 0

	general.CurrentMonth = fmt.Sprintf("%s de %d", monthNames[local.Month()-1], local.Year())
	general.DaysInMonth = local.Day()
	general.DaysRemaining = domain.LastDayOfMonth(local).Day() - local.Day()

	for _, g := range byOwner.ranked() {
		report.MonthlyStatsByOwner = append(report.MonthlyStatsByOwner, domain.OwnerStats{
			OwnerName:  g.name,
			DealCount:  g.count,
			TotalValue: g.value,
		})
	}

	for _, g := range byPipeline.ranked() {
		report.MonthlyStatsByPipeline = append(report.MonthlyStatsByPipeline, domain.PipelineStats{
			PipelineName: g.name,
			DealCount:    g.count,
			TotalValue:   g.value,
		})
	}

	for _, g := range byStage.groups {
		report.ClosingPipelineSummary = append(report.ClosingPipelineSummary, domain.StageSummary{
			StageName:  g.name,
			DealCount:  g.count,
			TotalValue: g.value,
		})
	}

	return report
}

func newDealItem(d annotatedDeal) domain.NewDeal {
	title := d.Title
	if title == "" {
		title = domain.UntitledDeal
	}

	return domain.NewDeal{
		Title:        title,
		Value:        d.Value,
		OwnerName:    d.OwnerName,
		PipelineName: d.PipelineName,
	}
}
