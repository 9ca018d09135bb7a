package domain

import (
	"strings"
	"time"
)

type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// DefaultPeriod é usado quando o período não é informado ou não é reconhecido
const DefaultPeriod = PeriodMonth

// SaoPaulo é um offset fixo de UTC-3, sem consulta à base de fusos horários
var SaoPaulo = time.FixedZone("UTC-3", -3*60*60)

var periodTokens = map[string]Period{
	"today":     PeriodToday,
	"hoje":      PeriodToday,
	"week":      PeriodWeek,
	"semana":    PeriodWeek,
	"month":     PeriodMonth,
	"mes":       PeriodMonth,
	"mês":       PeriodMonth,
	"quarter":   PeriodQuarter,
	"trimestre": PeriodQuarter,
	"year":      PeriodYear,
	"ano":       PeriodYear,
}

// ParsePeriod converte um token (inglês ou português) no período canônico
func ParsePeriod(token string) (Period, bool) {
	period, ok := periodTokens[strings.ToLower(strings.TrimSpace(token))]
	return period, ok
}

// CanonicalPeriod retorna o período canônico ou DefaultPeriod para tokens desconhecidos
func CanonicalPeriod(token string) Period {
	if period, ok := ParsePeriod(token); ok {
		return period
	}
	return DefaultPeriod
}

// DateRange é um intervalo fechado [Start, End] em dias de calendário UTC-3
type DateRange struct {
	Start time.Time
	End   time.Time
}

type DateRangeResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Contains indica se t está dentro do intervalo, incluindo as bordas. Datas ausentes nunca pertencem.
func (r DateRange) Contains(t *time.Time) bool {
	if t == nil {
		return false
	}
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r DateRange) StartDate() string {
	return r.Start.Format(time.DateOnly)
}

func (r DateRange) EndDate() string {
	return r.End.Format(time.DateOnly)
}

func (r DateRange) Response() DateRangeResponse {
	return DateRangeResponse{
		StartDate: r.StartDate(),
		EndDate:   r.EndDate(),
	}
}

// ResolvePeriod transforma um token de período em um intervalo de datas ancorado em UTC-3.
// O fim do intervalo é sempre o final do dia atual.
func ResolvePeriod(token string, now time.Time) DateRange {
	local := now.In(SaoPaulo)
	today := StartOfDay(local)
	end := EndOfDay(local)

	var start time.Time
	switch CanonicalPeriod(token) {
	case PeriodToday:
		start = today
	case PeriodWeek:
		diff := int(today.Weekday()) - 1
		if today.Weekday() == time.Sunday {
			diff = 6
		}
		start = today.AddDate(0, 0, -diff)
	case PeriodQuarter:
		quarterMonth := ((int(local.Month()) - 1) / 3 * 3) + 1
		start = time.Date(local.Year(), time.Month(quarterMonth), 1, 0, 0, 0, 0, SaoPaulo)
	case PeriodYear:
		start = time.Date(local.Year(), time.January, 1, 0, 0, 0, 0, SaoPaulo)
	default:
		start = FirstDayOfMonth(local)
	}

	return DateRange{Start: start, End: end}
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func LastDayOfMonth(t time.Time) time.Time {
	return FirstDayOfMonth(t).AddDate(0, 1, -1)
}
