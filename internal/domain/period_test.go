package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	// sexta-feira, 15/03/2024 10:00 em São Paulo
	friday := time.Date(2024, 3, 15, 10, 0, 0, 0, SaoPaulo)
	// domingo, 17/03/2024 20:00 em São Paulo (23:00 UTC)
	sunday := time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{"hoje", "today", friday, "2024-03-15", "2024-03-15"},
		{"hoje em português", "hoje", friday, "2024-03-15", "2024-03-15"},
		{"semana a partir de segunda", "week", friday, "2024-03-11", "2024-03-15"},
		{"semana no domingo volta seis dias", "semana", sunday, "2024-03-11", "2024-03-17"},
		{"mês", "month", friday, "2024-03-01", "2024-03-15"},
		{"mês com acento", "Mês", friday, "2024-03-01", "2024-03-15"},
		{"trimestre", "quarter", time.Date(2024, 5, 20, 12, 0, 0, 0, SaoPaulo), "2024-04-01", "2024-05-20"},
		{"trimestre em dezembro", "trimestre", time.Date(2024, 12, 2, 12, 0, 0, 0, SaoPaulo), "2024-10-01", "2024-12-02"},
		{"ano", "ANO", friday, "2024-01-01", "2024-03-15"},
		{"desconhecido usa mês", "decada", friday, "2024-03-01", "2024-03-15"},
		{"vazio usa mês", "", friday, "2024-03-01", "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ResolvePeriod(tt.token, tt.now)

			assert.Equal(t, tt.wantStart, r.StartDate())
			assert.Equal(t, tt.wantEnd, r.EndDate())
			assert.Equal(t, 0, r.Start.Hour())
			assert.Equal(t, 23, r.End.Hour())
			assert.Equal(t, 59, r.End.Second())
		})
	}
}

func TestResolvePeriod_ConverteParaUTC3(t *testing.T) {
	// 16/03 01:00 UTC ainda é 15/03 em São Paulo
	now := time.Date(2024, 3, 16, 1, 0, 0, 0, time.UTC)

	r := ResolvePeriod("today", now)

	assert.Equal(t, "2024-03-15", r.StartDate())
	assert.Equal(t, time.Date(2024, 3, 15, 3, 0, 0, 0, time.UTC), r.Start.UTC())
}

func TestCanonicalPeriod(t *testing.T) {
	assert.Equal(t, PeriodToday, CanonicalPeriod(" HOJE "))
	assert.Equal(t, PeriodMonth, CanonicalPeriod("mes"))
	assert.Equal(t, PeriodQuarter, CanonicalPeriod("trimestre"))
	assert.Equal(t, DefaultPeriod, CanonicalPeriod("ontem"))

	_, ok := ParsePeriod("ontem")
	assert.False(t, ok)
}

func TestDateRange_Contains(t *testing.T) {
	r := ResolvePeriod("today", time.Date(2024, 3, 15, 10, 0, 0, 0, SaoPaulo))

	start := r.Start
	end := r.End
	before := r.Start.Add(-time.Nanosecond)
	after := r.End.Add(time.Millisecond)

	assert.True(t, r.Contains(&start))
	assert.True(t, r.Contains(&end))
	assert.False(t, r.Contains(&before))
	assert.False(t, r.Contains(&after))
	assert.False(t, r.Contains(nil))

	assert.Equal(t, DateRangeResponse{StartDate: "2024-03-15", EndDate: "2024-03-15"}, r.Response())
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, 29, LastDayOfMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, SaoPaulo)).Day())
	assert.Equal(t, 31, LastDayOfMonth(time.Date(2024, 12, 31, 0, 0, 0, 0, SaoPaulo)).Day())
}
