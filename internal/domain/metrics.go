package domain

import "time"

// MetricsReport é recalculado a cada falta no cache e não tem identidade própria
type MetricsReport struct {
	General                GeneralMetrics      `json:"general"`
	MonthlyStatsByOwner    []OwnerStats        `json:"monthly_stats_by_owner"`
	MonthlyStatsByPipeline []PipelineStats     `json:"monthly_stats_by_pipeline"`
	ByPipeline             []PipelineBreakdown `json:"by_pipeline"`
	ByOwner                []OwnerBreakdown    `json:"by_owner"`
	ClosingPipelineSummary []StageSummary      `json:"closing_pipeline_summary"`
	LostReasons            []LostReason        `json:"lost_reasons"`
	NewDealsList           []NewDeal           `json:"new_deals_list"`
}

type GeneralMetrics struct {
	NewCount                    int     `json:"new_count"`
	NewValue                    float64 `json:"new_value"`
	WonCount                    int     `json:"won_count"`
	WonValue                    float64 `json:"won_value"`
	LostCount                   int     `json:"lost_count"`
	LostValue                   float64 `json:"lost_value"`
	Scheduled                   int     `json:"scheduled"`
	NoShow                      int     `json:"no_show"`
	RealizedSuccessfully        int     `json:"realized_successfully"`
	MonthlyWonCount             int     `json:"monthly_won_count"`
	MonthlyWonValue             float64 `json:"monthly_won_value"`
	YesterdayWonCount           int     `json:"yesterday_won_count"`
	YesterdayWonValue           float64 `json:"yesterday_won_value"`
	CurrentMonth                string  `json:"current_month"`
	DaysInMonth                 int     `json:"days_in_month"`
	DaysRemaining               int     `json:"days_remaining"`
	MeetingsScheduledStage      int     `json:"meetings_scheduled_stage"`
	MeetingsCreatedThisMonth    int     `json:"meetings_created_this_month"`
	MeetingsUpdatedThisMonth    int     `json:"meetings_updated_this_month"`
	MeetingsScheduledActivities int     `json:"meetings_scheduled_activities"`
	TotalMeetingsScheduled      int     `json:"total_meetings_scheduled"`
}

type OwnerStats struct {
	OwnerName  string  `json:"owner_name"`
	DealCount  int     `json:"deal_count"`
	TotalValue float64 `json:"total_value"`
}

type PipelineStats struct {
	PipelineName string  `json:"pipeline_name"`
	DealCount    int     `json:"deal_count"`
	TotalValue   float64 `json:"total_value"`
}

type PipelineBreakdown struct {
	PipelineName string `json:"pipeline_name"`
	NewCount     int    `json:"new_count"`
	WonCount     int    `json:"won_count"`
	LostCount    int    `json:"lost_count"`
}

type OwnerBreakdown struct {
	OwnerName     string `json:"owner_name"`
	NewCount      int    `json:"new_count"`
	WonCount      int    `json:"won_count"`
	LostCount     int    `json:"lost_count"`
	ActivityCount int    `json:"activity_count"`
}

type StageSummary struct {
	StageName  string  `json:"stage_name"`
	DealCount  int     `json:"deal_count"`
	TotalValue float64 `json:"total_value"`
}

type LostReason struct {
	Reason   string `json:"motivo"`
	Quantity int    `json:"quantidade"`
}

type NewDeal struct {
	Title        string  `json:"title"`
	Value        float64 `json:"value"`
	OwnerName    string  `json:"owner_name"`
	PipelineName string  `json:"pipeline_name"`
}

// MetricsResult é o relatório junto com o contexto em que foi calculado
type MetricsResult struct {
	Report    *MetricsReport
	Period    Period
	DateRange DateRange
	Cached    bool
}

// MetricsResponse é o envelope devolvido por GET /api/metrics
type MetricsResponse struct {
	Success   bool              `json:"success"`
	Data      *MetricsReport    `json:"data"`
	Timestamp time.Time         `json:"timestamp"`
	Cached    bool              `json:"cached"`
	Period    Period            `json:"period"`
	DateRange DateRangeResponse `json:"dateRange"`
}

// DealsResponse é o envelope devolvido por GET /api/deals
type DealsResponse struct {
	Success   bool           `json:"success"`
	Data      []EnrichedDeal `json:"data"`
	Count     int            `json:"count"`
	Timestamp time.Time      `json:"timestamp"`
}
