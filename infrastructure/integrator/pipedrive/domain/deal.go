package pipedrivedomain

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// UserRef é o objeto 'user_id' embutido em um negócio
type UserRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type Deal struct {
	ID              int      `json:"id" validate:"required,gt=0"`
	Title           string   `json:"title,omitempty"`
	Value           *float64 `json:"value,omitempty"`
	Currency        string   `json:"currency,omitempty"`
	Status          string   `json:"status" validate:"required,oneof=open won lost"`
	StageID         int      `json:"stage_id,omitempty"`
	PipelineID      int      `json:"pipeline_id,omitempty"`
	User            *UserRef `json:"user_id,omitempty"`
	AddTime         *string  `json:"add_time,omitempty"`
	UpdateTime      *string  `json:"update_time,omitempty"`
	WonTime         *string  `json:"won_time,omitempty"`
	LostTime        *string  `json:"lost_time,omitempty"`
	StageChangeTime *string  `json:"stage_change_time,omitempty"`
	LostReason      *string  `json:"lost_reason,omitempty"`
}

// OwnerID retorna 0 quando o negócio não tem dono
func (d Deal) OwnerID() int {
	if d.User == nil {
		return 0
	}
	return d.User.ID
}

func (d Deal) ToDomain() domain.Deal {
	var value float64
	if d.Value != nil {
		value = *d.Value
	}

	return domain.Deal{
		ID:              d.ID,
		Title:           d.Title,
		Value:           value,
		Status:          domain.DealStatus(d.Status),
		StageID:         d.StageID,
		OwnerID:         d.OwnerID(),
		PipelineID:      d.PipelineID,
		AddTime:         utils.ParseDateTime(d.AddTime),
		UpdateTime:      utils.ParseDateTime(d.UpdateTime),
		WonTime:         utils.ParseDateTime(d.WonTime),
		LostTime:        utils.ParseDateTime(d.LostTime),
		StageChangeTime: utils.ParseDateTime(d.StageChangeTime),
		LostReason:      d.LostReason,
	}
}
