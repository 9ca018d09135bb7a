package pipedrivedomain

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Activity struct {
	ID       int     `json:"id" validate:"required,gt=0"`
	Subject  string  `json:"subject,omitempty"`
	Type     string  `json:"type,omitempty"`
	DealID   *int    `json:"deal_id,omitempty"`
	UserID   int     `json:"user_id,omitempty"`
	DueDate  string  `json:"due_date,omitempty"`
	DueTime  string  `json:"due_time,omitempty"`
	Duration string  `json:"duration,omitempty"`
	Done     bool    `json:"done,omitempty"`
	AddTime  *string `json:"add_time,omitempty"`
}

func (a Activity) ToDomain() domain.Activity {
	return domain.Activity{
		ID:       a.ID,
		Subject:  a.Subject,
		Type:     a.Type,
		DealID:   a.DealID,
		UserID:   a.UserID,
		DueDate:  a.DueDate,
		DueTime:  a.DueTime,
		Duration: a.Duration,
		Done:     a.Done,
		AddTime:  utils.ParseDateTime(a.AddTime),
	}
}

type User struct {
	ID     int    `json:"id" validate:"required,gt=0"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Active bool   `json:"active_flag,omitempty"`
}

func (u User) ToDomain() domain.User {
	return domain.User{
		ID:   u.ID,
		Name: u.Name,
	}
}

type Pipeline struct {
	ID     int    `json:"id" validate:"required,gt=0"`
	Name   string `json:"name"`
	Active bool   `json:"active,omitempty"`
}

func (p Pipeline) ToDomain() domain.Pipeline {
	return domain.Pipeline{
		ID:   p.ID,
		Name: p.Name,
	}
}
