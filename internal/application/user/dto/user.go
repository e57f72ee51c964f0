package dto

import (
	"time"

	"github.com/samber/lo"

	statementdto "github.com/lrsproject/lrs/internal/application/statement/dto"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/domain/user"
)

type UserResponse struct {
	ID         uint      `json:"id"`
	ExternalID string    `json:"external_id"`
	Name       string    `json:"name"`
	TenantID   uint      `json:"tenant_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RecentActivitiesResponse struct {
	Offset  int                               `json:"offset"`
	Total   int64                             `json:"total"`
	Results []*statementdto.StatementResponse `json:"results"`
}

type PeriodResponse struct {
	Period  string `json:"period"`
	Total   int64  `json:"total"`
	Current bool   `json:"current"`
}

type ActivityResponse struct {
	Activity string `json:"activity"`
	Total    int64  `json:"total"`
}

type DataSourceResponse struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

type DataUseResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Anonymous   bool   `json:"anonymous"`
	Share       bool   `json:"share"`
}

// DataShareRequest is the body of a datashare toggle. Share is kept loose
// so that non-boolean values can be told apart from false.
type DataShareRequest struct {
	ID    uint `json:"id" validate:"required"`
	Share any  `json:"share"`
}

func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID(),
		ExternalID: u.ExternalID(),
		Name:       u.Name(),
		TenantID:   u.TenantID(),
		CreatedAt:  u.CreatedAt(),
		UpdatedAt:  u.UpdatedAt(),
	}
}

func EmptyRecentActivities(offset int) *RecentActivitiesResponse {
	return &RecentActivitiesResponse{Offset: offset, Results: []*statementdto.StatementResponse{}}
}

func ToPeriodResponses(periods []statement.Period) []PeriodResponse {
	return lo.Map(periods, func(p statement.Period, _ int) PeriodResponse {
		return PeriodResponse{Period: p.Label, Total: p.Total, Current: p.Current}
	})
}

func ToActivityResponses(counts []statement.ActivityCount) []ActivityResponse {
	return lo.Map(counts, func(c statement.ActivityCount, _ int) ActivityResponse {
		return ActivityResponse{Activity: c.Activity, Total: c.Total}
	})
}

func ToDataSourceResponses(counts []statement.SourceCount) []DataSourceResponse {
	return lo.Map(counts, func(c statement.SourceCount, _ int) DataSourceResponse {
		return DataSourceResponse{Name: c.Name, Total: c.Total}
	})
}

func ToDataUseResponses(uses []*credential.DataUse) []DataUseResponse {
	return lo.Map(uses, func(u *credential.DataUse, _ int) DataUseResponse {
		return DataUseResponse{
			ID:          u.ID,
			Name:        u.Name,
			Description: u.Description,
			Anonymous:   u.Anonymous,
			Share:       u.Share,
		}
	})
}
