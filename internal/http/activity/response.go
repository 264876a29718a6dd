package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
)

type splitResponse struct {
	Mode                  activity.SplitMode              `json:"mode"`
	CustomAmountsByMember map[uuid.UUID]int64             `json:"custom_amounts_by_member,omitempty"`
	PayerMemberID         uuid.UUID                       `json:"payer_member_id"`
	RequiresApprovals     bool                            `json:"requires_approvals"`
	Approvals             map[uuid.UUID]activity.Approval `json:"approvals"`
}

type activityResponse struct {
	ID        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Vertical  activity.Vertical `json:"vertical"`
	StartAt   time.Time         `json:"start_at"`
	AmountQAR int64             `json:"amount_qar"`
	Status    activity.Status   `json:"status"`
	SeriesID  *uuid.UUID        `json:"series_id,omitempty"`
	Split     *splitResponse    `json:"split,omitempty"`
}

func toResponse(a *activity.Activity) activityResponse {
	resp := activityResponse{
		ID:        a.ID,
		Title:     a.Title,
		Vertical:  a.Vertical,
		StartAt:   a.StartAt,
		AmountQAR: a.AmountQAR,
		Status:    a.Status,
		SeriesID:  a.SeriesID,
	}

	if a.Split != nil {
		resp.Split = &splitResponse{
			Mode:                  a.Split.Mode,
			CustomAmountsByMember: a.Split.CustomAmountsByMember,
			PayerMemberID:         a.Split.PayerMemberID,
			RequiresApprovals:     a.Split.RequiresApprovals,
			Approvals:             a.Split.Approvals,
		}
	}

	return resp
}

func toResponseList(acts []*activity.Activity) []activityResponse {
	out := make([]activityResponse, len(acts))
	for i, a := range acts {
		out[i] = toResponse(a)
	}

	return out
}
