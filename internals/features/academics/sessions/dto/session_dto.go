package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schooladmin_backend/internals/features/academics/sessions/model"
	helper "schooladmin_backend/internals/helpers"
)

type CreateSessionRequest struct {
	SessionName      string      `json:"session_name" validate:"required,max=40"`
	SessionStartDate helper.Date `json:"session_start_date" validate:"required"`
	SessionEndDate   helper.Date `json:"session_end_date" validate:"required"`
}

// Validate adds the cross-field range check to the tag rules.
func (r *CreateSessionRequest) Validate() error {
	r.SessionName = strings.TrimSpace(r.SessionName)
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	if r.SessionEndDate.Before(r.SessionStartDate.Time) {
		return helper.FieldError("session_end_date", "must not be before session_start_date")
	}
	return nil
}

func (r CreateSessionRequest) ToModel() model.SessionModel {
	return model.SessionModel{
		SessionName:      r.SessionName,
		SessionStartDate: datatypes.Date(r.SessionStartDate.Time),
		SessionEndDate:   datatypes.Date(r.SessionEndDate.Time),
	}
}

type UpdateSessionRequest struct {
	SessionName      *string      `json:"session_name" validate:"omitempty,min=1,max=40"`
	SessionStartDate *helper.Date `json:"session_start_date"`
	SessionEndDate   *helper.Date `json:"session_end_date"`
}

// Apply writes the changes and re-checks the date range on the merged row.
func (r UpdateSessionRequest) Apply(m *model.SessionModel) error {
	if r.SessionName != nil {
		m.SessionName = strings.TrimSpace(*r.SessionName)
	}
	if r.SessionStartDate != nil {
		m.SessionStartDate = datatypes.Date(r.SessionStartDate.Time)
	}
	if r.SessionEndDate != nil {
		m.SessionEndDate = datatypes.Date(r.SessionEndDate.Time)
	}
	if time.Time(m.SessionEndDate).Before(time.Time(m.SessionStartDate)) {
		return helper.FieldError("session_end_date", "must not be before session_start_date")
	}
	return nil
}

type SessionResponse struct {
	SessionID        uuid.UUID `json:"session_id"`
	SessionName      string    `json:"session_name"`
	SessionStartDate string    `json:"session_start_date"`
	SessionEndDate   string    `json:"session_end_date"`
	SessionIsCurrent bool      `json:"session_is_current"`
	SessionCreatedAt time.Time `json:"session_created_at"`
	SessionUpdatedAt time.Time `json:"session_updated_at"`
}

func ToSessionResponse(m model.SessionModel) SessionResponse {
	return SessionResponse{
		SessionID:        m.SessionID,
		SessionName:      m.SessionName,
		SessionStartDate: time.Time(m.SessionStartDate).Format(helper.DateLayout),
		SessionEndDate:   time.Time(m.SessionEndDate).Format(helper.DateLayout),
		SessionIsCurrent: m.SessionIsCurrent,
		SessionCreatedAt: m.SessionCreatedAt,
		SessionUpdatedAt: m.SessionUpdatedAt,
	}
}

func ToSessionResponses(rows []model.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToSessionResponse(m))
	}
	return out
}
