package http

import (
	"university-assistant/internal/intake"
	"university-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id" binding:"max=128"`
	Message   string `json:"message"    binding:"max=4000"`
}

func (r chatReq) toInput() intake.HandleInput {
	return intake.HandleInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

func (h *handler) newChatResp(out intake.HandleOutput) chatResp {
	return chatResp{
		Response:  out.Reply,
		SessionID: out.SessionID,
	}
}

type sessionResp struct {
	SessionID      string            `json:"session_id"`
	StudentName    string            `json:"student_name,omitempty"`
	AcademicYear   string            `json:"academic_year,omitempty"`
	StudentQuery   string            `json:"student_query,omitempty"`
	RoutedUnit     string            `json:"routed_unit,omitempty"`
	RoutedUnitName string            `json:"routed_unit_name,omitempty"`
	Tone           string            `json:"tone,omitempty"`
	LastBotMessage string            `json:"last_bot_message,omitempty"`
	Submitted      bool              `json:"submitted"`
	CreatedAt      response.DateTime `json:"created_at"`
}

func (h *handler) newSessionResp(out intake.DetailOutput) sessionResp {
	st := out.State
	resp := sessionResp{
		SessionID:      st.SessionID,
		StudentName:    st.StudentName,
		AcademicYear:   string(st.AcademicYear),
		StudentQuery:   st.StudentQuery,
		RoutedUnit:     string(st.RoutedUnit),
		Tone:           string(st.Tone),
		LastBotMessage: st.LastBotMessage,
		Submitted:      st.Submitted,
		CreatedAt:      response.DateTime(st.CreatedAt),
	}
	if st.RoutedUnit != "" {
		resp.RoutedUnitName = st.RoutedUnit.Label()
	}
	return resp
}
