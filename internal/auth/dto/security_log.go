package dto

import (
	"time"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
)

type SecurityLogEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	Action     string    `json:"action"`
	IP         string    `json:"ip"`
	Path       string    `json:"path"`
	Method     string    `json:"method"`
	StatusCode string    `json:"status_code"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

type SecurityLogList struct {
	Total  int                `json:"total"`
	Page   int                `json:"page"`
	Limit  int                `json:"limit"`
	Result []SecurityLogEntry `json:"result"`
}

func NewSecurityLogEntry(e domain.SecurityLog) SecurityLogEntry {
	return SecurityLogEntry{
		ID:         e.ID,
		UserID:     e.UserID,
		Email:      e.Email,
		Action:     e.Action,
		IP:         e.IP,
		Path:       e.Path,
		Method:     e.Method,
		StatusCode: e.StatusCode,
		Detail:     e.Detail,
		CreatedAt:  e.CreatedAt,
	}
}
