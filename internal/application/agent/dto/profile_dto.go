package dto

import (
	"time"

	"opsportal/internal/domain/profile"
)

type ProfileDTO struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	EmployeeID   string    `json:"employee_id"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	StatusReason string    `json:"status_reason,omitempty"`
	TotalPenalty int64     `json:"total_penalty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:           p.ID(),
		Email:        p.Email(),
		FullName:     p.FullName(),
		EmployeeID:   p.EmployeeID(),
		PhotoURL:     p.PhotoURL(),
		Role:         p.Role().String(),
		Status:       p.Status().String(),
		StatusReason: p.StatusReason(),
		TotalPenalty: p.TotalPenalty(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

type AgentPenaltyDTO struct {
	UserID       uint   `json:"user_id"`
	FullName     string `json:"full_name"`
	EmployeeID   string `json:"employee_id"`
	Email        string `json:"email"`
	TotalPenalty int64  `json:"total_penalty"`
}

type PenaltyOverviewDTO struct {
	Agents     []AgentPenaltyDTO `json:"agents"`
	GrandTotal int64             `json:"grand_total"`
}
