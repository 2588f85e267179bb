package agent

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"opsportal/internal/application/agent/usecases"
)

type RegisterAgentRequest struct {
	Email      string `json:"email" binding:"required,email"`
	FullName   string `json:"full_name" binding:"required,max=100"`
	EmployeeID string `json:"employee_id" binding:"required,max=50"`
	PhotoURL   string `json:"photo_url" binding:"omitempty,url,max=500"`
}

func (r *RegisterAgentRequest) ToCommand() usecases.RegisterAgentCommand {
	return usecases.RegisterAgentCommand{
		Email:      r.Email,
		FullName:   r.FullName,
		EmployeeID: r.EmployeeID,
		PhotoURL:   r.PhotoURL,
	}
}

type ChangeAgentStatusRequest struct {
	Action string `json:"action" binding:"required,oneof=hold suspend resume"`
	Reason string `json:"reason" binding:"max=500"`
}

type ListAgentsRequest struct {
	Page     int
	PageSize int
	Status   string
}

func parseListAgentsRequest(c *gin.Context) *ListAgentsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &ListAgentsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}
}
