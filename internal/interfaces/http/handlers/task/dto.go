package task

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"opsportal/internal/application/task/usecases"
	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/errors"
)

type CreateTaskRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=5000"`
	AssigneeID  uint      `json:"assignee_id" binding:"required"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	Attachments []string  `json:"attachments,omitempty"`
}

func (r *CreateTaskRequest) ToCommand(creatorID uint) usecases.CreateTaskCommand {
	return usecases.CreateTaskCommand{
		Title:       r.Title,
		Description: r.Description,
		AssigneeID:  r.AssigneeID,
		CreatedBy:   creatorID,
		Deadline:    r.Deadline,
		Attachments: r.Attachments,
	}
}

type AddCommentRequest struct {
	Content     string   `json:"content" binding:"required,max=5000"`
	Attachments []string `json:"attachments,omitempty"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in_progress done"`
}

type ListTasksRequest struct {
	Page       int
	PageSize   int
	Status     string
	AssigneeID *uint
}

func (r *ListTasksRequest) ToQuery(userID uint, role authorization.UserRole) usecases.ListTasksQuery {
	return usecases.ListTasksQuery{
		RequestedBy:   userID,
		RequestorRole: role,
		Status:        r.Status,
		AssigneeID:    r.AssigneeID,
		Page:          r.Page,
		PageSize:      r.PageSize,
	}
}

func parseListTasksRequest(c *gin.Context) (*ListTasksRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTasksRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}

	if assigneeIDStr := c.Query("assignee_id"); assigneeIDStr != "" {
		assigneeID, err := strconv.ParseUint(assigneeIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid assignee_id")
		}
		id := uint(assigneeID)
		req.AssigneeID = &id
	}

	return req, nil
}
