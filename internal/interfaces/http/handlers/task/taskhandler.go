package task

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"opsportal/internal/application/task/usecases"
	"opsportal/internal/shared/authorization"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
	"opsportal/internal/shared/utils"
)

type TaskHandler struct {
	createTaskUC   usecases.CreateTaskExecutor
	addCommentUC   usecases.AddCommentExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	getTaskUC      usecases.GetTaskExecutor
	listTasksUC    usecases.ListTasksExecutor
	logger         logger.Interface
}

func NewTaskHandler(
	createTaskUC usecases.CreateTaskExecutor,
	addCommentUC usecases.AddCommentExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	getTaskUC usecases.GetTaskExecutor,
	listTasksUC usecases.ListTasksExecutor,
) *TaskHandler {
	return &TaskHandler{
		createTaskUC:   createTaskUC,
		addCommentUC:   addCommentUC,
		changeStatusUC: changeStatusUC,
		getTaskUC:      getTaskUC,
		listTasksUC:    listTasksUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create task", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createTaskUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Task created successfully")
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	query := usecases.GetTaskQuery{
		TaskID:        taskID,
		RequestedBy:   userID.(uint),
		RequestorRole: authorization.ParseUserRole(c.GetString("user_role")),
	}

	result, err := h.getTaskUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	req, err := parseListTasksRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	query := req.ToQuery(userID.(uint), authorization.ParseUserRole(c.GetString("user_role")))

	result, err := h.listTasksUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tasks, result.Total, req.Page, req.PageSize)
}

// AddComment handles POST /tasks/:id/comments
func (h *TaskHandler) AddComment(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.AddCommentCommand{
		TaskID:      taskID,
		AuthorID:    userID.(uint),
		Content:     req.Content,
		Attachments: req.Attachments,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// UpdateTaskStatus handles PATCH /tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update task status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.ChangeStatusCommand{
		TaskID:        taskID,
		RequestedBy:   userID.(uint),
		RequestorRole: authorization.ParseUserRole(c.GetString("user_role")),
		NewStatus:     req.Status,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task status updated successfully", result)
}

func parseTaskID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid task ID")
	}
	return uint(id), nil
}
