package agent

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"opsportal/internal/application/agent/usecases"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
	"opsportal/internal/shared/utils"
)

type AgentHandler struct {
	registerUC        usecases.RegisterAgentExecutor
	approveUC         usecases.ApproveAgentExecutor
	rejectUC          usecases.RejectAgentExecutor
	changeStatusUC    usecases.ChangeAgentStatusExecutor
	listAgentsUC      usecases.ListAgentsExecutor
	penaltyOverviewUC usecases.PenaltyOverviewExecutor
	logger            logger.Interface
}

func NewAgentHandler(
	registerUC usecases.RegisterAgentExecutor,
	approveUC usecases.ApproveAgentExecutor,
	rejectUC usecases.RejectAgentExecutor,
	changeStatusUC usecases.ChangeAgentStatusExecutor,
	listAgentsUC usecases.ListAgentsExecutor,
	penaltyOverviewUC usecases.PenaltyOverviewExecutor,
) *AgentHandler {
	return &AgentHandler{
		registerUC:        registerUC,
		approveUC:         approveUC,
		rejectUC:          rejectUC,
		changeStatusUC:    changeStatusUC,
		listAgentsUC:      listAgentsUC,
		penaltyOverviewUC: penaltyOverviewUC,
		logger:            logger.NewLogger(),
	}
}

// Register handles POST /agents/register
func (h *AgentHandler) Register(c *gin.Context) {
	var req RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for agent registration", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Registration submitted for approval")
}

// Approve handles POST /agents/:id/approve
func (h *AgentHandler) Approve(c *gin.Context) {
	profileID, err := parseAgentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.ApproveAgentCommand{
		ProfileID:  profileID,
		ApprovedBy: userID.(uint),
	}

	result, err := h.approveUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agent approved successfully", result)
}

// Reject handles DELETE /agents/:id
func (h *AgentHandler) Reject(c *gin.Context) {
	profileID, err := parseAgentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.RejectAgentCommand{
		ProfileID:  profileID,
		RejectedBy: userID.(uint),
	}

	if err := h.rejectUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ChangeStatus handles PATCH /agents/:id/status
func (h *AgentHandler) ChangeStatus(c *gin.Context) {
	profileID, err := parseAgentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeAgentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for agent status change", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.ChangeAgentStatusCommand{
		ProfileID: profileID,
		ChangedBy: userID.(uint),
		Action:    usecases.StatusAction(req.Action),
		Reason:    req.Reason,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agent status updated successfully", result)
}

// List handles GET /agents
func (h *AgentHandler) List(c *gin.Context) {
	req := parseListAgentsRequest(c)

	query := usecases.ListAgentsQuery{
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	result, err := h.listAgentsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Agents, result.Total, req.Page, req.PageSize)
}

// PenaltyOverview handles GET /agents/penalties
func (h *AgentHandler) PenaltyOverview(c *gin.Context) {
	result, err := h.penaltyOverviewUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseAgentID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid agent ID")
	}
	return uint(id), nil
}
