package compliance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"opsportal/internal/application/compliance/usecases"
	"opsportal/internal/shared/errors"
	"opsportal/internal/shared/logger"
	"opsportal/internal/shared/utils"
)

// ComplianceHandler exposes manual triggers for the scheduled compliance
// scans plus the violation log. All endpoints are admin-only.
type ComplianceHandler struct {
	processDeadlinesUC    usecases.ProcessDeadlinesExecutor
	checkResponsivenessUC usecases.CheckResponsivenessExecutor
	listViolationsUC      usecases.ListViolationsExecutor
	logger                logger.Interface
}

func NewComplianceHandler(
	processDeadlinesUC usecases.ProcessDeadlinesExecutor,
	checkResponsivenessUC usecases.CheckResponsivenessExecutor,
	listViolationsUC usecases.ListViolationsExecutor,
) *ComplianceHandler {
	return &ComplianceHandler{
		processDeadlinesUC:    processDeadlinesUC,
		checkResponsivenessUC: checkResponsivenessUC,
		listViolationsUC:      listViolationsUC,
		logger:                logger.NewLogger(),
	}
}

// RunDeadlineScan handles POST /compliance/runs/deadlines.
// It mirrors the scheduled blue-page scan and returns the same run summary.
func (h *ComplianceHandler) RunDeadlineScan(c *gin.Context) {
	userID, _ := c.Get("user_id")
	h.logger.Infow("manual deadline scan triggered", "triggered_by", userID)

	result, err := h.processDeadlinesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Skipped {
		utils.SuccessResponse(c, http.StatusOK, "Deadline scan skipped, another run is in progress", result)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Deadline scan completed", result)
}

// RunResponsivenessScan handles POST /compliance/runs/responsiveness.
func (h *ComplianceHandler) RunResponsivenessScan(c *gin.Context) {
	userID, _ := c.Get("user_id")
	h.logger.Infow("manual responsiveness scan triggered", "triggered_by", userID)

	result, err := h.checkResponsivenessUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Skipped {
		utils.SuccessResponse(c, http.StatusOK, "Responsiveness scan skipped, another run is in progress", result)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Responsiveness scan completed", result)
}

// ListViolations handles GET /compliance/violations
func (h *ComplianceHandler) ListViolations(c *gin.Context) {
	query, err := parseListViolationsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listViolationsUC.Execute(c.Request.Context(), *query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Violations, result.Total, query.Page, query.PageSize)
}

func parseListViolationsQuery(c *gin.Context) (*usecases.ListViolationsQuery, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := &usecases.ListViolationsQuery{
		Page:     page,
		PageSize: pageSize,
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid user_id")
		}
		id := uint(userID)
		query.UserID = &id
	}

	if taskIDStr := c.Query("task_id"); taskIDStr != "" {
		taskID, err := strconv.ParseUint(taskIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid task_id")
		}
		id := uint(taskID)
		query.TaskID = &id
	}

	return query, nil
}
