package mail

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsportal/internal/application/mail/usecases"
	"opsportal/internal/shared/logger"
	"opsportal/internal/shared/utils"
)

type SendMailRequest struct {
	ProfileID uint   `json:"profile_id" binding:"required"`
	Subject   string `json:"subject" binding:"required,max=200"`
	Body      string `json:"body" binding:"required,max=20000"`
}

// MailHandler backs the admin mail composer.
type MailHandler struct {
	sendAdminMailUC usecases.SendAdminMailExecutor
	logger          logger.Interface
}

func NewMailHandler(sendAdminMailUC usecases.SendAdminMailExecutor) *MailHandler {
	return &MailHandler{
		sendAdminMailUC: sendAdminMailUC,
		logger:          logger.NewLogger(),
	}
}

// Send handles POST /mail
func (h *MailHandler) Send(c *gin.Context) {
	var req SendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for admin mail", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.SendAdminMailCommand{
		ProfileID: req.ProfileID,
		SentBy:    userID.(uint),
		Subject:   req.Subject,
		Body:      req.Body,
	}

	result, err := h.sendAdminMailUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mail sent successfully", result)
}
