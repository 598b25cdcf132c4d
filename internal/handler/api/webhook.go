package api

import (
	"errors"
	"net/http"

	reqdto "payconnect/internal/handler/dto/request"
	resdto "payconnect/internal/handler/dto/response"
	"payconnect/internal/handler/httperr"
	"payconnect/internal/usecase/commands"
	"payconnect/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Moolre confirmation webhook
// @Description Receive the asynchronous charge outcome from the processor
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.MoolreWebhookRequest true "Webhook event"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/webhook/moolre [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	var evt reqdto.MoolreWebhookRequest
	if err := c.ShouldBindJSON(&evt); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed webhook payload", nil)
		return
	}

	result, err := h.cmds.Confirm(c.Request.Context(), evt)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuthentication):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid secret", nil)
		case errors.Is(err, errs.ErrMissingOrderRef):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing order reference", nil)
		default:
			// Still a 200: the processor must not retry on our
			// internal failures.
			c.JSON(http.StatusOK, resdto.WebhookAckResponse{Success: false, Message: "Internal webhook error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWebhookResult(result))
}
