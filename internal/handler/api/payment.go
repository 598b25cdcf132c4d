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

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Initiate mobile-money payment
// @Description Send a charge prompt (or OTP challenge) to the payer's phone
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.InitiatePaymentRequest true "Charge request"
// @Success 200 {object} resdto.InitiatePaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/momo-payment [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req reqdto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing phone or amount", nil)
		return
	}

	result, err := h.cmds.Initiate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errors.Is(err, errs.ErrConfiguration):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server config error", nil)
		case errors.Is(err, errs.ErrUpstreamTimeout):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Moolre API timed out", nil)
		case errors.Is(err, errs.ErrUpstream):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Moolre API failed", nil)
		case errors.Is(err, errs.ErrUnexpectedResponse):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Unexpected Moolre response", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process payment", nil)
		}
		return
	}

	status := http.StatusOK
	if !result.Success() {
		// OTP rejection: caller resubmits with a corrected otpcode.
		status = http.StatusBadRequest
	}
	c.JSON(status, resdto.FromInitiationResult(result))
}
