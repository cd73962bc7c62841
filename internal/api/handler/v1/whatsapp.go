package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventpass-api/internal/api/middleware"
	"github.com/vietanh2810/eventpass-api/internal/pkg/whatsapp"
)

type WhatsAppSender interface {
	Send(ctx context.Context, msg whatsapp.Message) error
}

type WhatsAppHandler struct {
	sender WhatsAppSender
}

func NewWhatsAppHandler(sender WhatsAppSender) *WhatsAppHandler {
	return &WhatsAppHandler{
		sender: sender,
	}
}

// HandleSendWhatsApp godoc
// @Summary      Send a participant's QR over WhatsApp
// @Description  Forwards the participant to the external webhook. Upstream errors are returned verbatim with 502.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request  body      request.SendWhatsAppRequest  true  "participant"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /send-whatsapp [post]
// @Security BearerAuth
func (h *WhatsAppHandler) HandleSendWhatsApp(ctx *gin.Context) {
	var req request.SendWhatsAppRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.sender.Send(ctx.Request.Context(), whatsapp.Message{
		ParticipantID: req.ID,
		FullName:      req.FullName,
		Phone:         req.Phone,
		Age:           req.Age,
	})
	if err != nil {
		if errors.Is(err, whatsapp.ErrUpstreamFailure) {
			response.RenderErr(ctx, response.ErrBadGateway(err))
			return
		}

		err = fmt.Errorf("v1.HandleSendWhatsApp -> h.sender.Send -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	zap.L().Info("whatsapp message sent",
		zap.String("participant_id", req.ID),
		zap.String("requested_by", middleware.Username(ctx)))

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "sent"})
}
