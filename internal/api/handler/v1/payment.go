package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventpass-api/internal/api/middleware"
	"github.com/vietanh2810/eventpass-api/internal/domain"
)

type PaymentService interface {
	ApplyPayment(ctx context.Context, update domain.PaymentUpdate) (domain.Participant, error)
	PaymentHistory(ctx context.Context, participantID string) ([]domain.PaymentHistoryEntry, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleUpdatePayment godoc
// @Summary      Record a payment
// @Description  The status in the body is ignored and derived from the amounts. Appends one ledger entry.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentUpdateRequest  true  "payment"
// @Success      200      {object}  response.ParticipantResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /payments [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleUpdatePayment(ctx *gin.Context) {
	var req request.PaymentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	update := domain.PaymentUpdate{
		ParticipantID: req.ParticipantID,
		PaidAmount:    *req.PaidAmount,
		TotalAmount:   *req.TotalAmount,
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
		UpdatedBy:     req.UpdatedBy,
		Version:       req.Version,
	}
	if update.UpdatedBy == "" {
		update.UpdatedBy = middleware.Username(ctx)
	}
	if req.Timestamp != nil {
		update.Timestamp = *req.Timestamp
	}

	p, err := h.svc.ApplyPayment(ctx.Request.Context(), update)
	if err != nil {
		renderParticipantErr(ctx, "v1.HandleUpdatePayment -> h.svc.ApplyPayment", req.ParticipantID, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantResponse(p))
}

// HandleGetPaymentHistory godoc
// @Summary      Payment ledger of a participant
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "participant id"
// @Success      200  {array}   domain.PaymentHistoryEntry
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{id}/payments [get]
// @Security BearerAuth
func (h *PaymentHandler) HandleGetPaymentHistory(ctx *gin.Context) {
	id := ctx.Param("id")

	entries, err := h.svc.PaymentHistory(ctx.Request.Context(), id)
	if err != nil {
		renderParticipantErr(ctx, "v1.HandleGetPaymentHistory -> h.svc.PaymentHistory", id, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
