package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventpass-api/internal/api/middleware"
	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/service"
)

type ParticipantService interface {
	Register(ctx context.Context, reg service.Registration) (domain.Participant, error)
	Get(ctx context.Context, id string) (domain.Participant, error)
	List(ctx context.Context) ([]domain.Participant, error)
	Update(ctx context.Context, id string, patch domain.ParticipantPatch, actor string) (domain.Participant, error)
	Delete(ctx context.Context, id string) error
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register a participant
// @Description  Amounts default to the configured total and zero paid. The payment status is derived.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterParticipantRequest  true  "registration"
// @Success      201      {object}  response.ParticipantResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /participants [post]
func (h *ParticipantHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	p, err := h.svc.Register(ctx.Request.Context(), service.Registration{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Age:         req.Age,
		Email:       req.Email,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewParticipantResponse(p))
}

// HandleList godoc
// @Summary      List participants
// @Tags         participants
// @Produce      json
// @Success      200  {array}   response.ParticipantResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleList(ctx *gin.Context) {
	participants, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleList -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantResponses(participants))
}

// HandleGet godoc
// @Summary      Get a participant
// @Tags         participants
// @Produce      json
// @Param        id   path      string  true  "participant id"
// @Success      200  {object}  response.ParticipantResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{id} [get]
func (h *ParticipantHandler) HandleGet(ctx *gin.Context) {
	id := ctx.Param("id")

	p, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGet -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantResponse(p))
}

// HandleUpdate godoc
// @Summary      Update a participant
// @Description  Partial update. Send the last seen version to detect concurrent edits.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "participant id"
// @Param        request  body      request.UpdateParticipantRequest    true  "fields to change"
// @Success      200      {object}  response.ParticipantResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /participants/{id} [put]
// @Security BearerAuth
func (h *ParticipantHandler) HandleUpdate(ctx *gin.Context) {
	id := ctx.Param("id")

	var req request.UpdateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	patch := domain.ParticipantPatch{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Age:         req.Age,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		Version:     req.Version,
	}
	if req.Email != nil {
		if *req.Email == "" {
			patch.ClearEmail = true
		} else {
			patch.Email = req.Email
		}
	}

	p, err := h.svc.Update(ctx.Request.Context(), id, patch, middleware.Username(ctx))
	if err != nil {
		renderParticipantErr(ctx, "v1.HandleUpdate -> h.svc.Update", id, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantResponse(p))
}

// HandleDelete godoc
// @Summary      Delete a participant
// @Tags         participants
// @Param        id   path      string  true  "participant id"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{id} [delete]
// @Security BearerAuth
func (h *ParticipantHandler) HandleDelete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderParticipantErr(ctx, "v1.HandleDelete -> h.svc.Delete", id, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetQRCode godoc
// @Summary      Participant QR code
// @Tags         participants
// @Produce      png
// @Param        id   path      string  true  "participant id"
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{id}/qr.png [get]
func (h *ParticipantHandler) HandleGetQRCode(ctx *gin.Context) {
	id := ctx.Param("id")

	png, err := h.svc.QRCode(ctx.Request.Context(), id)
	if err != nil {
		renderParticipantErr(ctx, "v1.HandleGetQRCode -> h.svc.QRCode", id, err)
		return
	}

	ctx.Header("Cache-Control", "no-store")
	ctx.Data(http.StatusOK, "image/png", png)
}

func renderParticipantErr(ctx *gin.Context, op, id string, err error) {
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		response.RenderErr(ctx, response.ErrNotFound("participant", "id", id))
	case errors.Is(err, service.ErrVersionConflict):
		response.RenderErr(ctx, response.ErrConflict(service.ErrVersionConflict))
	case errors.Is(err, service.ErrInvalidAmount):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidAmount))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}
