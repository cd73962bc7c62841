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
	"github.com/vietanh2810/eventpass-api/internal/config"
	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/eventpass-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.Admin, error)
	GetAdmin(ctx context.Context, id uint) (domain.Admin, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login an admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, expiresAt, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), admin.ID, admin.Username, ctx.Request.UserAgent(), h.conf.SessionTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     admin,
	})
}

// HandleGetSession godoc
// @Summary      Current admin session
// @Tags         auth
// @Produce      json
// @Success      200      {object}   domain.Session
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/session [get]
// @Security BearerAuth
func (h *AuthHandler) HandleGetSession(ctx *gin.Context) {
	adminID, ok := middleware.AdminID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
		return
	}

	admin, err := h.svc.GetAdmin(ctx.Request.Context(), adminID)
	if err != nil {
		// a deleted admin keeps no session
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		err = fmt.Errorf("v1.HandleGetSession -> h.svc.GetAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, domain.Session{
		Admin:     admin,
		ExpiresAt: middleware.SessionExpiresAt(ctx),
	})
}
