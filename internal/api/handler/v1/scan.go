package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/i18n"
	"github.com/vietanh2810/eventpass-api/internal/service"
)

type ScanService interface {
	Resolve(ctx context.Context, text, scannedBy, deviceInfo string) (domain.ScanResult, error)
}

type Translator interface {
	T(locale, key string, data map[string]any) string
	StatusLabel(locale string, s domain.PaymentStatus) string
}

type ScanHandler struct {
	svc        ScanService
	translator Translator
}

func NewScanHandler(svc ScanService, translator Translator) *ScanHandler {
	return &ScanHandler{
		svc:        svc,
		translator: translator,
	}
}

// HandleScan godoc
// @Summary      Resolve a scanned QR code
// @Description  Accepts the decoded text of a participant QR (JSON payload or /qr-display/<id> URL) and returns the live record.
// @Tags         scans
// @Accept       json
// @Produce      json
// @Param        lang     query     string               false  "locale for labels (es, en)"
// @Param        request  body      request.ScanRequest  true   "decoded QR text"
// @Success      200      {object}  response.ScanResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /scans [post]
func (h *ScanHandler) HandleScan(ctx *gin.Context) {
	locale := requestLocale(ctx)

	var req request.ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Resolve(ctx.Request.Context(), req.Text, req.ScannedBy, req.DeviceInfo)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnrecognizedFormat):
			response.RenderErr(ctx, response.ErrUnprocessable(err, h.translator.T(locale, i18n.KeyScanUnrecognized, nil)))
		case errors.Is(err, service.ErrParticipantNotFound):
			e := response.ErrNotFound("participant", "qr", req.Text)
			e.ErrorText = h.translator.T(locale, i18n.KeyScanNotFound, nil)
			response.RenderErr(ctx, e)
		default:
			err = fmt.Errorf("v1.HandleScan -> h.svc.Resolve -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	label := h.translator.StatusLabel(locale, result.Participant.PaymentStatus)
	ctx.JSON(http.StatusOK, response.ScanResponse{
		Participant: response.NewParticipantResponse(result.Participant),
		ResolvedVia: result.Embedded.ResolvedVia,
		Embedded:    result.Embedded,
		StatusLabel: label,
		Message: h.translator.T(locale, i18n.KeyScanResolved, map[string]any{
			"Name":   result.Participant.FullName,
			"Status": label,
		}),
	})
}

// requestLocale prefers ?lang= and falls back to Accept-Language.
func requestLocale(ctx *gin.Context) string {
	if lang := ctx.Query("lang"); lang != "" {
		return lang
	}
	return ctx.GetHeader("Accept-Language")
}
