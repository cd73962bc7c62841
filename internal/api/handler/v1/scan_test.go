package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/i18n"
	"github.com/vietanh2810/eventpass-api/internal/service"
)

type fakeScanService struct {
	resolveFn func(ctx context.Context, text, scannedBy, deviceInfo string) (domain.ScanResult, error)
}

func (f *fakeScanService) Resolve(ctx context.Context, text, scannedBy, deviceInfo string) (domain.ScanResult, error) {
	return f.resolveFn(ctx, text, scannedBy, deviceInfo)
}

func newScanRouter(svc ScanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/scans", NewScanHandler(svc, i18n.NewTranslator("es")).HandleScan)
	return r
}

func postScan(r http.Handler, path, body, acceptLanguage string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleScan_Resolved(t *testing.T) {
	var gotScannedBy string
	svc := &fakeScanService{
		resolveFn: func(ctx context.Context, text, scannedBy, deviceInfo string) (domain.ScanResult, error) {
			gotScannedBy = scannedBy
			p := domain.Participant{ID: "p-1", FullName: "Ana"}
			p.SetAmounts(decimal.NewFromInt(40), decimal.NewFromInt(100))
			return domain.ScanResult{
				Participant: p,
				Embedded:    domain.ScanPayload{ID: "p-1", ResolvedVia: domain.ResolvedViaJSON},
			}, nil
		},
	}
	r := newScanRouter(svc)

	w := postScan(r, "/scans", `{"text":"{\"id\":\"p-1\"}","scannedBy":"door"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "door", gotScannedBy)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "json", body["resolvedVia"])
	assert.Equal(t, "ABONADO", body["statusLabel"])
	assert.Equal(t, "Ana: ABONADO", body["message"])
	participant := body["participant"].(map[string]any)
	assert.Equal(t, "partial", participant["paymentStatus"])
	assert.EqualValues(t, 60, participant["pendingAmount"])

	w = postScan(r, "/scans?lang=en", `{"text":"x"}`, "es")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "PARTIALLY PAID", body["statusLabel"])
}

func TestHandleScan_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		lang       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "unrecognized, default locale",
			err:        service.ErrUnrecognizedFormat,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "Formato de QR no reconocido",
		},
		{
			name:       "unrecognized, english",
			err:        service.ErrUnrecognizedFormat,
			lang:       "en-US,en;q=0.9",
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "Unrecognized QR format",
		},
		{
			name:       "participant gone",
			err:        fmt.Errorf("s.participants.FindByID -> %w", service.ErrParticipantNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "Participante no encontrado",
		},
		{
			name:       "store failure",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeScanService{
				resolveFn: func(ctx context.Context, text, scannedBy, deviceInfo string) (domain.ScanResult, error) {
					return domain.ScanResult{}, tt.err
				},
			}

			w := postScan(newScanRouter(svc), "/scans", `{"text":"hola"}`, tt.lang)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantError != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestHandleScan_EmptyText(t *testing.T) {
	svc := &fakeScanService{
		resolveFn: func(ctx context.Context, text, scannedBy, deviceInfo string) (domain.ScanResult, error) {
			t.Fatal("service must not be called")
			return domain.ScanResult{}, nil
		},
	}

	w := postScan(newScanRouter(svc), "/scans", `{"text":""}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
