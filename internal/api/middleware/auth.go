package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventpass-api/internal/pkg/jwthelper"
)

const (
	ctxKeyAdminID   = "adminID"
	ctxKeyUsername  = "username"
	ctxKeyExpiresAt = "sessionExpiresAt"
)

var errMissingToken = errors.New("missing bearer token")

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT accepts "Authorization: Bearer <token>", or a token query
// parameter for websocket clients that cannot set headers.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
			return
		}

		ctx.Set(ctxKeyAdminID, claims.AdminID)
		ctx.Set(ctxKeyUsername, claims.Username)
		ctx.Set(ctxKeyExpiresAt, claims.ExpiresAt.Time)

		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}

	return ctx.Query("token")
}

func AdminID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(ctxKeyAdminID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func Username(ctx *gin.Context) string {
	return ctx.GetString(ctxKeyUsername)
}

func SessionExpiresAt(ctx *gin.Context) time.Time {
	return ctx.GetTime(ctxKeyExpiresAt)
}
