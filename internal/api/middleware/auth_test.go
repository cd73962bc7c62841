package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/eventpass-api/internal/pkg/jwthelper"
)

const testKey = "test-signing-key"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewAuthenticator(testKey).VerifyJWT(), func(ctx *gin.Context) {
		id, _ := AdminID(ctx)
		ctx.JSON(http.StatusOK, gin.H{"adminID": id, "username": Username(ctx)})
	})
	return r
}

func TestVerifyJWT(t *testing.T) {
	r := newProtectedRouter()
	token, _, err := jwthelper.GenerateToken([]byte(testKey), 3, "door", "", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(req *http.Request)
		target string
		want   int
	}{
		{"no token", func(*http.Request) {}, "/protected", http.StatusUnauthorized},
		{"bearer header", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }, "/protected", http.StatusOK},
		{"query param", func(*http.Request) {}, "/protected?token=" + token, http.StatusOK},
		{"garbage", func(req *http.Request) { req.Header.Set("Authorization", "Bearer nope") }, "/protected", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestVerifyJWT_Expired(t *testing.T) {
	r := newProtectedRouter()
	token, _, err := jwthelper.GenerateToken([]byte(testKey), 3, "door", "", -time.Second)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
