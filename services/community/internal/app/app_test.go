package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"community-feed/pkg/config"
	"community-feed/pkg/jwt"
	"community-feed/pkg/logger"
	communityHTTP "community-feed/services/community/internal/controller/http"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.FromZap(zap.NewNop())
	cfg := &config.Config{CORSOrigins: []string{"http://localhost:3000"}}

	// Handlers with nil use cases are fine for routes that never reach them.
	h := handlers{
		posts:       communityHTTP.NewPostHandler(nil, nil, nil, log),
		comments:    communityHTTP.NewCommentHandler(nil, nil, log),
		likes:       communityHTTP.NewLikeHandler(nil, log),
		leaderboard: communityHTTP.NewLeaderboardHandler(nil, 0, 0, log),
		auth:        communityHTTP.NewAuthHandler(nil, nil, log),
	}
	return newRouter(cfg, jwt.NewService("test-secret"), h)
}

func TestRouter_Health(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_MeRequiresToken(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_Routes(t *testing.T) {
	registered := make(map[string]bool)
	for _, route := range testRouter().Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /api/v1/posts",
		"POST /api/v1/posts",
		"GET /api/v1/posts/:id",
		"DELETE /api/v1/posts/:id",
		"GET /api/v1/posts/:id/comments",
		"POST /api/v1/posts/:id/like",
		"POST /api/v1/comments",
		"DELETE /api/v1/comments/:id",
		"POST /api/v1/comments/:id/like",
		"POST /api/v1/likes",
		"GET /api/v1/leaderboard",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"GET /api/v1/auth/me",
	} {
		assert.True(t, registered[want], want)
	}
}
