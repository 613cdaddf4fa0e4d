package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Parallaxx203/audifyx-backend/internal/realtime"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/handlers"
	testhelpers "github.com/Parallaxx203/audifyx-backend/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.AudifyxFacadeStub{}
	engine := Setup(facade, realtime.NewHub(logger), logger)

	body, _ := json.Marshal(map[string]string{"username": "maya", "email": "maya@mail.test", "password": "secret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for points, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/users/2/follow", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for follow, got %d", resp.Code)
	}
}

var _ handlers.AudifyxFacade = (*testhelpers.AudifyxFacadeStub)(nil)
