package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staticmaps/internal/utils"
	"staticmaps/pkg/logger"

	"github.com/gin-gonic/gin"
)

const testSecret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAdminRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggingMiddleware(logger.NewNopLogger()))
	r.GET("/admin", AuthRequired(testSecret), AdminRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("subject"))
	})
	return r
}

func token(t *testing.T, role, secret string) string {
	t.Helper()
	tok, err := utils.GenerateToken("alice", role, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return tok
}

func TestAdminAccess(t *testing.T) {
	r := newAdminRouter()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad signature", "Bearer " + token(t, utils.RoleAdmin, "other"), http.StatusUnauthorized},
		{"not admin", "Bearer " + token(t, "viewer", testSecret), http.StatusForbidden},
		{"admin", "Bearer " + token(t, utils.RoleAdmin, testSecret), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
			if tt.want == http.StatusOK && w.Body.String() != "alice" {
				t.Errorf("subject = %q, want alice", w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newAdminRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if got := w.Header().Get(utils.HeaderRequestID); len(got) != 36 {
		t.Errorf("generated request id = %q, want a uuid", got)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(utils.HeaderRequestID, "given-id")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(utils.HeaderRequestID); got != "given-id" {
		t.Errorf("request id = %q, want given-id", got)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("allow origin = %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.test")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin allowed: %q", got)
	}
}
