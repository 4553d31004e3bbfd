package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(CorrelationID())
	r.GET("/test", func(c *gin.Context) {
		id := GetCorrelationID(c)
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	corrID := w.Header().Get(CorrelationIDHeader)
	if corrID == "" {
		t.Fatal("expected X-Correlation-ID header to be set")
	}

	if w.Body.String() != corrID {
		t.Errorf("body %q does not match header %q", w.Body.String(), corrID)
	}
}

func TestCorrelationIDMiddleware_UsesExistingID(t *testing.T) {
	r := gin.New()
	r.Use(CorrelationID())
	r.GET("/test", func(c *gin.Context) {
		id := GetCorrelationID(c)
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(CorrelationIDHeader, "my-custom-id")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	if got := w.Header().Get(CorrelationIDHeader); got != "my-custom-id" {
		t.Errorf("expected %q, got %q", "my-custom-id", got)
	}
}

func TestGetCorrelationID_NoContext(t *testing.T) {
	// Without the middleware a fresh UUID is generated per call.
	r := gin.New()
	r.GET("/test", func(c *gin.Context) {
		id := GetCorrelationID(c)
		if id == "" {
			t.Error("expected a generated UUID, got empty string")
		}
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
