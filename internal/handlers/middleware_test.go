package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ecosync/internal/logger"
	"ecosync/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{}, log)
	r := gin.New()
	r.Use(h.requestLogMiddleware)
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, p := range []string{"/ok", "/fail"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
	}

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 request logs, got %d", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[0].ContextMap()["path"] != "/ok" {
		t.Fatalf("unexpected ok entry: %+v", entries[0])
	}
	if entries[1].Level != zapcore.ErrorLevel || entries[1].ContextMap()["status"] != int64(http.StatusInternalServerError) {
		t.Fatalf("unexpected fail entry: %+v", entries[1])
	}
}

func TestRequestLogMiddleware_NilLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{}, nil)
	r := gin.New()
	r.Use(h.requestLogMiddleware)
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
