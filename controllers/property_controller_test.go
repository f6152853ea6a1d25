package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newDeleteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pc := NewPropertyController(nil)
	r.DELETE("/api/properties/:id", pc.Delete)
	return r
}

func TestDeleteRequiereOwnerIDEnElBody(t *testing.T) {
	r := newDeleteRouter()

	tests := []struct {
		name   string
		target string
		body   string
		want   int
	}{
		{"sin body", "/api/properties/1", "", http.StatusUnauthorized},
		{"owner_id en cero", "/api/properties/1", `{"owner_id":0}`, http.StatusUnauthorized},
		{"owner_id solo como query param", "/api/properties/1?owner_id=3", "", http.StatusUnauthorized},
		{"id no numérico", "/api/properties/abc", `{"owner_id":3}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
