package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func TestGinMiddlewareLabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/items/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/such/route", nil))

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	var matched, unmatched bool
	for _, family := range families {
		if family.GetName() != "foliocms_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() != "route" {
					continue
				}
				switch label.GetValue() {
				case "/items/:id":
					matched = true
				case "unmatched":
					unmatched = true
				}
				// 路由标签必须是注册模板，原始 URL 不得进入标签值。
				if strings.Contains(label.GetValue(), "42") {
					t.Fatalf("raw URL leaked into route label: %q", label.GetValue())
				}
			}
		}
	}
	if !matched {
		t.Fatal("matched route was not counted under its template")
	}
	if !unmatched {
		t.Fatal("unmatched request was not counted under the unmatched bucket")
	}
}
