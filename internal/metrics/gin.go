package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 耗时桶按内容接口的量级选取：绝大多数请求在几十毫秒内返回，
// 长尾主要来自简历拼装和冷启动时的 sqlite 页缓存。
var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foliocms",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "按方法、路由与状态码统计的请求总数。",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "foliocms",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "按方法与路由统计的请求耗时（秒）。",
		Buckets:   []float64{0.005, 0.02, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})

	responseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "foliocms",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "按方法与路由统计的响应体大小（字节）。",
		Buckets:   prometheus.ExponentialBuckets(256, 4, 6),
	}, []string{"method", "route"})
)

// GinMiddleware 采集每个请求的量级指标。路由标签取注册模板而非
// 原始 URL，未匹配任何路由的请求统一记到 "unmatched"，避免标签
// 基数随请求路径膨胀。
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}

		requestTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		responseSize.WithLabelValues(method, route).Observe(float64(size))
	}
}
