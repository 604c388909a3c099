package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type RequestRecorder interface {
	ObserveRequest(route, code string)
}

// Metrics counts requests by matched route template rather than raw path.
func Metrics(rec RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.ObserveRequest(route, strconv.Itoa(c.Writer.Status()))
	}
}
