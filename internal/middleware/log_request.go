package middleware

import (
	"time"

	"acronym-finder/internal/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// LogRequest logs every request once it has been handled, with its status and latency.
func LogRequest() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		traceId := ctx.GetString(utils.TraceIdKey.String())
		entry := log.WithFields(log.Fields{
			"traceId": traceId,
			"service": utils.ExtractServiceName(),
			"status":  ctx.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		utils.LogEntry(entry, "info", "Request handled: "+ctx.Request.Method+" "+ctx.Request.URL.Path)
	}
}
