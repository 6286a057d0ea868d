package middlewares

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery trata panics: regista, reporta ao Sentry e responde 500.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic no handler",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
		)

		hub := sentry.GetHubFromContext(c.Request.Context())
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
		}
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("endpoint", c.FullPath())
			scope.SetTag("method", c.Request.Method)
			scope.SetLevel(sentry.LevelFatal)
			hub.CaptureException(fmt.Errorf("panic: %v", recovered))
		})

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
	})
}
