package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestContext garante um identificador por pedido: reaproveita o header
// X-Request-ID quando vem do proxy, senão gera um novo. O valor é devolvido
// no mesmo header da resposta.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID retorna o identificador do pedido atual
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
