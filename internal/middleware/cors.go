package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chequero/internal/config"
)

// CORS returns a middleware that handles Cross-Origin Resource Sharing.
// Origins come from configuration; localhost defaults apply when none are set.
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	if len(allowed) == 0 {
		allowed["http://localhost:3000"] = true
		allowed["http://127.0.0.1:3000"] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept, Origin, X-Requested-With")
		c.Header("Access-Control-Max-Age", "86400")

		// Preflight requests end here.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
