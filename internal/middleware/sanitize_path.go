package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizePath strips markup from the request path and from the route params.
// Routing has already matched when middleware runs, so handlers read the params, not the path.
func SanitizePath() gin.HandlerFunc {
	p := bluemonday.StrictPolicy()
	return func(c *gin.Context) {
		c.Request.URL.Path = p.Sanitize(c.Request.URL.Path)
		for i := range c.Params {
			c.Params[i].Value = p.Sanitize(c.Params[i].Value)
		}
		c.Next()
	}
}
