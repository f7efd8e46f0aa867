// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")

		// Handle values like "en-US,en;q=0.9"; only English ships today.
		if lang != "" {
			langs := strings.Split(lang, ",")
			first := strings.TrimSpace(strings.Split(langs[0], ";")[0])
			switch first {
			case "en", "en-US", "en-GB":
				lang = "en"
			default:
				lang = "en"
			}
		} else {
			lang = "en"
		}

		c.Set("lang", lang)
		c.Next()
	}
}
