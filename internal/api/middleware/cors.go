package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows every origin when domains is empty or contains "*",
// otherwise only the listed ones.
func ConfigCORS(domains []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	conf.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	conf.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}

	if allowAll(domains) {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = domains
	}

	return cors.New(conf)
}

func allowAll(domains []string) bool {
	if len(domains) == 0 {
		return true
	}

	for _, d := range domains {
		if d == "*" {
			return true
		}
	}

	return false
}
