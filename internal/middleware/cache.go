package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CacheConfig represents cache control configuration
type CacheConfig struct {
	MaxAge         int
	Private        bool
	NoStore        bool
	MustRevalidate bool
	NoCache        bool
	Vary           []string
}

// DefaultCacheConfig keeps responses in the browser only and makes it
// revalidate them.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxAge:         60,
		Private:        true,
		MustRevalidate: true,
		Vary:           []string{"Accept"},
	}
}

// NoStoreConfig is used for screens that show patient details.
func NoStoreConfig() CacheConfig {
	return CacheConfig{NoStore: true}
}

// Directives renders the Cache-Control header value.
func (cfg CacheConfig) Directives() string {
	if cfg.NoStore {
		return "no-store"
	}

	directives := make([]string, 0, 4)
	if cfg.Private {
		directives = append(directives, "private")
	} else {
		directives = append(directives, "public")
	}
	if cfg.MaxAge > 0 {
		directives = append(directives, "max-age="+strconv.Itoa(cfg.MaxAge))
	}
	if cfg.NoCache {
		directives = append(directives, "no-cache")
	}
	if cfg.MustRevalidate {
		directives = append(directives, "must-revalidate")
	}
	return strings.Join(directives, ", ")
}

// Cache adds cache control headers to responses. Anything but GET is
// never cached.
func Cache(config CacheConfig) gin.HandlerFunc {
	value := config.Directives()
	vary := strings.Join(config.Vary, ", ")

	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}

		c.Header("Cache-Control", value)
		if config.NoStore {
			c.Header("Pragma", "no-cache")
		}
		if vary != "" {
			c.Header("Vary", vary)
		}
		c.Next()
	}
}
