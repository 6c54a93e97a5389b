package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAPIVersion    = "X-API-Version"
	HeaderAcceptVersion = "Accept-Version"
)

// VersionConfig represents version middleware configuration
type VersionConfig struct {
	Current   string
	Supported []string
}

func DefaultVersionConfig() VersionConfig {
	return VersionConfig{
		Current:   "1.0",
		Supported: []string{"1.0"},
	}
}

// Version stamps API responses with the served version and rejects
// requests asking for a version this server does not speak.
func Version(config VersionConfig) gin.HandlerFunc {
	supported := make(map[string]bool, len(config.Supported))
	for _, v := range config.Supported {
		supported[v] = true
	}

	return func(c *gin.Context) {
		c.Header(HeaderAPIVersion, config.Current)

		if requested := c.GetHeader(HeaderAcceptVersion); requested != "" && !supported[requested] {
			c.AbortWithStatusJSON(http.StatusNotAcceptable, ErrorResponse{
				Status:  "error",
				Code:    http.StatusNotAcceptable,
				Message: fmt.Sprintf("API version %s not supported", requested),
				TraceID: GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
