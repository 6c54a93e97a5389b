package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const HeaderXCache = "X-Cache"

type ResponseCacheConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

func DefaultResponseCacheConfig() ResponseCacheConfig {
	return ResponseCacheConfig{
		TTL:             30 * time.Second,
		CleanupInterval: 5 * time.Minute,
	}
}

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache keeps successful GET responses in memory keyed by the full
// request URI. The data never change while the process runs, so the TTL
// only bounds memory.
type ResponseCache struct {
	store *cache.Cache
}

func NewResponseCache(config ResponseCacheConfig) *ResponseCache {
	return &ResponseCache{store: cache.New(config.TTL, config.CleanupInterval)}
}

// ItemCount reports how many responses are cached.
func (rc *ResponseCache) ItemCount() int {
	return rc.store.ItemCount()
}

func (rc *ResponseCache) Flush() {
	rc.store.Flush()
}

func (rc *ResponseCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if v, found := rc.store.Get(key); found {
			resp := v.(*cachedResponse)
			c.Header(HeaderXCache, "HIT")
			c.Data(resp.status, resp.contentType, resp.body)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w
		c.Header(HeaderXCache, "MISS")

		c.Next()

		if w.Status() != http.StatusOK {
			return
		}
		rc.store.SetDefault(key, &cachedResponse{
			status:      w.Status(),
			contentType: w.Header().Get("Content-Type"),
			body:        w.body.Bytes(),
		})
	}
}
