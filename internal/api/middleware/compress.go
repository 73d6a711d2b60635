package middleware

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
)

// CompressionConfig controls response compression.
type CompressionConfig struct {
	Level int
	// ExcludedPaths are served uncompressed, for handlers that negotiate
	// their own encoding.
	ExcludedPaths []string
}

// DefaultCompressionConfig returns the default gzip settings.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		Level:         gzip.DefaultCompression,
		ExcludedPaths: []string{"/metrics"},
	}
}

type gzipWriter struct {
	gin.ResponseWriter
	writer  *gzip.Writer
	written bool
}

func (g *gzipWriter) WriteHeader(code int) {
	g.Header().Del(HeaderContentLength)
	g.ResponseWriter.WriteHeader(code)
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	g.written = true
	g.Header().Del(HeaderContentLength)
	return g.writer.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

// Compress gzips response bodies for clients that accept it.
func Compress(cfg CompressionConfig) (gin.HandlerFunc, error) {
	// Fail on a bad level at construction rather than per request.
	if _, err := gzip.NewWriterLevel(io.Discard, cfg.Level); err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(cfg.ExcludedPaths))
	for _, p := range cfg.ExcludedPaths {
		excluded[p] = struct{}{}
	}

	pool := sync.Pool{
		New: func() any {
			w, _ := gzip.NewWriterLevel(io.Discard, cfg.Level)
			return w
		},
	}

	return func(c *gin.Context) {
		if !acceptsGzip(c.Request) {
			c.Next()
			return
		}
		if _, skip := excluded[c.Request.URL.Path]; skip {
			c.Next()
			return
		}

		gz := pool.Get().(*gzip.Writer)
		defer pool.Put(gz)
		gz.Reset(c.Writer)

		h := c.Writer.Header()
		h.Set(HeaderContentEncoding, "gzip")
		h.Add(HeaderVary, HeaderAcceptEncoding)

		original := c.Writer
		gw := &gzipWriter{ResponseWriter: original, writer: gz}
		c.Writer = gw

		c.Next()

		c.Writer = original
		if !gw.written {
			// Nothing to compress; avoid emitting an empty gzip stream.
			h.Del(HeaderContentEncoding)
			gz.Reset(io.Discard)
			return
		}
		_ = gz.Close()
	}, nil
}

func acceptsGzip(r *http.Request) bool {
	if r.Method == http.MethodHead {
		return false
	}
	if r.Header.Get("Connection") == "Upgrade" {
		return false
	}
	for _, part := range strings.Split(r.Header.Get(HeaderAcceptEncoding), ",") {
		enc, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(enc, "gzip") {
			return true
		}
	}
	return false
}
