package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/pagelab/internal/api/middleware"
	"github.com/GriffinCanCode/pagelab/internal/domain/catalog"
	"github.com/GriffinCanCode/pagelab/internal/domain/query"
	"github.com/GriffinCanCode/pagelab/internal/infrastructure/config"
	"github.com/GriffinCanCode/pagelab/internal/infrastructure/logging"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Data.Seed = 7
	cfg.RateLimit.StrictRPS = 1
	cfg.RateLimit.StrictBurst = 2
	return cfg
}

func startTestServer(t *testing.T, cfg *config.Config) (*Server, *resty.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv, err := NewServer(cfg, logging.NewNop())
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		srv.tracer.Close()
	})

	return srv, resty.New().SetBaseURL(ts.URL)
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = ""

	_, err := NewServer(cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestServerCatalogFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Data.Users = 30
	cfg.Data.Products = 12

	srv, _ := startTestServer(t, cfg)
	assert.Equal(t, catalog.Stats{Users: 30, Products: 12}, srv.Store().Stats())
}

func TestServerOffsetPagination(t *testing.T) {
	_, client := startTestServer(t, testConfig())

	var page query.Page[catalog.User]
	resp, err := client.R().
		SetQueryParams(map[string]string{"page": "2", "limit": "5"}).
		SetResult(&page).
		Get("/api/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	assert.Equal(t, 100, page.Total)
	assert.Equal(t, 20, page.TotalPages)
	assert.Equal(t, &query.PageRef{Page: 3, Limit: 5}, page.Next)
	assert.Equal(t, &query.PageRef{Page: 1, Limit: 5}, page.Previous)
	require.Len(t, page.Data, 5)
	assert.Equal(t, 6, page.Data[0].ID)

	// Middleware stack
	assert.Equal(t, "nosniff", resp.Header().Get(middleware.HeaderXContentTypeOptions))
	assert.Equal(t, "200", resp.Header().Get(middleware.HeaderRateLimitLimit))
	assert.NotEmpty(t, resp.Header().Get("X-Trace-ID"))
	assert.NotEmpty(t, resp.Header().Get(middleware.HeaderXRequestID))
}

func gzipEncoding(t *testing.T, client *resty.Client, path string) string {
	t.Helper()
	resp, err := client.R().
		SetHeader("Accept-Encoding", "gzip").
		SetDoNotParseResponse(true).
		Get(path)
	require.NoError(t, err)
	defer resp.RawBody().Close()
	return resp.Header().Get("Content-Encoding")
}

func TestServerCompression(t *testing.T) {
	_, client := startTestServer(t, testConfig())
	assert.Equal(t, "gzip", gzipEncoding(t, client, "/api/products"))
}

func TestServerValidationError(t *testing.T) {
	_, client := startTestServer(t, testConfig())

	var body map[string]string
	resp, err := client.R().
		SetQueryParam("limit", "51").
		SetError(&body).
		Get("/api/products")
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, map[string]string{"error": query.MsgLimitExceeded}, body)
}

func TestServerCursorWalk(t *testing.T) {
	_, client := startTestServer(t, testConfig())

	var seen []int
	cursor := "0"
	for {
		var page query.CursorPage[catalog.User]
		resp, err := client.R().
			SetQueryParams(map[string]string{"cursor": cursor, "limit": "30"}).
			SetResult(&page).
			Get("/api/users/cursor")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())

		for _, u := range page.Data {
			seen = append(seen, u.ID)
		}
		if !page.HasMore {
			break
		}
		require.NotNil(t, page.NextCursor)
		cursor = strconv.Itoa(*page.NextCursor)
	}

	require.Len(t, seen, 100)
	for i, id := range seen {
		assert.Equal(t, i+1, id)
	}
}

func TestServerStrictLimiter(t *testing.T) {
	_, client := startTestServer(t, testConfig())

	for i := 0; i < 2; i++ {
		resp, err := client.R().Get("/api/limited/ping")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode())
	}

	resp, err := client.R().Get("/api/limited/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode())
	assert.NotEmpty(t, resp.Header().Get(middleware.HeaderRetryAfter))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, resp.String())

	// The general budget is untouched
	resp, err = client.R().Get("/api/users")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestServerCORSPreflight(t *testing.T) {
	_, client := startTestServer(t, testConfig())

	resp, err := client.R().
		SetHeader("Origin", "http://localhost:3000").
		SetHeader("Access-Control-Request-Method", "GET").
		Options("/api/products")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerMetricsEndpoint(t *testing.T) {
	_, client := startTestServer(t, testConfig())

	_, err := client.R().Get("/api/products/sorted?sortBy=price")
	require.NoError(t, err)

	resp, err := client.R().Get("/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	body := resp.String()
	assert.Contains(t, body, `pagelab_queries_total{endpoint="products.sorted",outcome="ok"} 1`)
	assert.Contains(t, body, `pagelab_catalog_items{collection="users"} 100`)
}

func TestServerDisabledFeatures(t *testing.T) {
	cfg := testConfig()
	cfg.Security.Enabled = false
	cfg.RateLimit.Enabled = false
	cfg.Compression.Enabled = false

	_, client := startTestServer(t, cfg)

	for i := 0; i < 5; i++ {
		resp, err := client.R().Get("/api/limited/ping")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
	}

	resp, err := client.R().Get("/api/users")
	require.NoError(t, err)
	assert.Empty(t, resp.Header().Get(middleware.HeaderXContentTypeOptions))
	assert.Empty(t, resp.Header().Get(middleware.HeaderRateLimitLimit))
	assert.Empty(t, gzipEncoding(t, client, "/api/products"))
}

func TestServeAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv, err := NewServer(testConfig(), logging.NewNop())
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(l) }()

	client := resty.New().SetBaseURL("http://" + l.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := client.R().Get("/health")
		return err == nil && resp.StatusCode() == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}
