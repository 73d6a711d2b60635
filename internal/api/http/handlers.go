package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GriffinCanCode/pagelab/internal/api/middleware"
	"github.com/GriffinCanCode/pagelab/internal/domain/query"
	"github.com/GriffinCanCode/pagelab/internal/infrastructure/monitoring"
)

// Service identity reported by the root endpoint.
const (
	ServiceName    = "pagelab"
	ServiceVersion = "1.0.0"
)

// Query endpoint labels for metrics.
const (
	EndpointUsersList      = "users.list"
	EndpointUsersSearch    = "users.search"
	EndpointUsersCursor    = "users.cursor"
	EndpointUsersGet       = "users.get"
	EndpointProductsList   = "products.list"
	EndpointProductsFilter = "products.filter"
	EndpointProductsSorted = "products.sorted"
	EndpointProductsGet    = "products.get"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	engine     *query.Engine
	metrics    *monitoring.Metrics
	security   middleware.SecurityConfig
	instanceID string
	startedAt  time.Time
}

// NewHandlers creates a new handler set. A nil metrics gets a private
// collector so handlers never need nil checks.
func NewHandlers(engine *query.Engine, metrics *monitoring.Metrics, security middleware.SecurityConfig) *Handlers {
	if metrics == nil {
		metrics = monitoring.NewMetrics()
	}
	return &Handlers{
		engine:     engine,
		metrics:    metrics,
		security:   security,
		instanceID: uuid.NewString(),
		startedAt:  time.Now(),
	}
}

// InstanceID identifies this process in health responses
func (h *Handlers) InstanceID() string {
	return h.instanceID
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	renderJSON(c, http.StatusOK, gin.H{
		"status":  "online",
		"service": ServiceName,
		"version": ServiceVersion,
		"endpoints": []string{
			"/api/users",
			"/api/users/search",
			"/api/users/cursor",
			"/api/users/:id",
			"/api/products",
			"/api/products/filter",
			"/api/products/sorted",
			"/api/products/:id",
			"/api/limited/ping",
			"/api/security/headers",
			"/health",
			"/metrics",
		},
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	renderJSON(c, http.StatusOK, gin.H{
		"status":        "healthy",
		"instanceId":    h.instanceID,
		"catalog":       h.engine.Store().Stats(),
		"uptimeSeconds": int64(time.Since(h.startedAt).Seconds()),
		"requests":      h.metrics.Stats(),
	})
}

// ListUsers handles GET /api/users
func (h *Handlers) ListUsers(c *gin.Context) {
	params := query.DefaultOffsetParams()
	if err := bindQuery(c, &params, query.MsgNotInteger); err != nil {
		h.fail(c, EndpointUsersList, err)
		return
	}

	page, err := h.engine.ListUsers(params)
	if err != nil {
		h.fail(c, EndpointUsersList, err)
		return
	}
	h.ok(c, EndpointUsersList, len(page.Data), page)
}

// SearchUsers handles GET /api/users/search
func (h *Handlers) SearchUsers(c *gin.Context) {
	params := query.SearchParams{OffsetParams: query.DefaultOffsetParams()}
	if err := bindQuery(c, &params, query.MsgNotInteger); err != nil {
		h.fail(c, EndpointUsersSearch, err)
		return
	}

	result, err := h.engine.SearchUsers(params)
	if err != nil {
		h.fail(c, EndpointUsersSearch, err)
		return
	}
	h.ok(c, EndpointUsersSearch, len(result.Data), result)
}

// UsersCursor handles GET /api/users/cursor
func (h *Handlers) UsersCursor(c *gin.Context) {
	params := query.DefaultCursorParams()
	if err := bindQuery(c, &params, query.MsgCursorNotInteger); err != nil {
		h.fail(c, EndpointUsersCursor, err)
		return
	}

	page, err := h.engine.UsersAfter(params)
	if err != nil {
		h.fail(c, EndpointUsersCursor, err)
		return
	}
	h.ok(c, EndpointUsersCursor, len(page.Data), page)
}

// GetUser handles GET /api/users/:id
func (h *Handlers) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.metrics.RecordQuery(EndpointUsersGet, monitoring.OutcomeMissing, 0)
		renderNotFound(c, "user")
		return
	}

	user, ok := h.engine.Store().User(id)
	if !ok {
		h.metrics.RecordQuery(EndpointUsersGet, monitoring.OutcomeMissing, 0)
		renderNotFound(c, "user")
		return
	}
	h.ok(c, EndpointUsersGet, 1, user)
}

// ListProducts handles GET /api/products
func (h *Handlers) ListProducts(c *gin.Context) {
	params := query.DefaultOffsetParams()
	if err := bindQuery(c, &params, query.MsgNotInteger); err != nil {
		h.fail(c, EndpointProductsList, err)
		return
	}

	page, err := h.engine.ListProducts(params)
	if err != nil {
		h.fail(c, EndpointProductsList, err)
		return
	}
	h.ok(c, EndpointProductsList, len(page.Data), page)
}

// FilterProducts handles GET /api/products/filter
func (h *Handlers) FilterProducts(c *gin.Context) {
	params := query.FilterParams{OffsetParams: query.DefaultOffsetParams()}
	if err := bindQuery(c, &params, query.MsgNotInteger); err != nil {
		h.fail(c, EndpointProductsFilter, err)
		return
	}

	result, err := h.engine.FilterProducts(params)
	if err != nil {
		h.fail(c, EndpointProductsFilter, err)
		return
	}
	h.ok(c, EndpointProductsFilter, len(result.Data), result)
}

// SortedProducts handles GET /api/products/sorted
func (h *Handlers) SortedProducts(c *gin.Context) {
	params := query.SortParams{OffsetParams: query.DefaultOffsetParams()}
	if err := bindQuery(c, &params, query.MsgNotInteger); err != nil {
		h.fail(c, EndpointProductsSorted, err)
		return
	}

	result, err := h.engine.SortProducts(params)
	if err != nil {
		h.fail(c, EndpointProductsSorted, err)
		return
	}
	h.ok(c, EndpointProductsSorted, len(result.Data), result)
}

// GetProduct handles GET /api/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.metrics.RecordQuery(EndpointProductsGet, monitoring.OutcomeMissing, 0)
		renderNotFound(c, "product")
		return
	}

	product, ok := h.engine.Store().Product(id)
	if !ok {
		h.metrics.RecordQuery(EndpointProductsGet, monitoring.OutcomeMissing, 0)
		renderNotFound(c, "product")
		return
	}
	h.ok(c, EndpointProductsGet, 1, product)
}

// LimitedPing sits behind the strict limiter
func (h *Handlers) LimitedPing(c *gin.Context) {
	renderJSON(c, http.StatusOK, gin.H{
		"message": "pong",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// SecurityPolicy echoes the security headers applied to responses
func (h *Handlers) SecurityPolicy(c *gin.Context) {
	renderJSON(c, http.StatusOK, gin.H{
		"headers": h.security.Headers(),
	})
}

func (h *Handlers) ok(c *gin.Context, endpoint string, items int, body any) {
	h.metrics.RecordQuery(endpoint, monitoring.OutcomeOK, items)
	renderJSON(c, http.StatusOK, body)
}

func (h *Handlers) fail(c *gin.Context, endpoint string, err error) {
	h.metrics.RecordQuery(endpoint, monitoring.OutcomeInvalid, 0)
	renderError(c, err)
}
