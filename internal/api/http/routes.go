package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the service routes on router. strict, when not
// nil, guards the /api/limited group.
func RegisterRoutes(router gin.IRouter, h *Handlers, strict gin.HandlerFunc) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		users.GET("", h.ListUsers)
		users.GET("/search", h.SearchUsers)
		users.GET("/cursor", h.UsersCursor)
		users.GET("/:id", h.GetUser)

		products := api.Group("/products")
		products.GET("", h.ListProducts)
		products.GET("/filter", h.FilterProducts)
		products.GET("/sorted", h.SortedProducts)
		products.GET("/:id", h.GetProduct)

		limited := api.Group("/limited")
		if strict != nil {
			limited.Use(strict)
		}
		limited.GET("/ping", h.LimitedPing)

		api.GET("/security/headers", h.SecurityPolicy)
	}
}
