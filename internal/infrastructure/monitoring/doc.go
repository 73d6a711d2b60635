/*
Package monitoring provides Prometheus metrics for the pagination service.

# Overview

Each Metrics value owns a private registry, so tests and multiple servers in
one process never collide on registration.

# Metrics

  - HTTP requests (count, latency, response size) labelled by route template
  - Query engine outcomes per endpoint and result sizes
  - Rate limiter rejections per limiter
  - Catalog collection sizes
  - Uptime plus Go runtime and process collectors

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	metrics.RecordQuery("users.search", monitoring.OutcomeOK, len(page.Data))
*/
package monitoring
