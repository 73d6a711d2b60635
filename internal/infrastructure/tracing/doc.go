/*
Package tracing provides lightweight request tracing for debugging.

# Overview

Every request gets a span. Trace context is continued from incoming
X-Trace-ID / X-Span-ID headers when present and echoed back on the response
so clients can correlate their calls with server logs.

# Usage

	tracer := tracing.New("pagelab", logger.Logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	// Manual span creation
	span, ctx := tracer.StartSpan(ctx, "operation")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Performance

Spans are queued on a buffered channel (DefaultBufferSize) and logged by a
single collector goroutine. When the buffer is full new spans are dropped
with a warning instead of blocking the request.
*/
package tracing
