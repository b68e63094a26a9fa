// Package middleware provides HTTP middleware for el-powered page servers.
//
// This package includes:
//   - Prometheus metrics middleware
//   - OpenTelemetry distributed tracing middleware
//
// # Prometheus Middleware
//
// The Prometheus middleware records a request counter and a duration
// histogram for every request, labelled by route pattern and status code:
//
//	r := web.NewRouter(
//	    middleware.Prometheus(),
//	)
//
// Configure with options:
//
//	middleware.Prometheus(
//	    middleware.WithNamespace("mysite"),
//	    middleware.WithBuckets([]float64{0.001, 0.01, 0.1, 1}),
//	)
//
// # OpenTelemetry Middleware
//
// The OpenTelemetry middleware creates a server span per request with
// method, route, and status code attributes:
//
//	r := web.NewRouter(
//	    middleware.OpenTelemetry(
//	        middleware.WithTracerName("mysite"),
//	        middleware.WithFilter(func(r *http.Request) bool {
//	            return r.URL.Path != "/healthz"
//	        }),
//	    ),
//	)
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before starting the server.
package middleware
