// Package middleware holds the HTTP middleware wrapped around the SSE and
// streamable HTTP transports: security headers, CORS, body size limits and
// request metrics.
package middleware
