// Package controller contains the HTTP middlewares and helper handlers that
// wrap the newsletter API server: CORS handling, request-scoped logging with
// request IDs, and the pprof debug mux.
package controller
