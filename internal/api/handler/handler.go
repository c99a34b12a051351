// Package handler contains the HTTP handlers for the public subscription
// endpoints and the operator-facing publishing endpoints.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"newsletter/internal/auth"
	"newsletter/internal/newsletter"
	"newsletter/internal/subscription"
	"newsletter/pkg/logger"
	"newsletter/pkg/serrors"
)

// Deps carries the services the handlers delegate to.
type Deps struct {
	Subscription subscription.Subscription
	Dispatcher   newsletter.Dispatcher
	Validator    auth.CredentialValidator
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts all routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health_check", h.HealthCheck)
	mux.HandleFunc("POST /subscriptions", h.Subscribe)
	mux.HandleFunc("GET /subscriptions/confirm", h.ConfirmSubscription)
	mux.HandleFunc("POST /newsletters", h.PublishNewsletter)
	mux.HandleFunc("POST /login", h.Login)
}

// errorResponse is the JSON body written for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFromError maps error kinds to HTTP statuses. Anything that is not an
// explicit client error is reported as an internal server error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with the status derived from err. Internal errors are
// logged and their details are not exposed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	msg := http.StatusText(status)
	if status != http.StatusInternalServerError {
		var sErr *serrors.Error
		if errors.As(err, &sErr) && sErr.Message() != "" {
			msg = sErr.Message()
		}
	} else {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
