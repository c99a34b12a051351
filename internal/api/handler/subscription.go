package handler

import (
	"net/http"

	"newsletter/pkg/serrors"
)

// HealthCheck reports service liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Subscribe accepts a signup form with name and email fields, stores the
// pending subscriber and triggers the confirmation email.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid form data"))

		return
	}

	err := h.deps.Subscription.Submit(r.Context(), r.PostFormValue("name"), r.PostFormValue("email"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusOK)
}

// ConfirmSubscription resolves the subscription_token query parameter and
// marks the owning subscriber as confirmed.
func (h *Handler) ConfirmSubscription(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("subscription_token")

	if err := h.deps.Subscription.Confirm(r.Context(), token); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusOK)
}
