package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsletter/internal/newsletter"
	"newsletter/pkg/domain"
	"newsletter/pkg/serrors"
)

// basicChallenge is sent with 401 responses on the publishing endpoint so
// that HTTP clients know how to authenticate.
const basicChallenge = `Basic realm="publish"`

// publishRequest is the JSON payload of a newsletter issue.
type publishRequest struct {
	Title   string `json:"title"`
	Content struct {
		Text string `json:"text"`
		HTML string `json:"html"`
	} `json:"content"`
}

// PublishNewsletter authenticates the caller via HTTP basic auth and delivers
// the posted issue to all confirmed subscribers.
func (h *Handler) PublishNewsletter(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", basicChallenge)
		writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing credentials"))

		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	err := h.deps.Dispatcher.Publish(r.Context(),
		domain.Credentials{
			Username: username,
			Password: domain.NewSecret(password),
		},
		newsletter.Issue{
			Title:    req.Title,
			TextBody: req.Content.Text,
			HTMLBody: req.Content.HTML,
		})
	if err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			w.Header().Set("WWW-Authenticate", basicChallenge)
		}
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusOK)
}
