package handler

import (
	"net/http"

	"newsletter/pkg/domain"
	"newsletter/pkg/serrors"
)

// Login validates operator credentials posted as a form and redirects to the
// landing page on success.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid form data"))

		return
	}

	_, err := h.deps.Validator.Validate(r.Context(), domain.Credentials{
		Username: r.PostFormValue("username"),
		Password: domain.NewSecret(r.PostFormValue("password")),
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
