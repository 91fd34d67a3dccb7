package api

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dbarros/portfolio-backend/errs"
	"github.com/dbarros/portfolio-backend/pages"
	"github.com/dbarros/portfolio-backend/services"
)

const contactSuccessMessage = "Thank you for your message! I will get back to you soon."

type contactHandler struct {
	html      htmlResponder
	responder Responder
	intake    *services.ContactIntake
}

func newContactHandler(renderer *Renderer, builder pages.Builder, intake *services.ContactIntake) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		html:      newHTMLResponder(renderer, builder, logger),
		responder: NewResponder(logger),
		intake:    intake,
	}
}

// submit accepts the contact form, either as a regular form post or as an
// AJAX request (form-encoded or JSON). AJAX callers get JSON back; browsers
// get a redirect to /contact/ with a flash message.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submission, err := parseSubmission(r)
		if err != nil {
			h.respondError(w, r, errs.NewBadRequestError("could not read form data"))
			return
		}

		message, err := h.intake.Submit(submission, clientIP(r), r.UserAgent())
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		if isAJAX(r) {
			h.responder.WriteJSON(w, map[string]any{
				"success":    true,
				"message":    contactSuccessMessage,
				"message_id": message.ID,
			})
			return
		}

		setFlash(w, "success", contactSuccessMessage)
		http.Redirect(w, r, "/contact/", http.StatusFound)
	}
}

func (h contactHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if isAJAX(r) {
		h.responder.WriteError(w, err)
		return
	}

	var validationErr *errs.ValidationErr
	switch {
	case errors.As(err, &validationErr):
		setFlash(w, "error", "Please correct the errors below and try again.")
		http.Redirect(w, r, "/contact/", http.StatusFound)
	case errs.IsNotFound(err):
		h.html.WriteNotFound(w)
	default:
		h.html.WriteError(w, err)
	}
}

// parseSubmission reads the submission from a JSON body or form fields,
// depending on content type.
func parseSubmission(r *http.Request) (services.ContactSubmission, error) {
	var submission services.ContactSubmission

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&submission)
		return submission, err
	}

	if err := r.ParseForm(); err != nil {
		return submission, err
	}
	submission = services.ContactSubmission{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	return submission, nil
}

func isAJAX(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// clientIP prefers the first X-Forwarded-For entry, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
