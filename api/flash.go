package api

import (
	"net/http"
	"net/url"
	"strings"
)

// flashCookie carries a one-shot status message across the redirect after a
// form submission.
const flashCookie = "portfolio_flash"

type flashMessage struct {
	Level   string
	Message string
}

func setFlash(w http.ResponseWriter, level, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   300,
	})
}

// popFlash reads and clears the flash cookie, if any.
func popFlash(w http.ResponseWriter, r *http.Request) *flashMessage {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(raw, "|")
	if !found {
		return nil
	}
	return &flashMessage{Level: level, Message: message}
}
