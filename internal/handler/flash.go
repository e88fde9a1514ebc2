package handler

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookieName = "portfolio_flash"

// Flash levels.
const (
	flashSuccess = "success"
	flashWarning = "warning"
)

// Flash is a one-shot user-visible message carried across the
// POST-redirect-GET boundary in a cookie.
type Flash struct {
	Level string
	Text  string
}

// setFlash stores a flash message for the next page load.
func setFlash(w http.ResponseWriter, level, text string) {
	value := base64.URLEncoding.EncodeToString([]byte(level + "|" + text))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the flash cookie. Returns nil when there is
// no (valid) flash message.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	level, text, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &Flash{Level: level, Text: text}
}
