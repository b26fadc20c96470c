package api

import (
	"crypto/sha256"
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
)

const flashSessionName = "flash"

const (
	flashSuccess = "success"
	flashError   = "error"
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

func init() {
	gob.Register(Flash{})
}

type flashStore struct {
	store  *sessions.CookieStore
	logger zerolog.Logger
}

// newFlashStore derives the cookie signing key from secret.
func newFlashStore(secret string, secure bool, logger zerolog.Logger) flashStore {
	key := sha256.Sum256([]byte(secret))
	store := sessions.NewCookieStore(key[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return flashStore{store: store, logger: logger}
}

func (f flashStore) add(w http.ResponseWriter, r *http.Request, flashes ...Flash) {
	if len(flashes) == 0 {
		return
	}
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		f.logger.Debug().Err(err).Msg("discarding unreadable flash cookie")
	}
	for _, flash := range flashes {
		session.AddFlash(flash)
	}
	if err := session.Save(r, w); err != nil {
		f.logger.Error().Err(err).Msg("failed to save flash messages")
	}
}

// pop returns and clears the pending notifications.
func (f flashStore) pop(w http.ResponseWriter, r *http.Request) []Flash {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		f.logger.Error().Err(err).Msg("failed to clear flash messages")
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if flash, ok := v.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
