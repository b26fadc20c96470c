package api

import (
	"context"

	"github.com/rpupo63/portfolio-site/auth"
	"github.com/rpupo63/portfolio-site/i18n"
)

type keyType string

const (
	sessionKey    keyType = "session"
	translatorKey keyType = "translator"
)

func ctxWithSession(ctx context.Context, session *auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxGetSession returns nil for anonymous requests.
func ctxGetSession(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionKey).(*auth.Session)
	return session
}

func ctxWithTranslator(ctx context.Context, t i18n.Translator) context.Context {
	return context.WithValue(ctx, translatorKey, t)
}

func ctxGetTranslator(ctx context.Context) i18n.Translator {
	if t, ok := ctx.Value(translatorKey).(i18n.Translator); ok {
		return t
	}
	return i18n.New(i18n.Default)
}
