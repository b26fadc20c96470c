package api

import (
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/auth"
	"github.com/rpupo63/portfolio-site/portfolio"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/storage"
)

// Dependencies are the collaborators the HTTP layer is built on.
type Dependencies struct {
	Stores  portfolio.Stores
	Users   auth.UserStore
	Buckets storage.Buckets
	Mailer  services.Mailer
}

type handlerConfig struct {
	tokens       *auth.Tokens
	secure       bool
	notifyEmails []string
	flashSecret  string
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, cfg handlerConfig, renderer *Renderer) (*routeHandlers, *auth.Authenticator) {
	mailer := deps.Mailer
	if mailer == nil {
		mailer = services.NopMailer{}
	}

	authenticator := auth.NewAuthenticator(deps.Users, cfg.tokens)
	loader := portfolio.NewLoader(deps.Stores)
	admin := portfolio.NewAdmin(deps.Stores)
	uploader := storage.NewUploader(deps.Buckets)
	inbox := portfolio.NewInbox(deps.Stores.Messages, mailer, cfg.notifyEmails)
	flashes := newFlashStore(cfg.flashSecret, cfg.secure, log.With().Str("component", "flash").Logger())

	return &routeHandlers{
		pageHandler:     newPageHandler(renderer, loader, inbox, flashes, cfg.secure),
		authHandler:     newAuthHandler(renderer, authenticator, cfg.secure),
		adminPage:       newAdminPageHandler(renderer, loader, admin, uploader, flashes),
		contentHandler:  newContentHandler(loader, inbox),
		adminAPIHandler: newAdminAPIHandler(loader, admin, uploader),
	}, authenticator
}
