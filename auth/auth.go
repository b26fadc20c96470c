// Package auth signs admins in and resolves the session behind a request.
package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
}

// Session is the signed-in identity of a request.
type Session struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}

type Authenticator struct {
	users  UserStore
	tokens *Tokens
	logger zerolog.Logger
}

func NewAuthenticator(users UserStore, tokens *Tokens) *Authenticator {
	return &Authenticator{
		users:  users,
		tokens: tokens,
		logger: log.With().Str("component", "authenticator").Logger(),
	}
}

func (a *Authenticator) Tokens() *Tokens {
	return a.tokens
}

// Login checks the credentials and issues a session token. Unknown e-mails and
// wrong passwords are reported the same way.
func (a *Authenticator) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, errs.NewInvalidCredentialsError()
	}

	user, err := a.users.FindByEmail(ctx, email)
	if errs.IsNotFound(err) {
		return "", nil, errs.NewInvalidCredentialsError()
	}
	if err != nil {
		return "", nil, errs.NewDatabaseError("find", "user", err)
	}
	if !CheckPassword(user.PasswordHash, password) {
		a.logger.Info().Str("email", user.Email).Msg("rejected sign in")
		return "", nil, errs.NewInvalidCredentialsError()
	}

	token, _, err := a.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, errs.NewInternalErrorWithCause("could not issue session", err)
	}
	return token, user, nil
}

// Session resolves a token to the current user. The admin flag is read from
// the role table, so revoking the role takes effect on the next request.
func (a *Authenticator) Session(ctx context.Context, token string) (*Session, error) {
	claims, err := a.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	userID := uuid.MustParse(claims.UserID)
	user, err := a.users.FindByID(ctx, userID)
	if errs.IsNotFound(err) {
		return nil, errs.NewInvalidTokenError()
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}

	isAdmin, err := a.users.HasRole(ctx, user.ID, models.RoleAdmin)
	if err != nil {
		a.logger.Warn().Err(err).Str("userID", user.ID.String()).Msg("role lookup failed, treating as non-admin")
		isAdmin = false
	}

	return &Session{UserID: user.ID, Email: user.Email, IsAdmin: isAdmin}, nil
}

// AdminProvisioner creates accounts and grants roles.
type AdminProvisioner interface {
	Add(ctx context.Context, user *models.User) error
	GrantRole(ctx context.Context, userID uuid.UUID, role string) error
}

// CreateAdmin adds a user with the given credentials and grants them the
// admin role.
func CreateAdmin(ctx context.Context, store AdminProvisioner, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.NewMissingRequiredFieldError("email")
	}
	if len(password) < 8 {
		return nil, errs.NewInvalidFieldError("password", "must be at least 8 characters")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Email: email, PasswordHash: hash}
	if err := store.Add(ctx, user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}
	if err := store.GrantRole(ctx, user.ID, models.RoleAdmin); err != nil {
		return nil, errs.NewDatabaseError("grant role", "user", err)
	}
	return user, nil
}
