// Package services contains the client controllers: login against the
// usuarios table and the contact list view state.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/dmitrijs2005/agenda/internal/client/models"
	"github.com/dmitrijs2005/agenda/internal/client/repositories/users"
	"github.com/dmitrijs2005/agenda/internal/client/session"
	"github.com/dmitrijs2005/agenda/internal/common"
	"github.com/dmitrijs2005/agenda/internal/logging"
)

// ErrInvalidCredentials is the only error AttemptLogin returns. Transport
// failures, unknown users and ambiguous matches all look the same.
var ErrInvalidCredentials = errors.New("invalid username or password")

// HashPassword returns the lowercase hex SHA-256 of password.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

type LoginController struct {
	users  users.Repository
	store  *session.Store
	logger logging.Logger
}

func NewLoginController(repo users.Repository, store *session.Store, logger logging.Logger) *LoginController {
	return &LoginController{users: repo, store: store, logger: logger.With("module", "login")}
}

// AttemptLogin looks the credentials up and, when exactly one row matches,
// stores it as the current session. password is zeroed once hashed.
func (c *LoginController) AttemptLogin(ctx context.Context, username string, password []byte) (models.User, error) {
	digest := HashPassword(password)
	common.WipeByteArray(password)

	rows, err := c.users.FindByCredentials(ctx, username, digest)
	if err != nil {
		c.logger.Warn(ctx, "login lookup failed", "usuario", username, "error", err.Error())
		return models.User{}, ErrInvalidCredentials
	}

	if len(rows) != 1 {
		c.logger.Debug(ctx, "login rejected", "usuario", username, "matches", len(rows))
		return models.User{}, ErrInvalidCredentials
	}

	user := rows[0]
	c.store.Set(user)
	c.logger.Info(ctx, "logged in", "user", user.String())

	return user, nil
}
