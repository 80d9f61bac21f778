package users

import (
	"context"

	"github.com/dmitrijs2005/agenda/internal/server/models"
)

type Repository interface {
	// FindByCredentials returns every usuarios row whose usuario and password
	// columns equal the given values. It never fails on zero matches.
	FindByCredentials(ctx context.Context, username, digest string) ([]*models.User, error)
}
