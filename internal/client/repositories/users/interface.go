package users

import (
	"context"

	"github.com/dmitrijs2005/agenda/internal/client/models"
)

type Repository interface {
	// FindByCredentials returns every row whose usuario and password columns
	// equal the arguments. It does not judge how many rows are acceptable.
	FindByCredentials(ctx context.Context, username, digest string) ([]models.User, error)
}
