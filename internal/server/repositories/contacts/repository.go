package contacts

import (
	"context"

	"github.com/dmitrijs2005/agenda/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, ascending bool) ([]*models.Contact, error)
	Get(ctx context.Context, id string) (*models.Contact, error)
	Create(ctx context.Context, c *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, c *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}
