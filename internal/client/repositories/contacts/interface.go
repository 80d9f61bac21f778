package contacts

import (
	"context"

	"github.com/dmitrijs2005/agenda/internal/client/client"
	"github.com/dmitrijs2005/agenda/internal/client/models"
)

// ErrNotFound is returned for ids that do not exist.
var ErrNotFound = client.ErrNotFound

type Repository interface {
	// List returns every contact ordered by name.
	List(ctx context.Context, order models.SortOrder) ([]models.Contact, error)

	Get(ctx context.Context, id string) (models.Contact, error)

	// Insert stores c and returns it with its new id. c.ID is ignored.
	Insert(ctx context.Context, c models.Contact) (models.Contact, error)

	// Update overwrites name, phone and email of the row with c.ID.
	Update(ctx context.Context, c models.Contact) (models.Contact, error)

	// Delete removes the row. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error
}
