package contacts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/agenda/internal/client/client"
	"github.com/dmitrijs2005/agenda/internal/client/models"
)

type RemoteRepository struct {
	client client.Client
}

func NewRemoteRepository(c client.Client) *RemoteRepository {
	return &RemoteRepository{client: c}
}

func (r *RemoteRepository) List(ctx context.Context, order models.SortOrder) ([]models.Contact, error) {
	list, err := r.client.ListContacts(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return list, nil
}

func (r *RemoteRepository) Get(ctx context.Context, id string) (models.Contact, error) {
	c, err := r.client.GetContact(ctx, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("failed to get contact %s: %w", id, err)
	}
	return c, nil
}

func (r *RemoteRepository) Insert(ctx context.Context, c models.Contact) (models.Contact, error) {
	out, err := r.client.InsertContact(ctx, c)
	if err != nil {
		return models.Contact{}, fmt.Errorf("failed to insert contact: %w", err)
	}
	return out, nil
}

func (r *RemoteRepository) Update(ctx context.Context, c models.Contact) (models.Contact, error) {
	out, err := r.client.UpdateContact(ctx, c)
	if err != nil {
		return models.Contact{}, fmt.Errorf("failed to update contact %s: %w", c.ID, err)
	}
	return out, nil
}

func (r *RemoteRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact %s: %w", id, err)
	}
	return nil
}
