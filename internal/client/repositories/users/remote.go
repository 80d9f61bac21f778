package users

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

func (r *RemoteRepository) FindByCredentials(ctx context.Context, username, digest string) ([]models.User, error) {
	rows, err := r.client.Login(ctx, username, digest)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return rows, nil
}
