package client

import (
	"context"

	"github.com/dmitrijs2005/agenda/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	// Login returns every users row matching the credentials. A token is
	// kept for later calls only when exactly one row matched.
	Login(ctx context.Context, username, digest string) ([]models.User, error)
	// Logout forgets the access token.
	Logout()
	ListContacts(ctx context.Context, order models.SortOrder) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	InsertContact(ctx context.Context, c models.Contact) (models.Contact, error)
	UpdateContact(ctx context.Context, c models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	ExportContacts(ctx context.Context) (key string, url string, err error)
}
