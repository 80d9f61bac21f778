package grpc

import (
	"context"

	"github.com/dmitrijs2005/agenda/internal/server/models"
	"github.com/dmitrijs2005/agenda/internal/server/services"
)

type fakeUsers struct {
	result *services.LoginResult
	err    error
}

func (f *fakeUsers) Login(ctx context.Context, username, digest string) (*services.LoginResult, error) {
	return f.result, f.err
}

type fakeContacts struct {
	list []*models.Contact
	one  *models.Contact
	err  error

	gotAsc     bool
	gotID      string
	gotContact *models.Contact

	key, url string
}

func (f *fakeContacts) List(ctx context.Context, ascending bool) ([]*models.Contact, error) {
	f.gotAsc = ascending
	return f.list, f.err
}

func (f *fakeContacts) Get(ctx context.Context, id string) (*models.Contact, error) {
	f.gotID = id
	return f.one, f.err
}

func (f *fakeContacts) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	f.gotContact = c
	if f.err != nil {
		return nil, f.err
	}
	out := *c
	out.ID = "new-id"
	return &out, nil
}

func (f *fakeContacts) Update(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	f.gotContact = c
	if f.err != nil {
		return nil, f.err
	}
	return c, nil
}

func (f *fakeContacts) Delete(ctx context.Context, id string) error {
	f.gotID = id
	return f.err
}

func (f *fakeContacts) Export(ctx context.Context) (string, string, error) {
	return f.key, f.url, f.err
}
