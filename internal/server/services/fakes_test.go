package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/agenda/internal/dbx"
	"github.com/dmitrijs2005/agenda/internal/server/models"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	rows []*models.User
	err  error

	gotUser, gotDigest string
}

func (f *fakeUsersRepo) FindByCredentials(ctx context.Context, username, digest string) ([]*models.User, error) {
	f.gotUser, f.gotDigest = username, digest
	return f.rows, f.err
}

type fakeContactsRepo struct {
	list    []*models.Contact
	listErr error

	getOut *models.Contact
	getErr error

	created   *models.Contact
	createErr error

	updated   *models.Contact
	updateErr error

	deletedID string
	deleteErr error

	calls int
	asc   bool
}

func (f *fakeContactsRepo) List(ctx context.Context, ascending bool) ([]*models.Contact, error) {
	f.calls++
	f.asc = ascending
	return f.list, f.listErr
}

func (f *fakeContactsRepo) Get(ctx context.Context, id string) (*models.Contact, error) {
	f.calls++
	return f.getOut, f.getErr
}

func (f *fakeContactsRepo) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = c
	out := *c
	out.ID = "new-id"
	return &out, nil
}

func (f *fakeContactsRepo) Update(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	f.calls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = c
	return c, nil
}

func (f *fakeContactsRepo) Delete(ctx context.Context, id string) error {
	f.calls++
	f.deletedID = id
	return f.deleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeContactsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository {
	return m.u
}

func (m *fakeRepoManager) Contacts(db dbx.DBTX) contacts.Repository {
	return m.c
}
