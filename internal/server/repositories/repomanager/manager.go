package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/agenda/internal/dbx"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Contacts(db dbx.DBTX) contacts.Repository
}
