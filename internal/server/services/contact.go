package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/agenda/internal/common"
	sc "github.com/dmitrijs2005/agenda/internal/server/config"
	"github.com/dmitrijs2005/agenda/internal/server/models"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/repomanager"
)

// ContactService exposes CRUD and export over the contactos table.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewContactService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ContactService {
	return &ContactService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// List returns every contact ordered by name.
func (s *ContactService) List(ctx context.Context, ascending bool) ([]*models.Contact, error) {
	return s.repomanager.Contacts(s.db).List(ctx, ascending)
}

func (s *ContactService) Get(ctx context.Context, id string) (*models.Contact, error) {
	if id == "" {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Contacts(s.db).Get(ctx, id)
}

// Create inserts c and returns it with the id assigned by the database.
// Any id already set on c is ignored.
func (s *ContactService) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	c.ID = ""
	return s.repomanager.Contacts(s.db).Create(ctx, c)
}

func (s *ContactService) Update(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Contacts(s.db).Update(ctx, c)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.repomanager.Contacts(s.db).Delete(ctx, id)
}

func validate(c *models.Contact) error {
	if c == nil || common.IsBlank(c.Name) {
		return common.ErrorNameRequired
	}
	c.Name = strings.TrimSpace(c.Name)
	return nil
}
