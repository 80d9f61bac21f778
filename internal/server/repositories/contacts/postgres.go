package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/agenda/internal/common"
	"github.com/dmitrijs2005/agenda/internal/dbx"
	"github.com/dmitrijs2005/agenda/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// invalidTextRepresentation is raised by postgres when an id is not a uuid.
const invalidTextRepresentation = "22P02"

const (
	listAscQuery = `SELECT id, nombre, COALESCE(telefono, ''), COALESCE(email, '')
		 FROM contactos
		 ORDER BY nombre ASC, id ASC
		 `
	listDescQuery = `SELECT id, nombre, COALESCE(telefono, ''), COALESCE(email, '')
		 FROM contactos
		 ORDER BY nombre DESC, id ASC
		 `
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, ascending bool) ([]*models.Contact, error) {
	query := listDescQuery
	if ascending {
		query = listAscQuery
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Contact, 0)
	for rows.Next() {
		c := &models.Contact{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Contact, error) {
	query :=
		`SELECT id, nombre, COALESCE(telefono, ''), COALESCE(email, '')
		 FROM contactos
		 WHERE id = $1
		 `

	c := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email)
	if err != nil {
		return nil, mapError(err)
	}

	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	query :=
		`INSERT INTO contactos (nombre, telefono, email)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	query :=
		`UPDATE contactos
		 SET nombre = $2, telefono = NULLIF($3, ''), email = NULLIF($4, '')
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Phone, c.Email)
	if err != nil {
		return nil, mapError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return nil, common.ErrorNotFound
	}

	return c, nil
}

// Delete removes the row. Deleting an id that does not exist is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM contactos
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		if errors.Is(mapError(err), common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}
