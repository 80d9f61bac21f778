package users

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/agenda/internal/dbx"
	"github.com/dmitrijs2005/agenda/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByCredentials(ctx context.Context, username, digest string) ([]*models.User, error) {
	query :=
		`SELECT * FROM usuarios
		 WHERE usuario = $1 AND password = $2
		 `

	rows, err := r.db.QueryContext(ctx, query, username, digest)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var result []*models.User
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		u := &models.User{Columns: make(map[string]any, len(cols))}
		for i, c := range cols {
			u.Columns[c] = normalize(values[i])
		}
		if s, ok := u.Columns["usuario"].(string); ok {
			u.Username = s
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// normalize converts driver values into JSON friendly ones.
func normalize(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case string, bool, int64, float64:
		return t
	default:
		return fmt.Sprint(t)
	}
}
