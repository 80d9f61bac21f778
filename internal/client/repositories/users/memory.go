package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/agenda/internal/client/models"
)

// MemoryRepository filters a fixed set of rows.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows []models.User
}

func NewMemoryRepository(rows ...models.User) *MemoryRepository {
	return &MemoryRepository{rows: rows}
}

// Add appends a row.
func (r *MemoryRepository) Add(u models.User) {
	r.mu.Lock()
	r.rows = append(r.rows, u)
	r.mu.Unlock()
}

func (r *MemoryRepository) FindByCredentials(ctx context.Context, username, digest string) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.User
	for _, u := range r.rows {
		if u.Columns[models.ColumnUsername] == username && u.Columns[models.ColumnPassword] == digest {
			out = append(out, u)
		}
	}
	return out, nil
}
