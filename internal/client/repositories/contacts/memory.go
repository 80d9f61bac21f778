package contacts

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/agenda/internal/client/models"
	"github.com/google/uuid"
)

// MemoryRepository is an in-process Repository. Names are ordered
// by byte value with the id as tie breaker, so repeated Lists are stable.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]models.Contact
}

// NewMemoryRepository seeds the repository with rows. Rows without an id get
// a fresh one.
func NewMemoryRepository(rows ...models.Contact) *MemoryRepository {
	r := &MemoryRepository{rows: make(map[string]models.Contact, len(rows))}
	for _, c := range rows {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		r.rows[c.ID] = c
	}
	return r
}

func (r *MemoryRepository) List(ctx context.Context, order models.SortOrder) ([]models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]models.Contact, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	r.mu.RUnlock()

	// Byte order, as a Postgres database with the C collation sorts nombre.
	// Other collations may place lowercase names differently.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Name, out[j].Name
		if a == b {
			return out[i].ID < out[j].ID
		}
		if order == models.Descending {
			return a > b
		}
		return a < b
	})

	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return models.Contact{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.rows[id]
	if !ok {
		return models.Contact{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, c models.Contact) (models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return models.Contact{}, err
	}

	c.ID = uuid.NewString()

	r.mu.Lock()
	r.rows[c.ID] = c
	r.mu.Unlock()

	return c, nil
}

func (r *MemoryRepository) Update(ctx context.Context, c models.Contact) (models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return models.Contact{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[c.ID]; !ok {
		return models.Contact{}, ErrNotFound
	}
	r.rows[c.ID] = c
	return c, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.rows, id)
	r.mu.Unlock()

	return nil
}

// Len reports how many rows are stored.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}
