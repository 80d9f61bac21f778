package cli

import (
	"github.com/dmitrijs2005/agenda/internal/client/models"
	"github.com/dmitrijs2005/agenda/internal/client/repositories/contacts"
	"github.com/dmitrijs2005/agenda/internal/client/repositories/users"
	"github.com/dmitrijs2005/agenda/internal/client/services"
)

// demoRepositories backs offline mode: one user demo/demo and enough
// contacts to fill two pages.
func demoRepositories() (*users.MemoryRepository, *contacts.MemoryRepository) {
	u := users.NewMemoryRepository(models.User{Columns: map[string]any{
		models.ColumnUsername: "demo",
		models.ColumnPassword: services.HashPassword([]byte("demo")),
		models.ColumnEmail:    "demo@example.com",
		"nombre":              "Demo",
	}})

	c := contacts.NewMemoryRepository(
		models.Contact{ID: "1", Name: "Ana Torres", Phone: "600 111 222", Email: "ana@example.com"},
		models.Contact{ID: "2", Name: "Bruno Díaz", Phone: "600 333 444"},
		models.Contact{ID: "3", Name: "Carla Gómez", Email: "carla@example.com"},
		models.Contact{ID: "4", Name: "Diego Ruiz", Phone: "600 555 666", Email: "diego@example.com"},
		models.Contact{ID: "5", Name: "Elena Martín"},
		models.Contact{ID: "6", Name: "Fernando Sanz", Email: "fer@example.com"},
		models.Contact{ID: "7", Name: "Gloria Vidal", Phone: "600 777 888"},
	)

	return u, c
}
