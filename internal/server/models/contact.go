package models

// Contact is a row of the contactos table. Phone and Email are stored as
// NULL when empty.
type Contact struct {
	ID    string
	Name  string
	Phone string
	Email string
}
