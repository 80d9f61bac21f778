// Package models holds the client-side domain values.
package models

// Contact is one address-book entry. ID is assigned by the server and is
// empty for a contact that has not been inserted yet.
type Contact struct {
	ID    string
	Name  string
	Phone string
	Email string
}

// SortOrder is the name ordering requested from the server.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// Label is the short form shown on the sort toggle.
func (o SortOrder) Label() string {
	if o == Descending {
		return "Z-A"
	}
	return "A-Z"
}

func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}
