package models

// User is a row of the usuarios table. Columns holds every column of the
// row, including usuario and the password digest, converted to values that
// survive a JSON round trip.
type User struct {
	Username string
	Columns  map[string]any
}
