package models

import (
	"fmt"
	"sort"
	"strings"
)

// Column names of the users table the client knows about.
const (
	ColumnUsername = "usuario"
	ColumnPassword = "password"
	ColumnEmail    = "email"
)

// User is the complete row returned by the login lookup. Columns is kept
// verbatim, password digest included; use Redacted or String before showing
// or logging it.
type User struct {
	Columns map[string]any
}

func lookup(cols map[string]any, key string) string {
	if v, ok := cols[key].(string); ok {
		return v
	}
	return ""
}

// Username returns the usuario column.
func (u User) Username() string {
	return lookup(u.Columns, ColumnUsername)
}

// DisplayName is the name used in the welcome line: usuario, or email when
// usuario is empty.
func (u User) DisplayName() string {
	if name := u.Username(); name != "" {
		return name
	}
	return lookup(u.Columns, ColumnEmail)
}

// Redacted returns a copy of the columns with the password digest masked.
func (u User) Redacted() map[string]any {
	out := make(map[string]any, len(u.Columns))
	for k, v := range u.Columns {
		if k == ColumnPassword {
			v = "***"
		}
		out[k] = v
	}
	return out
}

// String renders the redacted columns sorted by name.
func (u User) String() string {
	r := u.Redacted()
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, r[k]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
