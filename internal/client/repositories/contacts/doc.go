// Package contacts is the client-side access layer for the contactos table.
//
// Repository is what the contact list controller talks to. Two
// implementations exist: RemoteRepository forwards every call to the agenda
// server through client.Client, MemoryRepository keeps rows in a map and is
// used by tests and the offline demo mode.
//
// Ordering is the repository's job. List returns rows ordered by name in the
// requested direction and callers never re-sort.
package contacts
