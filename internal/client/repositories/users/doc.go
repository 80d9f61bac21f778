// Package users looks up usuarios rows by credentials.
package users
