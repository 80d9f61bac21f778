// Package nav maps the two client routes and guards the contact list
// behind an active session.
package nav

import "github.com/dmitrijs2005/agenda/internal/client/session"

type Route string

const (
	RouteLogin    Route = "/"
	RouteContacts Route = "/contactos"
)

type Router struct {
	store *session.Store
}

func NewRouter(store *session.Store) *Router {
	return &Router{store: store}
}

// Resolve returns the route that should actually be shown for r. Without a
// session the contact list resolves to login. Unknown routes resolve to
// login as well.
func (n *Router) Resolve(r Route) Route {
	switch r {
	case RouteContacts:
		if _, ok := n.store.Current(); !ok {
			return RouteLogin
		}
		return RouteContacts
	default:
		return RouteLogin
	}
}
