// Package cli is the interactive front end of the agenda client.
//
// The App owns the session store and the router. Each turn of its loop
// resolves the current route and runs either the login view (username and
// password prompts) or the contact list view, a small REPL over
// services.ContactListController. Logging out drops the session and the
// router sends the user back to login.
//
// Test seams: readPassword and isTerminal replace the x/term calls so tests
// can feed passwords through the same reader as every other prompt.
package cli
