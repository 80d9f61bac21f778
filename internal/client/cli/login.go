package cli

import (
	"context"

	"github.com/dmitrijs2005/agenda/internal/client/nav"
)

// loginView asks for credentials once. It reports whether the program
// should exit.
func (a *App) loginView(ctx context.Context) bool {
	username, err := GetSimpleText(a.reader, "Username (or exit)", a.out)
	if err != nil {
		return true
	}
	switch username {
	case "":
		return false
	case "exit", "quit":
		a.println("Bye!")
		return true
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		a.logger.Debug(ctx, "password prompt failed", "error", err.Error())
		return true
	}

	if _, err := a.login.AttemptLogin(ctx, username, password); err != nil {
		a.println(errorStyle.Render("Invalid username or password"))
		return false
	}

	a.route = nav.RouteContacts
	return false
}
