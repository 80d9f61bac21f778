package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/agenda/internal/client/client"
	"github.com/dmitrijs2005/agenda/internal/client/nav"
	"github.com/dmitrijs2005/agenda/internal/client/repositories/contacts"
	"github.com/dmitrijs2005/agenda/internal/client/services"
	"github.com/dmitrijs2005/agenda/internal/common"
)

// contactsView mounts the contact list and runs its REPL.
func (a *App) contactsView(ctx context.Context) bool {
	if sess, ok := a.store.Current(); ok {
		a.println(renderWelcome(sess.User()))
	}
	if err := a.Refresh(ctx); errors.Is(err, client.ErrUnauthorized) {
		a.Expire(ctx)
		return false
	}

	return runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) render() {
	fmt.Fprint(a.out, renderContacts(a.contacts))
}

func (a *App) List(ctx context.Context) error {
	a.render()
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	a.println(msgLoading)
	err := a.contacts.Refresh(ctx)
	a.render()
	return err
}

func (a *App) Search(ctx context.Context, text string) error {
	a.contacts.SetSearch(text)
	a.render()
	return nil
}

func (a *App) Sort(ctx context.Context) error {
	err := a.contacts.ToggleSortOrder(ctx)
	a.render()
	return err
}

func (a *App) Page(ctx context.Context, n int) error {
	if !a.contacts.ChangePage(n) {
		a.println(mutedStyle.Render("No such page."))
		return nil
	}
	a.render()
	return nil
}

func (a *App) Next(ctx context.Context) error {
	return a.Page(ctx, a.contacts.CurrentPage()+1)
}

func (a *App) Prev(ctx context.Context) error {
	return a.Page(ctx, a.contacts.CurrentPage()-1)
}

// Add opens the form. When an edit is in progress the form is prefilled
// with it and saving updates that contact.
func (a *App) Add(ctx context.Context) error {
	a.println(renderFormTitle(a.contacts))

	form := a.contacts.Form()
	fields := []struct {
		label string
		value *string
	}{
		{"Name", &form.Name},
		{"Phone", &form.Phone},
		{"Email", &form.Email},
	}

	for _, f := range fields {
		prompt := f.label
		if *f.value != "" {
			prompt += " [" + *f.value + "] (Enter keeps, - clears)"
		}
		text, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		switch text {
		case "":
		case "-":
			*f.value = ""
		default:
			*f.value = text
		}
	}

	a.contacts.SetForm(form)
	if err := a.contacts.Submit(ctx); err != nil {
		a.render()
		return err
	}

	if common.IsBlank(form.Name) {
		a.println(mutedStyle.Render("Name is required, nothing saved."))
		return nil
	}

	a.println(okStyle.Render("Saved."))
	a.render()
	return nil
}

func (a *App) Edit(ctx context.Context, id string) error {
	err := a.contacts.StartEditByID(ctx, id)
	if errors.Is(err, contacts.ErrNotFound) {
		a.println(errorStyle.Render("No contact with id " + id))
		return err
	}
	if err != nil {
		a.render()
		return err
	}
	return a.Add(ctx)
}

func (a *App) Cancel(ctx context.Context) error {
	if a.contacts.EditingID() == "" && a.contacts.Form() == (services.ContactForm{}) {
		a.println(mutedStyle.Render("Nothing to cancel."))
		return nil
	}
	a.contacts.CancelEdit()
	a.println(mutedStyle.Render("Edit cancelled."))
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	known := false
	for _, c := range a.contacts.Contacts() {
		if c.ID == id {
			known = true
			break
		}
	}
	if !known {
		a.println(errorStyle.Render("No contact with id " + id))
		return contacts.ErrNotFound
	}

	deleted, err := a.contacts.Delete(ctx, id)
	if err == nil && !deleted {
		a.println(mutedStyle.Render("Not deleted."))
		return nil
	}
	if deleted {
		a.println(okStyle.Render("Deleted."))
	}
	a.render()
	return err
}

func (a *App) Export(ctx context.Context) error {
	if a.client == nil {
		a.println(mutedStyle.Render("Export is not available in offline mode."))
		return nil
	}

	key, url, err := a.client.ExportContacts(ctx)
	switch {
	case errors.Is(err, client.ErrExportUnavailable):
		a.println(errorStyle.Render("Export storage is not configured on the server."))
		return err
	case err != nil:
		a.logger.Warn(ctx, "export failed", "error", err.Error())
		a.println(errorStyle.Render("Export failed."))
		return err
	}

	a.println(okStyle.Render("Export ready: " + key))
	a.println(url)
	return nil
}

// Logout ends the session. The next contact list view starts from scratch.
func (a *App) Logout(ctx context.Context) error {
	a.endSession()
	a.println("Logged out.")
	return nil
}

// Expire is Logout for a token the server rejected.
func (a *App) Expire(ctx context.Context) {
	a.logger.Info(ctx, "session expired")
	a.endSession()
	a.println(errorStyle.Render("Session expired, please sign in again."))
}

func (a *App) endSession() {
	a.contacts.Logout()
	if a.client != nil {
		a.client.Logout()
	}
	a.contacts = a.newContactsController()
	a.route = nav.RouteLogin
}
