package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/agenda/internal/client/models"
	"github.com/dmitrijs2005/agenda/internal/client/services"
)

var (
	primary = lipgloss.Color("#7C3AED")
	danger  = lipgloss.Color("#EF4444")
	muted   = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#10B981")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(danger)
	okStyle     = lipgloss.NewStyle().Foreground(success)
)

const (
	msgLoading    = "Loading contacts..."
	msgNoContacts = "No contacts found."
)

func renderWelcome(u models.User) string {
	return titleStyle.Render("Welcome, " + u.DisplayName())
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// renderContacts draws the current page of the contact list together with
// the status lines around it.
func renderContacts(c *services.ContactListController) string {
	var b strings.Builder

	status := "Sort: " + c.SortOrder().Label()
	if s := c.Search(); s != "" {
		status += fmt.Sprintf("  Search: %q", s)
	}
	b.WriteString(mutedStyle.Render(status) + "\n")

	if e := c.FetchError(); e != "" {
		b.WriteString(errorStyle.Render(e) + "\n")
	}
	if e := c.MutationError(); e != "" {
		b.WriteString(errorStyle.Render(e) + "\n")
	}

	if c.State() == services.Loading {
		b.WriteString(msgLoading + "\n")
		return b.String()
	}

	if len(c.Filtered()) == 0 {
		b.WriteString(msgNoContacts + "\n")
		return b.String()
	}

	b.WriteString(renderTable(c.Page()))

	if total := c.PageCount(); total > 1 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Page %d of %d", c.CurrentPage(), total)) + "\n")
	}

	return b.String()
}

// renderTable prints list as a static table: every row visible and no
// cursor highlight.
func renderTable(list []models.Contact) string {
	columns := []table.Column{{Title: "ID"}, {Title: "Name"}, {Title: "Phone"}, {Title: "Email"}}
	rows := make([]table.Row, 0, len(list))
	for _, c := range list {
		rows = append(rows, table.Row{c.ID, c.Name, dash(c.Phone), dash(c.Email)})
	}

	total := 0
	for i := range columns {
		columns[i].Width = lipgloss.Width(columns[i].Title)
		for _, r := range rows {
			columns[i].Width = max(columns[i].Width, lipgloss.Width(r[i]))
		}
		total += columns[i].Width + 2
	}

	styles := table.DefaultStyles()
	styles.Header = headerStyle.Padding(0, 1)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(styles),
		table.WithHeight(len(rows)+1),
	)
	t.SetWidth(total)

	var b strings.Builder
	for _, l := range strings.Split(t.View(), "\n") {
		if l = strings.TrimRight(l, " "); l != "" {
			b.WriteString(l + "\n")
		}
	}
	return b.String()
}

func renderFormTitle(c *services.ContactListController) string {
	if c.EditingID() != "" {
		return titleStyle.Render("Edit contact")
	}
	return titleStyle.Render("Add contact")
}
