package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/agenda/internal/client/client"
)

const helpText = `Available commands:
  list            show the current page
  search [text]   filter by name, email or phone (no text clears)
  sort            toggle A-Z / Z-A
  page N          go to page N
  next | prev     move one page
  add             add a contact (or continue the current edit)
  edit ID         edit a contact
  cancel          discard the current edit
  delete ID       delete a contact
  refresh         reload from the server
  export          export all contacts as CSV
  logout          sign out
  exit | quit     leave the program`

// execIface is the command surface of the contact list view. The real App
// satisfies it; tests provide a recording stub.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Sort(ctx context.Context) error
	Page(ctx context.Context, n int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
	Export(ctx context.Context) error
	Logout(ctx context.Context) error
	// Expire drops a session the server no longer accepts.
	Expire(ctx context.Context)
}

// runREPL reads commands from reader and dispatches them to a until the
// user logs out or leaves. It reports whether the program should exit
// (exit, quit or end of input) as opposed to returning to login.
//
// Handlers print their own messages. The only error acted on here is
// client.ErrUnauthorized, which expires the session and returns to login.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) bool {
	for {
		if ctx.Err() != nil {
			return true
		}

		fmt.Fprintf(w, "agenda %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return true
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		var cmdErr error

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "search":
			cmdErr = a.Search(ctx, rest)

		case "sort":
			cmdErr = a.Sort(ctx)

		case "page":
			n, convErr := strconv.Atoi(rest)
			if convErr != nil {
				fmt.Fprintln(w, "Usage: page N")
				continue
			}
			cmdErr = a.Page(ctx, n)

		case "next":
			cmdErr = a.Next(ctx)

		case "prev":
			cmdErr = a.Prev(ctx)

		case "add":
			cmdErr = a.Add(ctx)

		case "edit":
			if rest == "" {
				fmt.Fprintln(w, "Usage: edit ID")
				continue
			}
			cmdErr = a.Edit(ctx, rest)

		case "cancel":
			cmdErr = a.Cancel(ctx)

		case "delete":
			if rest == "" {
				fmt.Fprintln(w, "Usage: delete ID")
				continue
			}
			cmdErr = a.Delete(ctx, rest)

		case "refresh":
			cmdErr = a.Refresh(ctx)

		case "export":
			cmdErr = a.Export(ctx)

		case "logout":
			_ = a.Logout(ctx)
			return false

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return true

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if errors.Is(cmdErr, client.ErrUnauthorized) {
			a.Expire(ctx)
			return false
		}
	}
}
