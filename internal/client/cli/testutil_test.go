package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrijs2005/agenda/internal/client/client"
	"github.com/dmitrijs2005/agenda/internal/client/config"
	"github.com/dmitrijs2005/agenda/internal/logging"
)

// pipedStdin makes GetPassword read from the line reader.
func pipedStdin(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func newTestApp(t *testing.T, input string, cl client.Client) (*App, *bytes.Buffer) {
	t.Helper()
	pipedStdin(t)

	out := &bytes.Buffer{}
	reader := bufio.NewReader(strings.NewReader(input))
	ur, cr := demoRepositories()
	cfg := &config.Config{PageSize: 5, Offline: cl == nil}

	return newApp(cfg, cl, ur, cr, NewPromptConfirmer(reader, out), logging.Nop{}, reader, out), out
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}
