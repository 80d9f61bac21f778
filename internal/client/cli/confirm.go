package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhConfirmer asks yes/no questions with a huh confirm field. It needs a
// real terminal on stdin.
type HuhConfirmer struct {
	Accessible bool
}

func (h HuhConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	var ok bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithAccessible(h.Accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// PromptConfirmer reads a y/N answer from a line reader. Used when stdin is
// piped.
type PromptConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPromptConfirmer(reader *bufio.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{reader: reader, out: out}
}

func (p *PromptConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	answer, err := GetSimpleText(p.reader, prompt+" [y/N]", p.out)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
