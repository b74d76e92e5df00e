package main

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/lifecycle"
)

// promptConfirmer asks a yes/no question on out and reads the answer from
// in. Input that is not a terminal gets the plain line prompt.
func promptConfirmer(in io.Reader, out io.Writer) lifecycle.Confirmer {
	return lifecycle.ConfirmFunc(func(prompt string) bool {
		var ok bool
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(prompt).
					Affirmative("Yes").
					Negative("No").
					Value(&ok),
			),
		).
			WithInput(in).
			WithOutput(out).
			WithAccessible(!isTerminal(in)).
			Run()
		return err == nil && ok
	})
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
