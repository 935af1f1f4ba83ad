// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stdout.Fd()))
}

// ConfigureColor enables colored output only when stderr is a terminal and
// noColor is false. It sets the process-wide fatih/color switch.
func ConfigureColor(noColor bool) {
	color.NoColor = noColor || !isTerminal(int(os.Stderr.Fd()))
}
