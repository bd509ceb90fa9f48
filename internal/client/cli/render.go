package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// getTermSize is a test seam for term.GetSize.
var getTermSize = term.GetSize

// terminalWidth returns a width probe for out. Outputs that are not a
// terminal report 0, which renderers treat as unlimited.
func terminalWidth(out io.Writer) func() int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() int { return 0 }
	}
	fd := int(f.Fd())
	return func() int {
		w, _, err := getTermSize(fd)
		if err != nil {
			return 0
		}
		return w
	}
}
