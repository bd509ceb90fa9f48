package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/closet/internal/client/views"
)

// errUnknownCommand is returned by Exec for commands the active view lacks.
var errUnknownCommand = errors.New("unknown command")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Active() views.View
	Select(ctx context.Context, v views.View) error
	Help() string
	Exec(ctx context.Context, cmd string, args []string) error
}

// runREPL starts a simple read–eval–print loop for the closet CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to 'a'. The loop exits on EOF, when ctx is done, or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn). Global commands:
//
//	help              show commands for the active view
//	closet | add | outfits
//	                  switch view
//	exit | quit       leave the program
//
// Anything else goes to a.Exec for the active view. Errors returned by
// command handlers are not printed here; handlers report what the user
// should see themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "closet (%s)> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, a.Help())

		case "closet", "add", "outfits":
			v, _ := views.ParseView(cmd)
			_ = a.Select(ctx, v)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			if err := a.Exec(ctx, cmd, args); errors.Is(err, errUnknownCommand) {
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
		}
	}
}
