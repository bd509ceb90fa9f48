package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/closet/internal/client/views"
)

func parseID(args []string) (int64, bool, error) {
	if len(args) == 0 {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid id %q", args[0])
	}
	return id, true, nil
}

// targetID is the id from args, or the front entry's id.
func (a *App) targetID(c *views.Carousel, args []string) (int64, bool) {
	id, ok, err := parseID(args)
	if err != nil {
		a.println(err)
		return 0, false
	}
	if ok {
		return id, true
	}
	cur, ok := c.Current()
	if !ok {
		a.println("Nothing selected.")
		return 0, false
	}
	return cur.ID(), true
}

func (a *App) closetCmd(ctx context.Context, cmd string, args []string) error {
	c := a.switcher.Carousel()
	if c == nil {
		return errUnknownCommand
	}

	switch cmd {
	case "left", "h":
		c.MoveLeft()

	case "right", "l":
		c.MoveRight()

	case "toggle":
		// fetch failures are logged by the carousel
		_ = c.ToggleMode(ctx)

	case "refresh":
		_ = c.Load(ctx)

	case "delete":
		id, ok := a.targetID(c, args)
		if !ok {
			return nil
		}
		_ = c.Delete(ctx, id)

	case "open":
		id, ok := a.targetID(c, args)
		if !ok {
			return nil
		}
		if err := c.Open(id); err != nil {
			switch {
			case errors.Is(err, views.ErrNotOutfit):
				a.println("Only outfits can be opened.")
			default:
				a.println(fmt.Sprintf("No entry #%d.", id))
			}
			return err
		}

	case "close":
		c.CloseDetail()

	case "browse":
		if err := a.browse(ctx, c, a.in, a.out); err != nil {
			a.logger.Error(ctx, "browser failed", "error", err)
			return err
		}

	default:
		return errUnknownCommand
	}

	a.show()
	return nil
}
