package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/closet/internal/client/views"
)

func (a *App) addCmd(ctx context.Context, cmd string, args []string) error {
	f := a.switcher.Form()
	if f == nil {
		return errUnknownCommand
	}

	switch cmd {
	case "set":
		if len(args) < 2 {
			a.println("Usage: set <field> <value>")
			return nil
		}
		field, err := views.ParseField(args[0])
		if err != nil {
			a.println(err)
			return err
		}
		f.Set(field, strings.Join(args[1:], " "))

	case "fill":
		if err := a.fillForm(f); err != nil {
			return err
		}

	case "submit":
		// the outcome is rendered from the form's banner and notice
		_ = f.Submit(ctx)

	case "dismiss":
		f.DismissNotice()

	default:
		return errUnknownCommand
	}

	a.show()
	return nil
}

// fillForm prompts for every field. An empty answer keeps the current value.
func (a *App) fillForm(f *views.ItemForm) error {
	for _, field := range views.Fields() {
		prompt := fmt.Sprintf("%s (current: %q)", field, f.Get(field))
		if field == views.FieldImage {
			prompt = fmt.Sprintf("image file path (current: %q)", f.Get(field))
		}
		v, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			f.Set(field, v)
		}
	}
	return nil
}
