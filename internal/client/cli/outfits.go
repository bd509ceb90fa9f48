package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/client/views"
)

func (a *App) outfitsCmd(ctx context.Context, cmd string, args []string) error {
	b := a.switcher.Builder()
	if b == nil {
		return errUnknownCommand
	}

	switch cmd {
	case "filter":
		if err := a.filterFlow(ctx, b); err != nil {
			return err
		}

	case "pick":
		id, ok, err := parseID(args)
		if err != nil || !ok {
			a.println("Usage: pick <id>")
			return err
		}
		added, err := b.AddByID(id)
		if err != nil {
			a.println(fmt.Sprintf("Item #%d is not in the results.", id))
			return err
		}
		if !added {
			a.println(fmt.Sprintf("Item #%d is already in the outfit.", id))
		}

	case "drop":
		id, ok, err := parseID(args)
		if err != nil || !ok {
			a.println("Usage: drop <id>")
			return err
		}
		b.Remove(id)

	case "name":
		b.SetName(strings.Join(args, " "))

	case "describe":
		desc, err := GetMultiline(a.reader, "Description", a.out)
		if err != nil {
			return err
		}
		b.SetDescription(desc)

	case "save":
		if err := b.Save(ctx); err != nil {
			a.println(a.styles.AlertBox(views.ErrSaveFailed.Error()))
			return err
		}

	case "dismiss":
		b.DismissNotice()

	default:
		return errUnknownCommand
	}

	a.show()
	return nil
}

// filterFlow walks the filter modal: category, value, then apply or close.
func (a *App) filterFlow(ctx context.Context, b *views.OutfitBuilder) error {
	b.OpenFilters()
	m := b.Filters()
	defer func() {
		if m.IsOpen() {
			m.Close()
		}
	}()

	a.println(a.styles.FilterModal(m))

	names := make([]string, 0, 4)
	for _, c := range m.Categories() {
		names = append(names, string(c))
	}
	answer, err := GetSimpleText(a.reader,
		fmt.Sprintf("Category (%s, empty to clear)", strings.Join(names, ", ")), a.out)
	if err != nil {
		return err
	}
	category, err := models.ParseCategory(answer)
	if err != nil {
		a.println(err)
		return err
	}
	m.SelectCategory(ctx, category)

	if category != models.CategoryNone {
		a.println(a.styles.FilterModal(m))
		value, err := GetSimpleText(a.reader, m.Placeholder(), a.out)
		if err != nil {
			return err
		}
		if err := m.SelectValue(value); err != nil {
			a.println(err)
			return err
		}
	}

	apply, err := Confirm(a.reader, "Apply filters?", true, a.out)
	if err != nil {
		return err
	}
	if !apply {
		m.Close()
		return nil
	}
	m.Apply(ctx)
	return nil
}
