package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/matzehuels/guestcard/pkg/card"
	"github.com/matzehuels/guestcard/pkg/errors"
	"github.com/matzehuels/guestcard/pkg/layout"
)

// tryInput collects one card through the form of the try command.
type tryInput struct {
	Name       string
	DateRange  string
	GuestCount string
	TimeLabel  string
	Time       string

	Category string
	Priority bool
	Slot     string
	Notes    bool
	HideName bool

	Viewport string
}

func (c *CLI) tryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "try",
		Short: "Build one card interactively and print its layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := tryInput{
				Name:      "Ada Lovelace",
				DateRange: "Oct 18 - Oct 21",
				Category:  string(card.Arrival),
				Slot:      string(card.First),
				Viewport:  formatCoord(c.Config.ViewportWidth),
			}
			if err := tryForm(&in).RunWithContext(cmd.Context()); err != nil {
				return err
			}
			rec, ctx, width, err := in.card()
			if err != nil {
				return err
			}
			p := layout.Resolve(rec, ctx, nil, width)
			fmt.Println(planSummary(rec.Name, p))
			fmt.Println(planTable(p))
			return nil
		},
	}
}

func tryForm(in *tryInput) *huh.Form {
	categories := make([]huh.Option[string], 0, len(card.Categories))
	for _, cat := range card.Categories {
		categories = append(categories, huh.NewOption(cat.String(), string(cat)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Guest name").Value(&in.Name),
			huh.NewInput().Title("Date range").Value(&in.DateRange),
			huh.NewInput().Title("Guest count").Placeholder("blank for none").Value(&in.GuestCount),
			huh.NewSelect[string]().Title("Time label").
				Options(
					huh.NewOption("none", string(card.NoTime)),
					huh.NewOption("ETA", string(card.ETA)),
					huh.NewOption("EDT", string(card.EDT)),
				).
				Value(&in.TimeLabel),
			huh.NewInput().Title("Time").Placeholder("14:00").Value(&in.Time),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Category").Options(categories...).Value(&in.Category),
			huh.NewConfirm().Title("Priority card?").Value(&in.Priority),
			huh.NewSelect[string]().Title("Guest slot").
				Options(huh.NewOption("first", string(card.First)), huh.NewOption("second", string(card.Second))).
				Value(&in.Slot),
			huh.NewConfirm().Title("Card has notes?").Value(&in.Notes),
			huh.NewConfirm().Title("Hide the name row?").Value(&in.HideName),
			huh.NewInput().Title("Viewport width").Value(&in.Viewport).Validate(validateViewportInput),
		),
	).WithShowHelp(false)
}

func validateViewportInput(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	return errors.ValidateViewport(v)
}

// card converts the form answers and validates them.
func (in tryInput) card() (card.GuestRecord, card.Context, float64, error) {
	rec := card.GuestRecord{
		Name:       in.Name,
		DateRange:  in.DateRange,
		GuestCount: in.GuestCount,
		TimeLabel:  card.TimeLabel(in.TimeLabel),
		Time:       in.Time,
	}
	ctx := card.Context{
		Category:    card.Category(in.Category),
		IsPriority:  in.Priority,
		Slot:        card.Slot(in.Slot),
		HasNotes:    in.Notes,
		HideNameRow: in.HideName,
	}
	if err := errors.ValidateRecord(rec); err != nil {
		return rec, ctx, 0, err
	}
	if err := errors.ValidateContext(ctx); err != nil {
		return rec, ctx, 0, err
	}
	if err := validateViewportInput(in.Viewport); err != nil {
		return rec, ctx, 0, errors.New(errors.ErrCodeInvalidViewport, "viewport %q: %v", in.Viewport, err)
	}
	width, _ := strconv.ParseFloat(in.Viewport, 64)
	return rec, ctx, width, nil
}
