package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/guestcard/pkg/deck"
	"github.com/matzehuels/guestcard/pkg/errors"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var (
		viewport float64
		id       string
	)

	cmd := &cobra.Command{
		Use:   "inspect [deck]",
		Short: "Print the resolved elements of every card as tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], viewport, id)
		},
	}

	cmd.Flags().Float64Var(&viewport, "viewport", 0, "viewport width in device pixels (default: deck, then config)")
	cmd.Flags().StringVar(&id, "id", "", "only inspect the entry with this id")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, viewport float64, id string) error {
	d, err := deck.Load(input)
	if err != nil {
		return err
	}
	if id != "" {
		d, err = onlyEntry(d, id)
		if err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	if viewport == 0 {
		viewport = d.ViewportWidth
	}
	if viewport == 0 {
		viewport = c.Config.ViewportWidth
	}
	plans, _, err := runner.ResolveDeck(ctx, d, c.pipelineOptions(viewport))
	if err != nil {
		return err
	}

	printKeyValue("Deck", input)
	printKeyValue("Viewport", formatCoord(viewport))
	printKeyValue("Cards", fmt.Sprint(len(plans)))
	for _, p := range plans {
		fmt.Println()
		fmt.Println(planSummary(p.ID, p.Plan))
		fmt.Println(planTable(p.Plan))
	}
	return nil
}

// onlyEntry narrows d to the entry with the given id.
func onlyEntry(d *deck.Deck, id string) (*deck.Deck, error) {
	for _, e := range d.Entries {
		if e.ID == id {
			return &deck.Deck{ViewportWidth: d.ViewportWidth, Entries: []deck.Entry{e}}, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "no entry with id %q", id)
}
