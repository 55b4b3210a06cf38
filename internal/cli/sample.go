package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/guestcard/pkg/deck"
)

func (c *CLI) sampleCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample deck covering every card shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deck.Sample()
			if output == "" {
				return deck.Write(os.Stdout, d, deck.Format(format))
			}
			if err := deck.Save(output, d); err != nil {
				return err
			}
			printSuccess("Wrote sample deck with %d cards", d.Len())
			printFile(output)
			printNextStep("Resolve it", "guestcard resolve "+output+" -f json,preview")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or .toml); stdout when empty")
	cmd.Flags().StringVar(&format, "format", string(deck.FormatJSON), "stdout format: json or toml")
	return cmd
}
