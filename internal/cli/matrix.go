package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/guestcard/pkg/rows"
)

func (c *CLI) matrixCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print which rows every card shape shows",
		Long: `Print the row selection for every category, priority flag, notes flag and
record completeness. "bare" records have neither a time nor a guest count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := rows.Matrix()
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(m)
			}
			fmt.Println(matrixTable(m))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
