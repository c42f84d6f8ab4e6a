package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported building types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		type entry struct {
			Type        string `json:"type"`
			Strategy    string `json:"strategy"`
			Description string `json:"description"`
		}
		var entries []entry
		for _, t := range registry.SupportedTypes() {
			e, err := registry.Engine(t)
			if err != nil {
				return err
			}
			s := e.Strategy()
			entries = append(entries, entry{Type: string(t), Strategy: s.Name(), Description: s.Description()})
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), entries)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  TYPE\tSTRATEGY\tDESCRIPTION\n")
		for _, e := range entries {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", e.Type, e.Strategy, e.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
