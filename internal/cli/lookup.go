package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/pageturner/internal/core/selection"
)

// LookupCmd returns the lookup command
func LookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [text]",
		Short: "Print the definition-search URL for a word or phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(selection.LookupURL(args[0]))
			return nil
		},
	}
}
