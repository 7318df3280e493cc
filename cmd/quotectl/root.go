package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"capquote/internal/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	tunablesFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "quotectl",
		Short: "Offline diagnostics for cap quote configuration",
		Long: `quotectl runs the quote pipeline on local files.

Commands:
  quotectl extract [file|-]     Extract and normalize a specification from agent text
  quotectl status [file|-]      Print the section statuses of that specification
  quotectl validate             Cross-check a quoted logo cost against a logo analysis`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.tunablesFile, "tunables", os.Getenv("QUOTE_TUNABLES_FILE"),
		"YAML file overriding extraction, pricing and default tunables")

	cmd.AddCommand(newExtractCmd(opts), newStatusCmd(opts), newValidateCmd(opts))
	return cmd
}

func (o *rootOptions) tunables() (config.Tunables, error) {
	return config.LoadTunables(o.tunablesFile)
}

// readInput reads the named file, or stdin when the name is empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
