// Package commands implements the odataq subcommands.
package commands

import (
	"fmt"

	"github.com/leapstack-labs/odataq/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <token>...",
		Short: "Parse OData literal or name tokens",
		Long: `Parse each argument as an OData primitive literal or qualified name and
report the recognized kind and canonical value. Tokens that fail to parse are
reported with the error kind and byte offset.`,
		Example: `  odataq parse 42 "'g''day sir'" 2024-02-29
  odataq parse "duration'P1D'" "binary'aGVsbG8='"
  odataq parse -o json Account.Owner.Name`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.LoggerFromContext(cmd.Context())

			results := make([]Result, 0, len(args))
			failed := 0
			for _, tok := range args {
				res := parseToken(tok)
				if !res.ok {
					failed++
				}
				logger.Debug("parsed token", "input", tok, "kind", res.Kind, "ok", res.ok)
				results = append(results, res)
			}

			if err := renderResults(cmd.OutOrStdout(), results, cfg.Output); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tokens failed to parse", failed, len(args))
			}
			return nil
		},
	}
}
