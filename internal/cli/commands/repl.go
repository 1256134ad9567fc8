package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/odataq/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		Aliases: []string{"shell"},
		Short:   "Interactively parse tokens",
		Long:    `Start an interactive loop that parses one token per line.`,
		RunE:    runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.LoggerFromContext(cmd.Context())

	completer := readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "odataq> ",
		HistoryFile:     cfg.History,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "odataq REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type a literal or name to parse it, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handleDotCommand(cmd, line) {
				break
			}
			continue
		}

		res := parseToken(line)
		logger.Debug("parsed token", "input", line, "kind", res.Kind, "ok", res.ok)
		if res.Error != "" {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error (%s): %s\n", res.Kind, res.Error)
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Kind, res.Value)
	}

	return nil
}

// handleDotCommand handles a REPL dot-command, returning true when the loop
// should exit.
func handleDotCommand(cmd *cobra.Command, line string) bool {
	switch strings.ToLower(line) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())
		return false

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", line)
		return false
	}
}

func printREPLHelp(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Commands:")
	_, _ = fmt.Fprintln(w, "  .help          Show this help")
	_, _ = fmt.Fprintln(w, "  .quit, .exit   Exit the REPL")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Anything else is parsed as an OData literal or name, e.g.:")
	_, _ = fmt.Fprintln(w, "  42   'g''day sir'   2024-02-29   duration'P1D'   Account.Owner")
}
