package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/treeify"
	"github.com/aretw0/treeify/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newRootCmd builds the treeify command. Streams are taken from the command
// (SetIn/SetOut/SetErr) so tests can drive it without touching the process.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treeify",
		Short: "Convert a list of paths into a tree diagram",
		Long: `treeify converts the output of a command that lists files into a tree
representation similar to the output of the command tree.

Paths are read from standard input, one per line (or separated by null
characters with --null), and the tree is written to standard output.
Control characters in names are shown as '?'.`,
		Example: `  find . -name '*.go' | treeify
  git ls-files | treeify
  find . -print0 | treeify -0`,
		Version:       strings.TrimSpace(treeify.Version),
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			null, _ := cmd.Flags().GetBool("null")
			return runTreeify(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), null)
		},
	}

	cmd.SetFlagErrorFunc(flagError)
	cmd.SetVersionTemplate("treeify version {{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().BoolP("null", "0", false, "Paths are separated by null characters instead of new lines")

	cmd.AddCommand(newCompletionCmd())
	return cmd
}

func runTreeify(in io.Reader, out, errOut io.Writer, null bool) error {
	logger := logging.NewWithWriter(errOut, slog.LevelInfo)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Info("reading paths from the terminal, end input with Ctrl-D")
	}

	return treeify.Run(in, out,
		treeify.WithNullDelimited(null),
		treeify.WithLogger(logger),
	)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
