package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/treeify/internal/logging"
	"github.com/spf13/cobra"
)

// usageError marks a bad flag or argument, as opposed to an I/O failure.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usageArgs wraps a positional argument validator so its failures are
// reported as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func flagError(cmd *cobra.Command, err error) error {
	return &usageError{err: err}
}

// reportError logs err to w and points at --help for usage mistakes only.
func reportError(w io.Writer, err error) {
	logging.NewWithWriter(w, slog.LevelError).Error("treeify failed", "error", err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(w, "Run 'treeify --help' for usage.")
	}
}
