package treeify

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/treeify/internal/logging"
	"github.com/aretw0/treeify/pkg/records"
	"github.com/aretw0/treeify/pkg/tree"
)

// Version is the release of the module, embedded from the VERSION file.
//
//go:embed VERSION
var Version string

// Treeifier reads path records and writes them back as a tree diagram.
type Treeifier struct {
	delim  records.Delimiter
	logger *slog.Logger
}

// Option defines a functional option for configuring the Treeifier.
type Option func(*Treeifier)

// WithNullDelimited selects null-separated records instead of lines.
func WithNullDelimited(null bool) Option {
	return func(t *Treeifier) {
		if null {
			t.delim = records.Null
		} else {
			t.delim = records.Newline
		}
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Treeifier) {
		t.logger = logger
	}
}

// New creates a Treeifier. By default records are newline separated and
// nothing is logged.
func New(opts ...Option) *Treeifier {
	t := &Treeifier{delim: records.Newline}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	return t
}

// Run is a shortcut for New(opts...).Run(r, w).
func Run(r io.Reader, w io.Writer, opts ...Option) error {
	return New(opts...).Run(r, w)
}

// Run consumes all of r, builds the forest and renders it into w.
// A read failure aborts before anything is written.
func (t *Treeifier) Run(r io.Reader, w io.Writer) error {
	recs, err := records.ReadAll(r, t.delim)
	if err != nil {
		return err
	}

	forest := tree.Build(recs)
	t.logger.Debug("forest built",
		"delimiter", t.delim.String(),
		"records", len(recs),
		"roots", len(forest),
		"nodes", forest.Len(),
	)

	bw := bufio.NewWriter(w)
	if err := tree.Render(bw, forest); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", tree.ErrWrite, err)
	}
	return nil
}
