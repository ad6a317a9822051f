package tree

import (
	"fmt"
	"io"
	"strings"
)

// Connector glyphs, identical to the ones drawn by tree(1).
const (
	Vertical = "│"
	Tee      = "├──"
	Elbow    = "└──"
)

// Renderer writes a forest to an output sink, one line per node.
type Renderer struct {
	w     io.Writer
	lasts []bool
	sb    strings.Builder
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render is a shortcut for NewRenderer(w).Render(forest).
func Render(w io.Writer, forest Forest) error {
	return NewRenderer(w).Render(forest)
}

// Render walks the forest depth-first, pre-order.
// The first write failure stops the walk and is returned wrapped in ErrWrite.
// Lines written before the failure are not retracted.
func (r *Renderer) Render(forest Forest) error {
	r.lasts = r.lasts[:0]
	for _, root := range forest {
		if err := r.node(root); err != nil {
			return err
		}
	}
	return nil
}

// node emits n then its subtree. lasts holds one flag per ancestor level;
// the flag pushed here is flipped before the final child so that child and
// its descendants draw the closing glyphs.
func (r *Renderer) node(n *Node) error {
	if err := r.line(r.lasts, n.Name); err != nil {
		return err
	}

	r.lasts = append(r.lasts, false)
	for i, child := range n.Children {
		if i == len(n.Children)-1 {
			r.lasts[len(r.lasts)-1] = true
		}
		if err := r.node(child); err != nil {
			return err
		}
	}
	r.lasts = r.lasts[:len(r.lasts)-1]
	return nil
}

// line writes a single formatted line for name given its ancestor flags.
// The last entry of lasts is the node's own last-child flag.
func (r *Renderer) line(lasts []bool, name string) error {
	r.sb.Reset()
	if n := len(lasts); n > 0 {
		for _, last := range lasts[:n-1] {
			if last {
				r.sb.WriteString("    ")
			} else {
				r.sb.WriteString(Vertical + "   ")
			}
		}
		if lasts[n-1] {
			r.sb.WriteString(Elbow + " ")
		} else {
			r.sb.WriteString(Tee + " ")
		}
	}
	r.sb.WriteString(Sanitize(name))
	r.sb.WriteByte('\n')

	if _, err := io.WriteString(r.w, r.sb.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
