package tree

import (
	"path/filepath"
	"strings"
)

// Builder manages the forest construction.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	root *Node
}

// NewBuilder creates a builder with an empty forest.
func NewBuilder() *Builder {
	return &Builder{root: &Node{}}
}

// Build inserts every record in order and returns the resulting forest.
func Build(records []string) Forest {
	b := NewBuilder()
	for _, r := range records {
		b.Add(r)
	}
	return b.Forest()
}

// Add splits record into segments and inserts them.
func (b *Builder) Add(record string) {
	b.AddSegments(Split(record))
}

// AddSegments walks down from the pseudo-root, reusing any child whose name
// matches the next segment and appending a new one otherwise.
func (b *Builder) AddSegments(segments []string) {
	cur := b.root
	for _, seg := range segments {
		next := cur.Child(seg)
		if next == nil {
			next = &Node{Name: seg}
			cur.Children = append(cur.Children, next)
		}
		cur = next
	}
}

// Forest returns the roots built so far.
func (b *Builder) Forest() Forest {
	return Forest(b.root.Children)
}

// Split decomposes a record into path segments.
// A leading separator becomes a "/" root segment and a single trailing
// separator is ignored, so "/usr/bin" yields ["/", "usr", "bin"] and "dir/"
// yields ["dir"]. Interior empty segments are kept: "a//b" yields
// ["a", "", "b"]. An empty record yields no segments.
func Split(record string) []string {
	if record == "" {
		return nil
	}
	parts := strings.Split(filepath.ToSlash(record), "/")
	if n := len(parts); n > 1 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	if parts[0] == "" {
		parts[0] = "/"
	}
	return parts
}
