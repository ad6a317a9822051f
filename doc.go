/*
Package treeify converts a flat list of paths into a tree diagram similar to
the output of the tree command.

It reads one path per record from a stream, merges shared prefixes into a
forest and draws each node with the usual connector glyphs. No filesystem
access takes place: the input is only text, typically the output of find,
git ls-files or tar -t.

# Usage

	if err := treeify.Run(os.Stdin, os.Stdout, treeify.WithNullDelimited(true)); err != nil {
		log.Fatal(err)
	}

Given the records "a", "a/b", "a/b/c/d" and "a/b/e" the output is:

	a
	└── b
	    ├── c
	    │   └── d
	    └── e

The building blocks live in sub-packages:

  - pkg/records: splits a stream into records (newline or null separated).
  - pkg/tree: builds the forest and renders it.
*/
package treeify
