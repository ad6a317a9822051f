/*
Package tree turns flat path strings into a forest of nodes and draws that
forest the way the tree(1) utility draws a directory listing.

Building and rendering are separate steps. The Builder consumes every record
before anything is drawn, since a later record may still extend a branch
created by an earlier one.

# Key Components

  - Node: One path segment with its ordered children.
  - Forest: The ordered root nodes of all records.
  - Builder: Inserts records into a forest, merging shared prefixes.
  - Renderer: Writes one line per node, pre-order, with connector glyphs.

# Usage

	forest := tree.Build([]string{"a", "a/b", "a/b/c/d", "a/b/e"})
	if err := tree.Render(os.Stdout, forest); err != nil {
		log.Fatal(err)
	}

Output:

	a
	└── b
	    ├── c
	    │   └── d
	    └── e
*/
package tree
