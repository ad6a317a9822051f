package tree_test

import (
	"log"
	"os"

	"github.com/aretw0/treeify/pkg/tree"
)

func ExampleRender() {
	forest := tree.Build([]string{
		"src",
		"src/main.go",
		"src/tree/render.go",
		"src/tree/builder.go",
		"README.md",
	})

	if err := tree.Render(os.Stdout, forest); err != nil {
		log.Fatal(err)
	}
	// Output:
	// src
	// ├── main.go
	// └── tree
	//     ├── render.go
	//     └── builder.go
	// README.md
}
