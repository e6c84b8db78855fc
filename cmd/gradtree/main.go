// Package main provides the Gradtree CLI.
package main

import (
	"fmt"
	"os"

	"github.com/gradtree-ml/gradtree/transform"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Gradtree %s\n", version)
			return
		case "variants":
			for _, name := range transform.Variants() {
				fmt.Println(name)
			}
			return
		}
	}

	fmt.Println("Gradtree - Composable Gradient Transformations for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version     Show version")
	fmt.Println("  variants    List supported optimizer variants")
}
