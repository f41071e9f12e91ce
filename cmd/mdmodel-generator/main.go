// Package main provides the CLI entrypoint for mdmodel-generator.
//
// mdmodel-generator compiles a markdown data-model document into Rust type
// definitions:
//   - Parses the markdown model (objects, typed attributes, enumerations)
//   - Resolves each attribute into a concrete field shape with accessor,
//     builder, and serde descriptors
//   - Renders the compiled module as Rust source with derive_builder and
//     serde support
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mdmodel-generator",
	Short:         "Generate Rust types from markdown data models",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
