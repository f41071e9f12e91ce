package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mdmodel-generator/internal/compile"
	"mdmodel-generator/internal/emit"
	"mdmodel-generator/internal/schema"
)

func init() {
	var (
		modelPath string
		outputDir string
		noHeader  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile a markdown model and write the Rust source",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := schema.LoadFile(modelPath)
			if err != nil {
				return err
			}

			desc, err := compile.Generate(model)
			if err != nil {
				return err
			}

			for _, w := range desc.Diagnostics.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w.String())
			}

			config := emit.DefaultConfig()
			config.HeaderComment = !noHeader

			file, err := emit.NewEmitter(config).Emit(desc)
			if err != nil {
				return err
			}

			path, err := emit.WriteFile(file, outputDir)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "model.md", "path to the markdown model")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory for generated source")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "omit the generated-file header comment")

	rootCmd.AddCommand(cmd)
}
