package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"mdmodel-generator/internal/compile"
	"mdmodel-generator/internal/schema"
)

func init() {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Compile a markdown model and dump the module description",
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

			spew.Fdump(cmd.OutOrStdout(), desc)

			return nil
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "model.md", "path to the markdown model")

	rootCmd.AddCommand(cmd)
}
