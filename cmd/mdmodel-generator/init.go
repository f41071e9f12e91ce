package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// starterModel is the document written by the init command.
const starterModel = `# %s

### Object
- __name__
  - Type: string
- value
  - Type: float
`

func init() {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively scaffold a new markdown model",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "My Model"
			path := "model.md"

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Model name").
						Validate(func(s string) error {
							if s == "" {
								return errors.New("model name is required")
							}
							return nil
						}).
						Value(&name),
					huh.NewInput().
						Title("Model file path").
						Placeholder("model.md").
						Value(&path),
				),
			)

			if err := form.Run(); err != nil {
				return err
			}

			if path == "" {
				path = "model.md"
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("refusing to overwrite existing file %s", path)
			}

			content := fmt.Sprintf(starterModel, name)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing model file %s: %w", path, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)

			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
