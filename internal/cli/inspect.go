package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bomviz/bomviz/pkg/diagram"
)

// inspectCommand creates the inspect command, which dumps the extracted
// model as JSON for debugging and downstream tooling.
func (c *CLI) inspectCommand() *cobra.Command {
	var output string
	var maxPackages int

	cmd := &cobra.Command{
		Use:   "inspect [sbom-file]",
		Short: "Dump the extracted diagram model as JSON",
		Long: `Dump the extracted diagram model as JSON.

The output contains exactly what the diagram emitters see: every element with
its type and extracted attributes, and every relationship with source, target,
kind and comment. Useful for checking which fields made it out of a document
before rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], output, maxPackages)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&maxPackages, "max-packages", 0, "cap the number of package elements (0 = no cap)")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input, output string, maxPackages int) error {
	model, err := c.loadModel(ctx, input)
	if err != nil {
		return err
	}
	model = model.Cap(maxPackages)

	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := diagram.WriteModel(model, w); err != nil {
		return err
	}

	if output != "" && output != "-" {
		printSuccess("Model written")
		printFile(output)
	}
	return nil
}
