package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomviz/bomviz/pkg/diagram"
)

// mermaidCommand creates the mermaid command, the primary output mode.
func (c *CLI) mermaidCommand() *cobra.Command {
	var output string
	opts := c.diagramOptions()

	cmd := &cobra.Command{
		Use:   "mermaid [sbom-file]",
		Short: "Convert an SPDX SBOM to a mermaid flowchart",
		Long: `Convert an SPDX SBOM to a mermaid flowchart.

The input may be SPDX JSON, YAML, tag-value or RDF; the format is detected
from the file extension. The diagram shows the document, its packages, files
and snippets as colored nodes, with one labeled edge per relationship.

By default the diagram text is written to stdout, ready to paste into any
mermaid renderer. Use --compact for terser node labels on large documents,
and --max-packages to cap the node count entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMermaid(cmd.Context(), args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.Compact, "compact", opts.Compact, "trim node labels to the essential fields")
	cmd.Flags().IntVar(&opts.MaxPackages, "max-packages", opts.MaxPackages, "cap the number of package nodes (0 = no cap)")
	cmd.Flags().BoolVar(&opts.ExcludeExternalRefs, "exclude-external-refs", opts.ExcludeExternalRefs, "drop external reference lines (CPE, PURL) from labels")

	return cmd
}

// runMermaid loads the SBOM and writes the mermaid diagram text.
func (c *CLI) runMermaid(ctx context.Context, input, output string, opts diagram.Options) error {
	model, err := c.loadModel(ctx, input)
	if err != nil {
		return err
	}

	text := diagram.Mermaid(model, opts)

	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}

	// Status decoration goes only to interactive file runs; stdout stays
	// clean for piping.
	if output != "" && output != "-" {
		shown := model.Cap(opts.MaxPackages)
		printSuccess("Mermaid diagram written")
		printFile(output)
		printStats(len(shown.Elements), len(shown.Relationships), false)
	}
	return nil
}
