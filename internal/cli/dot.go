package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomviz/bomviz/pkg/cache"
	"github.com/bomviz/bomviz/pkg/diagram"
	"github.com/bomviz/bomviz/pkg/errors"
)

// Output formats for the dot command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// dotCommand creates the dot command for Graphviz output.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output  string
		format  string
		noCache bool
	)
	opts := c.diagramOptions()

	cmd := &cobra.Command{
		Use:   "dot [sbom-file]",
		Short: "Convert an SPDX SBOM to a Graphviz diagram",
		Long: `Convert an SPDX SBOM to a Graphviz diagram.

With --format dot (the default) the DOT source is written as text. With
--format svg or png the graph is rendered through Graphviz directly; rendered
artifacts are cached locally, keyed by the diagram content, so repeated runs
over an unchanged document skip the layout pass.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return c.runDOT(cmd.Context(), args[0], output, format, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, <input>.<format> otherwise)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg, png")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.Compact, "compact", opts.Compact, "trim node labels to the essential fields")
	cmd.Flags().IntVar(&opts.MaxPackages, "max-packages", opts.MaxPackages, "cap the number of package nodes (0 = no cap)")
	cmd.Flags().BoolVar(&opts.ExcludeExternalRefs, "exclude-external-refs", opts.ExcludeExternalRefs, "drop external reference lines (CPE, PURL) from labels")

	return cmd
}

// validFormats is the set of supported dot command formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true}

// validateFormat checks the --format flag.
func validateFormat(format string) error {
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'dot', 'svg', or 'png')", format)
	}
	return nil
}

// runDOT loads the SBOM and writes DOT text or a rendered artifact.
func (c *CLI) runDOT(ctx context.Context, input, output, format string, noCache bool, opts diagram.Options) error {
	model, err := c.loadModel(ctx, input)
	if err != nil {
		return err
	}

	dot := diagram.DOT(model, opts)

	if format == formatDOT {
		w, err := openOutput(output)
		if err != nil {
			return err
		}
		defer w.Close()
		if _, err := fmt.Fprint(w, dot); err != nil {
			return fmt.Errorf("write diagram: %w", err)
		}
		return nil
	}

	// Rendered artifacts are binary-ish; default to a file next to the input
	// rather than spraying stdout.
	if output == "" {
		output = basePath(input) + "." + format
	}

	data, cacheHit, err := c.renderArtifact(ctx, dot, format, noCache)
	if err != nil {
		return err
	}

	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	shown := model.Cap(opts.MaxPackages)
	printSuccess("%s diagram written", format)
	printFile(output)
	printStats(len(shown.Elements), len(shown.Relationships), cacheHit)
	return nil
}

// renderArtifact renders DOT source to the requested format, going through
// the render cache unless disabled.
func (c *CLI) renderArtifact(ctx context.Context, dot, format string, noCache bool) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	store := c.newRenderCache(noCache)
	defer store.Close()

	key := format + ":" + cache.Hash([]byte(dot))
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		logger.Debug("render cache hit", "key", key)
		return data, true, nil
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()
	prog := newProgress(logger)

	var (
		data []byte
		err  error
	)
	switch format {
	case formatSVG:
		data, err = diagram.RenderSVG(ctx, dot)
	case formatPNG:
		data, err = diagram.RenderPNG(ctx, dot)
	}
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return nil, false, err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %s", format))

	if err := store.Set(ctx, key, data); err != nil {
		logger.Debug("render cache write failed", "err", err)
	}
	return data, false, nil
}
