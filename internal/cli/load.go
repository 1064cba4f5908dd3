package cli

import (
	"context"
	"fmt"

	"github.com/bomviz/bomviz/pkg/diagram"
	"github.com/bomviz/bomviz/pkg/errors"
	"github.com/bomviz/bomviz/pkg/sbom"
)

// loadModel validates, preprocesses and parses an SBOM file, then extracts
// the diagram model. Preprocessing faults are downgraded to warnings so a
// document that parses fine without the fix still goes through.
func (c *CLI) loadModel(ctx context.Context, input string) (*diagram.Model, error) {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateInputPath(input); err != nil {
		return nil, err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Parsing %s...", input))
	spinner.Start()
	prog := newProgress(logger)

	path, cleanup, err := sbom.Preprocess(input)
	if err != nil {
		printWarning("preprocessing skipped: %v", err)
	}
	defer cleanup()
	if path != input {
		logger.Debug("patched missing timezone designators", "tmp", path)
	}

	doc, err := sbom.Load(path)
	if err != nil {
		spinner.StopWithError("Parsing failed")
		return nil, err
	}
	spinner.Stop()

	model := diagram.Extract(doc)
	prog.done(fmt.Sprintf("Extracted %d elements, %d relationships",
		len(model.Elements), len(model.Relationships)))

	return model, nil
}
