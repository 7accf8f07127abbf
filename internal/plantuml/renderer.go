// Package plantuml drives the external plantuml binary to turn a written
// .puml artifact into an image. Image rendering is delegated entirely to
// that collaborator; the pipeline itself never draws.
package plantuml

import (
	"context"
	"fmt"
	"os/exec"
)

// DefaultBinaryName is the executable looked up on PATH when no explicit
// binary path is configured.
const DefaultBinaryName = "plantuml"

// Renderer invokes the plantuml binary for one output format.
type Renderer struct {
	binaryPath string
	format     string
}

// NewRenderer creates a renderer for the given binary path and image
// format ("png" or "svg"). An empty binaryPath selects the PATH lookup of
// DefaultBinaryName.
func NewRenderer(binaryPath, format string) *Renderer {
	if binaryPath == "" {
		binaryPath = DefaultBinaryName
	}
	return &Renderer{binaryPath: binaryPath, format: format}
}

// Available checks that the binary can be resolved. Callers treat a
// missing binary as a reported, non-fatal condition: the .puml artifact is
// already on disk by the time this runs.
func (r *Renderer) Available() error {
	if _, err := exec.LookPath(r.binaryPath); err != nil {
		return fmt.Errorf("plantuml binary not found (%s): %w", r.binaryPath, err)
	}
	return nil
}

// RenderImage renders the diagram file next to itself in the configured
// format.
func (r *Renderer) RenderImage(ctx context.Context, diagramPath string) error {
	cmd := exec.CommandContext(ctx, r.binaryPath, "-t"+r.format, diagramPath)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("plantuml failed: %w: %s", err, output)
	}
	return nil
}
