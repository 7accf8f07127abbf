package plantuml

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRenderer_EmptyPathSelectsDefault(t *testing.T) {
	t.Parallel()

	r := NewRenderer("", "png")
	assert.Equal(t, DefaultBinaryName, r.binaryPath)

	r = NewRenderer("/opt/plantuml/plantuml", "svg")
	assert.Equal(t, "/opt/plantuml/plantuml", r.binaryPath)
	assert.Equal(t, "svg", r.format)
}

func TestAvailable_MissingBinary(t *testing.T) {
	t.Parallel()

	r := NewRenderer(filepath.Join(t.TempDir(), "no-such-binary"), "png")
	assert.Error(t, r.Available())
}

func TestRenderImage_MissingBinaryFails(t *testing.T) {
	t.Parallel()

	r := NewRenderer(filepath.Join(t.TempDir(), "no-such-binary"), "png")
	err := r.RenderImage(context.Background(), "diagram.puml")
	assert.ErrorContains(t, err, "plantuml failed")
}
