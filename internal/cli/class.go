package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lyubolp/py2uml/internal/config"
	"github.com/lyubolp/py2uml/internal/generator"
	"github.com/lyubolp/py2uml/internal/plantuml"
	"github.com/lyubolp/py2uml/internal/watcher"
)

var (
	quietFlag bool
	watchFlag bool
	imageFlag bool
)

// classCmd represents the class command
var classCmd = &cobra.Command{
	Use:   "class <input-dir> <output.puml>",
	Short: "Generate a PlantUML class diagram from a Python project",
	Long: `Class scans the input directory for Python source files, extracts every
top-level class (attributes, methods, static and abstract methods,
visibility, type annotations) and writes a PlantUML class diagram.

Extraction is line oriented and best effort: files or class blocks that
fail to match are reported and skipped, never aborting the run.

Examples:
  # Generate a class diagram for a project
  py2uml class ./myproject diagram.puml

  # Regenerate on every source change
  py2uml class ./myproject diagram.puml --watch

  # Also render an image via the plantuml binary
  py2uml class ./myproject diagram.puml --image
`,
	Args: cobra.ExactArgs(2),
	RunE: runClass,
}

func init() {
	rootCmd.AddCommand(classCmd)
	classCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	classCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for file changes and regenerate")
	classCmd.Flags().BoolVar(&imageFlag, "image", false, "Render an image with the plantuml binary")
}

func runClass(cmd *cobra.Command, args []string) error {
	ctx, cancel := newSignalContext()
	defer cancel()

	inputDir, outputPath := args[0], args[1]
	if err := validatePaths(inputDir, outputPath); err != nil {
		return err
	}

	cfg, err := loadConfig(inputDir)
	if err != nil {
		return err
	}

	gen, err := generator.New(cfg, inputDir, NewCLIProgressReporter(quietFlag))
	if err != nil {
		return err
	}
	defer gen.Close()

	regenerate := func() error {
		stats, err := gen.ClassDiagram(ctx, outputPath)
		if err != nil {
			return err
		}
		if !quietFlag {
			fmt.Printf("✓ %d classes from %d files (%d failed, %d cached) in %v\n",
				stats.Classes, stats.FilesProcessed, stats.FilesFailed, stats.CacheHits, stats.Duration)
		}
		if imageFlag {
			renderImage(ctx, cfg, outputPath)
		}
		return nil
	}

	if err := regenerate(); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}

	fw, err := watcher.New(inputDir, []string{".py"})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	fw.Start(ctx, func(files []string) {
		log.WithFields(log.Fields{"changed": len(files)}).Info("source changed, regenerating")
		if err := regenerate(); err != nil {
			log.Error("regeneration failed: ", err)
		}
	})

	if !quietFlag {
		fmt.Println("Watching for changes (Ctrl+C to stop)...")
	}
	<-ctx.Done()
	return fw.Stop()
}

// renderImage runs the external plantuml binary. A missing binary is
// reported, not fatal: the .puml artifact is already written.
func renderImage(ctx context.Context, cfg *config.Config, outputPath string) {
	renderer := plantuml.NewRenderer(cfg.Render.PlantUMLPath, cfg.Render.ImageFormat)
	if err := renderer.Available(); err != nil {
		log.Warn("skipping image rendering: ", err)
		return
	}
	if err := renderer.RenderImage(ctx, outputPath); err != nil {
		log.Error("image rendering failed: ", err)
	}
}

// validatePaths checks the input directory exists and the output carries
// the .puml extension.
func validatePaths(inputDir, outputPath string) error {
	info, err := os.Stat(inputDir)
	if err != nil {
		return fmt.Errorf("input path %q does not exist", inputDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path %q is not a directory", inputDir)
	}
	if !strings.HasSuffix(outputPath, ".puml") {
		return fmt.Errorf("output path %q must have .puml extension", outputPath)
	}
	return nil
}

func loadConfig(inputDir string) (*config.Config, error) {
	loader := config.NewLoader(inputDir)
	if cfgFile != "" {
		loader = config.NewLoaderWithFile(inputDir, cfgFile)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newSignalContext returns a context cancelled by Ctrl+C or SIGTERM.
func newSignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
