package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lyubolp/py2uml/internal/generator"
)

// depsCmd represents the deps command
var depsCmd = &cobra.Command{
	Use:   "deps <input-dir> <output.puml>",
	Short: "Generate a PlantUML module dependency diagram",
	Long: `Deps scans the input directory for Python source files, reads their
import statements and writes a PlantUML diagram of the module dependency
graph. Only imports that resolve to modules inside the project are
included; external packages are left out.

Example:
  py2uml deps ./myproject deps.puml
`,
	Args: cobra.ExactArgs(2),
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
	depsCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
}

func runDeps(cmd *cobra.Command, args []string) error {
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

	if err := gen.DependencyDiagram(ctx, outputPath); err != nil {
		return err
	}
	if !quietFlag {
		fmt.Printf("✓ dependency diagram written to %s\n", outputPath)
	}
	return nil
}
