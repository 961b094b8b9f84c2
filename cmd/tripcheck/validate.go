package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trip-content-validator/internal/content"
	"github.com/trip-content-validator/internal/models"
	"github.com/trip-content-validator/internal/report"
	"github.com/trip-content-validator/internal/runner"
	"github.com/trip-content-validator/pkg/logger"
)

// defaultContentDir is used when neither the argument nor CONTENT_DIR is set
const defaultContentDir = "./content/trips"

var (
	outputPath  string
	exitOnError bool

	validateCmd = &cobra.Command{
		Use:   "validate [content-dir]",
		Short: "Validate all trip content files",
		Long: `Validate every Markdown trip file in a content directory.

The report is printed to stdout; --output additionally writes it to a
file. With --exit-on-error the command exits 1 when any trip is
invalid, which is how CI wires tripcheck in as a build gate.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file as well as stdout")
	validateCmd.Flags().BoolVar(&exitOnError, "exit-on-error", false, "exit with code 1 when any trip is invalid")
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger.NewConsole(verbose)

	dir := defaultContentDir
	if env := os.Getenv("CONTENT_DIR"); env != "" {
		dir = env
	}
	if len(args) > 0 {
		dir = args[0]
	}

	log.Debug().Str("dir", dir).Msg("Validating trip content")

	store := content.NewFileStore(dir, log)
	r := runner.New(log)
	results := r.Run(cmd.Context(), store)

	fmt.Fprint(cmd.OutOrStdout(), report.Generate(results))

	if outputPath != "" {
		if err := report.WriteFile(outputPath, results); err != nil {
			cmd.SilenceUsage = true
			return err
		}
		log.Info().Str("path", outputPath).Msg("Report written")
	}

	summary := models.Summarize(results)
	if exitOnError && summary.Invalid > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("validation failed: %d of %d trips invalid", summary.Invalid, summary.Total)
	}

	return nil
}
