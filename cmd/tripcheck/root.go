package main

import (
	"github.com/spf13/cobra"
)

var (
	// verbose enables debug logging
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "tripcheck",
		Short: "Validate trip content for the travel showcase site",
		Long: `tripcheck validates the Markdown trip files that drive the travel
showcase site: frontmatter structure, schema fields, and cross-field
business rules (date ordering, coordinate ranges, status coherence).

It is meant to run before the site build so broken content never
reaches production.

Examples:
  tripcheck validate                      Validate the default content directory
  tripcheck validate ./content/trips      Validate a specific directory
  tripcheck validate --exit-on-error      Fail the build on any invalid trip
  tripcheck validate -o report.txt        Also write the report to a file`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(validateCmd)
}

// Execute runs the root command. It is called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}
