// Package report renders aggregated validation results into a
// human-readable text document.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/trip-content-validator/internal/models"
)

// Generate renders a result list as a plain-text report. It is a pure
// function: the same results always produce the same document.
//
// Invalid trips are listed before warnings-only trips; a section is
// omitted when its group is empty, and the all-clear line appears only
// when both groups are empty.
func Generate(results []models.ValidationResult) string {
	summary := models.Summarize(results)

	var b strings.Builder
	b.WriteString("Trip Content Validation Report\n")
	b.WriteString("==============================\n\n")

	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "  Total trips:   %d\n", summary.Total)
	fmt.Fprintf(&b, "  Valid:         %d\n", summary.Valid)
	fmt.Fprintf(&b, "  Invalid:       %d\n", summary.Invalid)
	fmt.Fprintf(&b, "  With warnings: %d\n", summary.WithWarnings)

	var invalid, warned []models.ValidationResult
	for _, r := range results {
		if !r.IsValid {
			invalid = append(invalid, r)
		} else if len(r.Warnings) > 0 {
			warned = append(warned, r)
		}
	}

	if len(invalid) > 0 {
		b.WriteString("\nInvalid trips:\n")
		for _, r := range invalid {
			fmt.Fprintf(&b, "\n  %s\n", r.TripID)
			for _, e := range r.Errors {
				fmt.Fprintf(&b, "    ERROR:   %s\n", e)
			}
			for _, w := range r.Warnings {
				fmt.Fprintf(&b, "    WARNING: %s\n", w)
			}
		}
	}

	if len(warned) > 0 {
		b.WriteString("\nTrips with warnings:\n")
		for _, r := range warned {
			fmt.Fprintf(&b, "\n  %s\n", r.TripID)
			for _, w := range r.Warnings {
				fmt.Fprintf(&b, "    WARNING: %s\n", w)
			}
		}
	}

	if len(invalid) == 0 && len(warned) == 0 {
		fmt.Fprintf(&b, "\nAll %d trips passed validation.\n", summary.Total)
	}

	return b.String()
}

// WriteFile renders the report and writes it to path
func WriteFile(path string, results []models.ValidationResult) error {
	if err := os.WriteFile(path, []byte(Generate(results)), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
