package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-content-validator/internal/models"
)

func mixedResults() []models.ValidationResult {
	return []models.ValidationResult{
		{TripID: "alps", IsValid: true},
		{TripID: "sahara", IsValid: false, Errors: []string{"title: title is required"}, Warnings: []string{"headerImage: image path should start with /"}},
		{TripID: "fjords", IsValid: true, Warnings: []string{"content is very short, consider adding more details"}},
		{TripID: "andes", IsValid: false, Errors: []string{"startDate: startDate must be before endDate"}},
	}
}

func TestGenerateSummaryCounts(t *testing.T) {
	out := Generate(mixedResults())

	assert.Contains(t, out, "Trip Content Validation Report")
	assert.Contains(t, out, "Total trips:   4")
	assert.Contains(t, out, "Valid:         2")
	assert.Contains(t, out, "Invalid:       2")
	assert.Contains(t, out, "With warnings: 2")
}

func TestGenerateSectionOrdering(t *testing.T) {
	out := Generate(mixedResults())

	invalidIdx := strings.Index(out, "Invalid trips:")
	warnedIdx := strings.Index(out, "Trips with warnings:")
	require.GreaterOrEqual(t, invalidIdx, 0)
	require.GreaterOrEqual(t, warnedIdx, 0)
	assert.Less(t, invalidIdx, warnedIdx)

	// Invalid trips keep input order inside their section
	assert.Less(t, strings.Index(out, "sahara"), strings.Index(out, "andes"))

	// A valid warning-free trip is not itemized
	assert.NotContains(t, out, "alps")
	assert.NotContains(t, out, "passed validation")
}

func TestGenerateInvalidTripListsErrorsThenWarnings(t *testing.T) {
	out := Generate(mixedResults())

	errIdx := strings.Index(out, "ERROR:   title: title is required")
	warnIdx := strings.Index(out, "WARNING: headerImage: image path should start with /")
	require.GreaterOrEqual(t, errIdx, 0)
	require.GreaterOrEqual(t, warnIdx, 0)
	assert.Less(t, errIdx, warnIdx)
}

func TestGenerateOmitsEmptySections(t *testing.T) {
	results := []models.ValidationResult{
		{TripID: "alps", IsValid: true, Warnings: []string{"minor nit"}},
	}

	out := Generate(results)

	assert.NotContains(t, out, "Invalid trips:")
	assert.Contains(t, out, "Trips with warnings:")
	assert.NotContains(t, out, "passed validation")
}

func TestGenerateAllClear(t *testing.T) {
	results := []models.ValidationResult{
		{TripID: "alps", IsValid: true},
		{TripID: "fjords", IsValid: true},
	}

	out := Generate(results)

	assert.NotContains(t, out, "Invalid trips:")
	assert.NotContains(t, out, "Trips with warnings:")
	assert.Contains(t, out, "All 2 trips passed validation.")
}

func TestGenerateEmptyInput(t *testing.T) {
	out := Generate(nil)

	assert.Contains(t, out, "Total trips:   0")
	assert.Contains(t, out, "All 0 trips passed validation.")
}

func TestGenerateIsDeterministic(t *testing.T) {
	results := mixedResults()

	assert.Equal(t, Generate(results), Generate(results))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	err := WriteFile(path, mixedResults())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Generate(mixedResults()), string(data))
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "report.txt"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
}
