package runner

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-content-validator/internal/content"
)

func testdataDir(t *testing.T, parts ...string) string {
	t.Helper()
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(currentFile)))
	path := filepath.Join(append([]string{projectRoot, "testdata"}, parts...)...)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("testdata directory not found: %s", path)
	}
	return path
}

func loadTestdataDocs(t *testing.T, dir string) []content.Document {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var docs []content.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)
		docs = append(docs, content.Document{
			ID:  strings.TrimSuffix(entry.Name(), ".md"),
			Raw: string(raw),
		})
	}
	require.NotEmpty(t, docs, "no .md files under %s", dir)
	return docs
}

func TestValidateDocument_ValidFixtures(t *testing.T) {
	dir := testdataDir(t, "trips", "valid")
	r := New(zerolog.Nop())

	for _, doc := range loadTestdataDocs(t, dir) {
		t.Run(doc.ID, func(t *testing.T) {
			res := r.ValidateDocument(doc)
			assert.True(t, res.IsValid, "errors: %v", res.Errors)
			assert.Empty(t, res.Errors)
			assert.Empty(t, res.Warnings, "valid fixtures should be warning-free")
		})
	}
}

func TestValidateDocument_InvalidFixtures(t *testing.T) {
	dir := testdataDir(t, "trips", "invalid")
	r := New(zerolog.Nop())

	for _, doc := range loadTestdataDocs(t, dir) {
		t.Run(doc.ID, func(t *testing.T) {
			res := r.ValidateDocument(doc)
			assert.False(t, res.IsValid)
			assert.NotEmpty(t, res.Errors)
		})
	}
}
