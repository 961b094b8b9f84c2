package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Document is one raw trip content file
type Document struct {
	ID   string
	Path string
	Raw  string
}

// FileStore yields trip documents from a content directory, one Markdown
// file per trip. The trip ID is the filename without its extension.
type FileStore struct {
	dir string
	log zerolog.Logger
}

// NewFileStore creates a store over the given directory
func NewFileStore(dir string, log zerolog.Logger) *FileStore {
	return &FileStore{
		dir: dir,
		log: log.With().Str("component", "content-store").Logger(),
	}
}

// Dir returns the directory the store reads from
func (s *FileStore) Dir() string {
	return s.dir
}

// List reads every *.md file under the store directory in lexical order.
// Any read failure aborts the whole listing: a partial read would silently
// drop trips from the build gate.
func (s *FileStore) List(ctx context.Context) ([]Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory %s: %w", s.dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		docs = append(docs, Document{
			ID:   strings.TrimSuffix(entry.Name(), ".md"),
			Path: path,
			Raw:  string(raw),
		})
	}

	s.log.Debug().Int("count", len(docs)).Str("dir", s.dir).Msg("Content files loaded")
	return docs, nil
}
