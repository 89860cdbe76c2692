// Package loam adapts the Loam document library to the maze.Source interface:
// each markdown file in the repository is one maze, YAML frontmatter for the
// metadata and the ASCII grid as the document body.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/ariadne/internal/dto"
	"github.com/aretw0/ariadne/internal/maze"
	"github.com/aretw0/ariadne/pkg/domain"
)

// Source loads maze layouts from a Loam repository.
type Source struct {
	repo *loam.TypedRepository[dto.LayoutMetadata]
}

// New creates a layout source over an existing typed repository.
func New(repo *loam.TypedRepository[dto.LayoutMetadata]) *Source {
	return &Source{repo: repo}
}

// Open initializes a read-only Loam repository at dir and wraps it.
func Open(dir string) (*Source, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[dto.LayoutMetadata](repo)), nil
}

// Layout retrieves and parses a layout by ID.
func (s *Source) Layout(id string) (*maze.Layout, error) {
	ctx := context.Background()

	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, domain.ErrLayoutNotFound
	}

	meta := normalize(doc.ID, doc.Data)
	return maze.Parse(meta.ID, meta.Name, rows(doc.Content))
}

// Default returns the layout whose frontmatter sets default: true. With no
// marked default the lexically first document wins.
func (s *Source) Default() (*maze.Layout, error) {
	ctx := context.Background()

	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrLayoutNotFound
	}

	chosen := docs[0]
	for _, doc := range docs {
		if doc.Data.Default {
			chosen = doc
			break
		}
		if doc.ID < chosen.ID {
			chosen = doc
		}
	}

	meta := normalize(chosen.ID, chosen.Data)
	return maze.Parse(meta.ID, meta.Name, rows(chosen.Content))
}

// List returns the IDs of every stored layout.
func (s *Source) List() ([]string, error) {
	docs, err := s.repo.List(context.Background())
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, normalize(doc.ID, doc.Data).ID)
	}
	return ids, nil
}

// normalize fills metadata gaps from the document itself: the filename ID
// (extension trimmed) when the frontmatter names none, the ID as display name.
func normalize(docID string, meta dto.LayoutMetadata) dto.LayoutMetadata {
	if meta.ID == "" {
		meta.ID = trimExtension(docID)
	}
	if meta.Name == "" {
		meta.Name = meta.ID
	}
	return meta
}

// rows extracts the ASCII grid from a document body, skipping blank lines.
func rows(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
