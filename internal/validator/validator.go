// Package validator checks a directory of maze layout documents before the
// authority serves them.
package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"

	"github.com/aretw0/ariadne/internal/dto"
	"github.com/aretw0/ariadne/internal/maze"
)

// ValidateLayouts parses every layout in the repository and reports all
// problems at once: malformed grids, duplicate IDs, more than one default.
func ValidateLayouts(repo core.Repository) error {
	typedRepo := loam.NewTypedRepository[dto.LayoutMetadata](repo)
	ctx := context.Background()

	docs, err := typedRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list layouts: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no layout documents found")
	}

	var (
		errs     []string
		defaults []string
		seen     = map[string]string{}
	)

	for _, doc := range docs {
		id := doc.Data.ID
		if id == "" {
			id = trimExtension(doc.ID)
		}

		if existing, ok := seen[id]; ok {
			errs = append(errs, fmt.Sprintf("duplicate layout ID %q in %q and %q", id, existing, doc.ID))
		}
		seen[id] = doc.ID

		if _, err := maze.Parse(id, doc.Data.Name, rows(doc.Content)); err != nil {
			errs = append(errs, err.Error())
		}

		if doc.Data.Default {
			defaults = append(defaults, id)
		}
	}

	if len(defaults) > 1 {
		errs = append(errs, fmt.Sprintf("multiple default layouts: %s", strings.Join(defaults, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("found %d error(s):\n- %s", len(errs), strings.Join(errs, "\n- "))
	}
	return nil
}

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
	if i := strings.LastIndex(id, "."); i > 0 {
		return id[:i]
	}
	return id
}
