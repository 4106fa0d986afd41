// Package content serves the static tutorial catalog. Tutorials are
// read-only seed data compiled into the binary; user state never mutates
// them and they are referenced from progress records by identifier only.
package content

import (
	"sort"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

// Catalog is an in-memory, read-only tutorial store.
type Catalog struct {
	tutorials map[string]domain.Tutorial
	order     []string
}

// NewCatalog returns the catalog preloaded with the built-in tutorials.
func NewCatalog() *Catalog {
	c := &Catalog{tutorials: make(map[string]domain.Tutorial)}
	for _, t := range builtinTutorials {
		c.tutorials[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	sort.Strings(c.order)
	return c
}

// List returns all tutorials in stable (id-sorted) order.
func (c *Catalog) List() []domain.Tutorial {
	out := make([]domain.Tutorial, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.tutorials[id])
	}
	return out
}

func (c *Catalog) Get(id string) (*domain.Tutorial, error) {
	t, ok := c.tutorials[id]
	if !ok {
		return nil, domain.ErrTutorialNotFound
	}
	return &t, nil
}
