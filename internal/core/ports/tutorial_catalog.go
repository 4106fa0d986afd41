package ports

import "github.com/devpath/tutorial-platform/internal/core/domain"

// TutorialCatalog serves the static tutorial content. Implementations are
// read-only; no context is taken because lookups never touch the network.
type TutorialCatalog interface {
	List() []domain.Tutorial
	Get(id string) (*domain.Tutorial, error)
}
