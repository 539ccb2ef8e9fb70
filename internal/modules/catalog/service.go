package catalog

import "context"

// Service defines catalog business logic.
type Service interface {
	// ListMedicines returns every tracked medicine with its total stock,
	// rows sharing a name merged into one entry.
	ListMedicines(ctx context.Context) ([]StockLevel, error)
}

type service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListMedicines(ctx context.Context) ([]StockLevel, error) {
	levels, err := s.repo.ListAggregated(ctx)
	if err != nil {
		return nil, err
	}
	if levels == nil {
		levels = []StockLevel{}
	}
	return levels, nil
}
