package reorder

import "context"

// Service defines suggestion queue read logic.
type Service interface {
	ListUpcoming(ctx context.Context) ([]UpcomingOrder, error)
	BuildOrder(ctx context.Context) ([]OrderItem, error)
}

type service struct {
	repo Repository
}

// NewService creates a new reorder service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListUpcoming(ctx context.Context) ([]UpcomingOrder, error) {
	orders, err := s.repo.ListUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []UpcomingOrder{}
	}
	return orders, nil
}

func (s *service) BuildOrder(ctx context.Context) ([]OrderItem, error) {
	return s.repo.BuildOrder(ctx)
}
