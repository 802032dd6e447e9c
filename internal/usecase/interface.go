package usecase

import (
	"context"

	"pledgeviz/internal/domain"
)

// PledgeRepository defines the interface for fetching pledge data.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go PledgeRepository
type PledgeRepository interface {
	LoadPledges(ctx context.Context, path string) ([]domain.Pledge, error)
}
