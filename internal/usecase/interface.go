package usecase

import (
	"context"

	"card-wrapped/internal/parser"
)

// StatementRepository defines the interface for loading a parsed statement.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go StatementRepository
type StatementRepository interface {
	GetStatement(ctx context.Context, path string) (*parser.Result, error)
}
