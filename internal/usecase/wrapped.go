package usecase

import (
	"context"
	"fmt"

	"card-wrapped/internal/domain"
	"card-wrapped/internal/logger"

	"github.com/google/uuid"
)

// WrappedUseCase orchestrates loading a statement and summarising it.
type WrappedUseCase struct {
	repo StatementRepository
}

// NewWrappedUseCase creates a new instance of the usecase.
func NewWrappedUseCase(repo StatementRepository) *WrappedUseCase {
	return &WrappedUseCase{repo: repo}
}

// Wrap parses the statement at path and builds its report. The report is a
// fresh value on every call and carries its own currency and locale.
func (uc *WrappedUseCase) Wrap(ctx context.Context, path string) (*domain.WrappedReport, error) {
	result, err := uc.repo.GetStatement(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not load statement: %w", err)
	}

	report := &domain.WrappedReport{
		RunID:        uuid.NewString(),
		Dialect:      result.Dialect,
		Currency:     result.Currency.String(),
		Locale:       result.Locale.String(),
		Transactions: result.Transactions,
		Statistics:   Aggregate(result.Transactions),
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("run_id", report.RunID).
		Str("dialect", string(report.Dialect)).
		Int("transactions", report.Statistics.TransactionCount).
		Float64("total_spent", report.Statistics.TotalSpent).
		Msg("statement wrapped")

	return report, nil
}
