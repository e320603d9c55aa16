package gateway

import (
	"context"
	"fmt"
	"os"

	"card-wrapped/internal/logger"
	"card-wrapped/internal/parser"
)

// CSVStatementRepository implements the StatementRepository interface for CSV exports on disk.
type CSVStatementRepository struct{}

// NewCSVStatementRepository creates a new repository instance.
func NewCSVStatementRepository() *CSVStatementRepository {
	return &CSVStatementRepository{}
}

// GetStatement opens the statement at path and parses it.
func (r *CSVStatementRepository) GetStatement(ctx context.Context, path string) (*parser.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file %s: %w", path, err)
	}
	defer file.Close()

	log := logger.WithFields(logger.FromContext(ctx), map[string]interface{}{"file": path})
	ctx = logger.WithContext(ctx, log)
	result, err := parser.Parse(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse statement file %s: %w", path, err)
	}
	return result, nil
}
