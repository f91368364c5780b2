// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"sort"

	"stocks_api/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the source of the popular symbol table.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListPopular(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListPopularCodes returns the popular ticker codes ordered by sort key.
func (u *SymbolUsecase) ListPopularCodes(ctx context.Context) ([]string, error) {
	symbols, err := u.repo.ListPopular(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(symbols, func(i, j int) bool { return symbols[i].SortKey < symbols[j].SortKey })

	codes := make([]string, 0, len(symbols))
	for _, s := range symbols {
		codes = append(codes, s.Code)
	}
	return codes, nil
}
