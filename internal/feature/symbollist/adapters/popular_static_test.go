package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSymbols_ListPopular(t *testing.T) {
	t.Parallel()

	repo := NewPopularSymbolRepository()

	symbols, err := repo.ListPopular(context.Background())
	require.NoError(t, err)
	require.Len(t, symbols, 20)
	assert.Equal(t, "AAPL", symbols[0].Code)
	assert.Equal(t, 1, symbols[0].SortKey)
	assert.Equal(t, "BRK-B", symbols[10].Code)
	assert.Equal(t, "CRM", symbols[19].Code)

	// 返却値を変更しても次回の結果は変わらない
	symbols[0].Code = "MUTATED"
	again, err := repo.ListPopular(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AAPL", again[0].Code)
}
