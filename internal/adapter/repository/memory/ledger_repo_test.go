package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sashablokhin/memoledger/internal/adapter/repository/memory"
	"github.com/sashablokhin/memoledger/internal/domain"
)

func TestLedgerRepository_CreateAndView(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewLedger("led-1")))

	err := repo.View(ctx, "led-1", func(l *domain.Ledger) error {
		require.Equal(t, "led-1", l.ID())
		require.Equal(t, 0, l.Len())
		return nil
	})
	require.NoError(t, err)
}

func TestLedgerRepository_CreateDuplicate(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewLedger("led-1")))
	require.ErrorIs(t, repo.Create(ctx, domain.NewLedger("led-1")), domain.ErrLedgerAlreadyExists)
}

func TestLedgerRepository_NotFound(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	err := repo.View(ctx, "missing", func(*domain.Ledger) error { return nil })
	require.ErrorIs(t, err, domain.ErrLedgerNotFound)

	err = repo.Update(ctx, "missing", func(*domain.Ledger) error { return nil })
	require.ErrorIs(t, err, domain.ErrLedgerNotFound)
}

func TestLedgerRepository_UpdateMutates(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewLedger("led-1")))

	err := repo.Update(ctx, "led-1", func(l *domain.Ledger) error {
		l.AddEntry("Bob", decimal.RequireFromString("100.43"))
		return nil
	})
	require.NoError(t, err)

	err = repo.View(ctx, "led-1", func(l *domain.Ledger) error {
		require.Equal(t, 1, l.Len())
		require.True(t, l.Total().Equal(decimal.RequireFromString("100.43")))
		return nil
	})
	require.NoError(t, err)
}

func TestLedgerRepository_ConcurrentUpdates(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewLedger("led-1")))

	const (
		workers = 8
		each    = 50
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				_ = repo.Update(ctx, "led-1", func(l *domain.Ledger) error {
					l.AddEntry("worker", decimal.NewFromInt(1))
					return nil
				})
			}
		}()
	}
	wg.Wait()

	err := repo.View(ctx, "led-1", func(l *domain.Ledger) error {
		require.Equal(t, workers*each, l.Len())
		require.True(t, l.Total().Equal(decimal.NewFromInt(workers*each)))

		// Serialized updates keep ids dense: exactly 1..N.
		require.Equal(t, int64(workers*each+1), l.NextID())
		return nil
	})
	require.NoError(t, err)
}
