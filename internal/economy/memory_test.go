package economy

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedgerBasics(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	ledger.SetBalance("alice", 500)

	ok, err := ledger.CanAfford(ctx, "alice", 300)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ledger.CanAfford(ctx, "alice", 501)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = ledger.CanAfford(ctx, "nobody", 1)
	require.NoError(t, err)
	assert.False(t, ok, "unknown users have a zero balance")

	require.NoError(t, ledger.Debit(ctx, "alice", 300))
	require.NoError(t, ledger.Credit(ctx, "bob", 600))

	balance, err := ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 200, balance)

	balance, err = ledger.Balance(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 600, balance)
}

func TestMemoryLedgerRejectsNegativeAmounts(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()

	assert.Error(t, ledger.Debit(ctx, "alice", -1))
	assert.Error(t, ledger.Credit(ctx, "alice", -1))
}

func TestMemoryLedgerConcurrentMutation(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	ledger.SetBalance("alice", 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = ledger.Credit(ctx, "alice", 10)
		}()
		go func() {
			defer wg.Done()
			_ = ledger.Debit(ctx, "alice", 5)
		}()
	}
	wg.Wait()

	balance, err := ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 250, balance)
}
