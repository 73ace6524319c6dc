// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"

	"github.com/got-milkbag/launchvm/storage"
)

func TestQuoteTradingFee(t *testing.T) {
	require := require.New(t)

	ledger := Ledger{TradingFeeBps: 100}

	// 1% of 1,000,000
	require.Equal(uint64(10_000), ledger.QuoteTradingFee(1_000_000))
	// Truncates toward zero
	require.Equal(uint64(0), ledger.QuoteTradingFee(99))
	// No 128-bit intermediate needed near the top of the range
	require.Equal(uint64(184_467_440_737_095_516), ledger.QuoteTradingFee(^uint64(0)))
}

func TestQuoteMigrationFee(t *testing.T) {
	require := require.New(t)

	ledger := Ledger{MigrationFeeBps: 300}
	require.Equal(uint64(30_000), ledger.QuoteMigrationFee(1_000_000))
}

func TestCollect(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	mu := chaintest.NewInMemoryStore()
	require.NoError(Protocol.Collect(ctx, mu, 42))

	bal, err := storage.GetBalance(ctx, mu, Protocol.Collector)
	require.NoError(err)
	require.Equal(uint64(42), bal)
}
