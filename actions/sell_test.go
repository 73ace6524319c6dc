// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/storage"
)

func TestSell(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	actor := codectest.NewRandomAddress()
	tokenAddress := codectest.NewRandomAddress()

	store := chaintest.NewInMemoryStore()
	// The state a correct 1,000,000 buy leaves behind
	seedCurve(ctx, t, store, tokenAddress, 502_513, 990_000, UnreachableThreshold)
	req.NoError(storage.SetTokenAccountBalance(ctx, store, tokenAddress, actor, 497_487))

	tests := []chaintest.ActionTest{
		{
			Name: "Sell value must be nonzero",
			Action: &Sell{
				TokenAddress: tokenAddress,
				TokenIn:      0,
			},
			ExpectedErr: ErrOutputValueZero,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Unlisted tokens cannot be sold",
			Action: &Sell{
				TokenAddress: codectest.NewRandomAddress(),
				TokenIn:      100_000,
			},
			ExpectedErr: ErrOutputCurveDoesNotExist,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Slippage bound aborts the sell",
			Action: &Sell{
				TokenAddress:     tokenAddress,
				TokenIn:          497_487,
				MinSettlementOut: 980_101,
			},
			ExpectedErr: ErrOutputSlippageExceeded,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Full exit returns the reserve minus the fee",
			Action: &Sell{
				TokenAddress:     tokenAddress,
				TokenIn:          497_487,
				MinSettlementOut: 980_100,
			},
			// Gross 1,990,000*497,487/1,000,000 = 989,999; 1% fee on the
			// gross leaves 980,100
			ExpectedOutputs: &SellResult{
				SettlementOut: 980_100,
				TradingFee:    9_899,
			},
			State: store,
			Actor: actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)

				balance, err := storage.GetBalance(ctx, mu, actor)
				require.NoError(err)
				require.Equal(uint64(980_100), balance)

				tokens, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenAddress, actor)
				require.NoError(err)
				require.Zero(tokens)

				collector, err := storage.GetBalance(ctx, mu, storage.FeeCollectorAddress)
				require.NoError(err)
				require.Equal(uint64(9_899), collector)

				// Rounding residue stays with the curve
				_, status, tokenReserve, settlementReserve, _, _, _, _, err := storage.GetCurveNoController(ctx, mu, tokenAddress)
				require.NoError(err)
				require.Equal(storage.CurveStatusActive, status)
				require.Equal(uint64(1_000_000), tokenReserve)
				require.Equal(uint64(1), settlementReserve)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
