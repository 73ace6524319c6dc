// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"

	"github.com/got-milkbag/launchvm/curve"
	"github.com/got-milkbag/launchvm/storage"
)

func TestCurveQuote(t *testing.T) {
	ctx := context.Background()

	actor := codectest.NewRandomAddress()
	tokenAddress := codectest.NewRandomAddress()
	migratedToken := codectest.NewRandomAddress()

	sellToken := codectest.NewRandomAddress()

	store := chaintest.NewInMemoryStore()
	seedCurve(ctx, t, store, tokenAddress, TestTokenReserve, 0, UnreachableThreshold)
	seedCurve(ctx, t, store, sellToken, 502_513, 990_000, UnreachableThreshold)
	if err := storage.SetCurve(ctx, store, migratedToken, curve.ExponentialID, storage.CurveStatusMigrated, 0, 0, TestVirtualConstant, 500_000, 0, 0); err != nil {
		t.Fatal(err)
	}

	tests := []chaintest.ActionTest{
		{
			Name: "Quote amount must be nonzero",
			Action: &CurveQuote{
				TokenAddress: tokenAddress,
				Amount:       0,
				IsBuy:        true,
			},
			ExpectedErr: ErrOutputValueZero,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Quotes require a listed token",
			Action: &CurveQuote{
				TokenAddress: codectest.NewRandomAddress(),
				Amount:       1_000_000,
				IsBuy:        true,
			},
			ExpectedErr: ErrOutputCurveDoesNotExist,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Migrated curves no longer quote",
			Action: &CurveQuote{
				TokenAddress: migratedToken,
				Amount:       1_000_000,
				IsBuy:        true,
			},
			ExpectedErr: ErrOutputCurveMigrated,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Buy quote matches the buy path",
			Action: &CurveQuote{
				TokenAddress: tokenAddress,
				Amount:       1_000_000,
				IsBuy:        true,
			},
			ExpectedOutputs: &CurveQuoteResult{
				AmountOut:  497_487,
				TradingFee: 10_000,
			},
			State: store,
			Actor: actor,
		},
		{
			Name: "Sell quote nets out the fee",
			Action: &CurveQuote{
				TokenAddress: sellToken,
				Amount:       497_487,
				IsBuy:        false,
			},
			// Gross 1,990,000*497,487/1,000,000 = 989,999; the 1% fee on
			// the gross leaves 980,100
			ExpectedOutputs: &CurveQuoteResult{
				AmountOut:  980_100,
				TradingFee: 9_899,
			},
			State: store,
			Actor: actor,
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestCurveQuoteIsIdempotent(t *testing.T) {
	ctx := context.Background()

	actor := codectest.NewRandomAddress()
	tokenAddress := codectest.NewRandomAddress()

	store := chaintest.NewInMemoryStore()
	seedCurve(ctx, t, store, tokenAddress, TestTokenReserve, 0, UnreachableThreshold)

	// Quoting moves no state, so the same quote twice in a row returns the
	// same numbers.
	for _, name := range []string{
		"First quote",
		"Second quote with no intervening trade",
	} {
		test := chaintest.ActionTest{
			Name: name,
			Action: &CurveQuote{
				TokenAddress: tokenAddress,
				Amount:       1_000_000,
				IsBuy:        true,
			},
			ExpectedOutputs: &CurveQuoteResult{
				AmountOut:  497_487,
				TradingFee: 10_000,
			},
			State: store,
			Actor: actor,
		}
		test.Run(ctx, t)
	}
}
