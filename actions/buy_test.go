// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/curve"
	"github.com/got-milkbag/launchvm/storage"
)

// seedCurve lists a token with a small exponential curve so quotes stay
// hand-checkable.
func seedCurve(
	ctx context.Context,
	t *testing.T,
	mu state.Mutable,
	tokenAddress codec.Address,
	tokenReserve uint64,
	settlementReserve uint64,
	migrationThreshold uint64,
) {
	require := require.New(t)
	require.NoError(storage.SetTokenInfo(ctx, mu, tokenAddress, []byte(TokenOneName), []byte(TokenOneSymbol), []byte(TokenOneMetadata), TestTokenReserve, codec.EmptyAddress))
	require.NoError(storage.SetTokenAccountBalance(ctx, mu, tokenAddress, storage.VaultAddress, tokenReserve))
	require.NoError(storage.SetCurve(ctx, mu, tokenAddress, curve.ExponentialID, storage.CurveStatusActive, tokenReserve, settlementReserve, TestVirtualConstant, migrationThreshold, 0, 0))
	if settlementReserve > 0 {
		_, err := storage.AddBalance(ctx, mu, storage.VaultAddress, settlementReserve)
		require.NoError(err)
	}
}

func TestBuy(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	actor := codectest.NewRandomAddress()
	tokenAddress := codectest.NewRandomAddress()

	store := chaintest.NewInMemoryStore()
	seedCurve(ctx, t, store, tokenAddress, TestTokenReserve, 0, UnreachableThreshold)
	_, err := storage.AddBalance(ctx, store, actor, 2_000_000)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "Buy value must be nonzero",
			Action: &Buy{
				TokenAddress: tokenAddress,
				SettlementIn: 0,
			},
			ExpectedErr: ErrOutputValueZero,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Dust buys are rejected",
			Action: &Buy{
				TokenAddress: tokenAddress,
				SettlementIn: 999,
			},
			ExpectedErr: ErrOutputTradeTooSmall,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Unlisted tokens cannot be bought",
			Action: &Buy{
				TokenAddress: codectest.NewRandomAddress(),
				SettlementIn: 1_000_000,
			},
			ExpectedErr: ErrOutputCurveDoesNotExist,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Declared referrer must match the bound record",
			Action: &Buy{
				TokenAddress: tokenAddress,
				SettlementIn: 1_000_000,
				Referrer:     codectest.NewRandomAddress(),
			},
			ExpectedErr: ErrOutputReferrerMismatch,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "Slippage bound aborts before any state moves",
			Action: &Buy{
				TokenAddress: tokenAddress,
				SettlementIn: 1_000_000,
				MinTokenOut:  497_488,
			},
			ExpectedErr: ErrOutputSlippageExceeded,
			State:       store,
			Actor:       actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				balance, err := storage.GetBalance(ctx, mu, actor)
				require.NoError(err)
				require.Equal(uint64(2_000_000), balance)
			},
		},
		{
			Name: "Correct buy quotes the net input",
			Action: &Buy{
				TokenAddress: tokenAddress,
				SettlementIn: 1_000_000,
				MinTokenOut:  497_487,
			},
			// 1% fee leaves 990,000 net: 1,000,000*990,000/1,990,000
			ExpectedOutputs: &BuyResult{
				TokenOut:    497_487,
				TradingFee:  10_000,
				Migrated:    false,
				PoolAddress: codec.EmptyAddress,
			},
			State: store,
			Actor: actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)

				balance, err := storage.GetBalance(ctx, mu, actor)
				require.NoError(err)
				require.Equal(uint64(1_000_000), balance)

				tokens, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenAddress, actor)
				require.NoError(err)
				require.Equal(uint64(497_487), tokens)

				vaultBalance, err := storage.GetBalance(ctx, mu, storage.VaultAddress)
				require.NoError(err)
				require.Equal(uint64(990_000), vaultBalance)

				collector, err := storage.GetBalance(ctx, mu, storage.FeeCollectorAddress)
				require.NoError(err)
				require.Equal(uint64(10_000), collector)

				_, status, tokenReserve, settlementReserve, _, _, lastPrice, _, err := storage.GetCurveNoController(ctx, mu, tokenAddress)
				require.NoError(err)
				require.Equal(storage.CurveStatusActive, status)
				require.Equal(uint64(502_513), tokenReserve)
				require.Equal(uint64(990_000), settlementReserve)
				require.NotZero(lastPrice)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestBuyWithReferral(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	actor := codectest.NewRandomAddress()
	direct := codectest.NewRandomAddress()
	indirect := codectest.NewRandomAddress()
	tokenAddress := codectest.NewRandomAddress()

	store := chaintest.NewInMemoryStore()
	seedCurve(ctx, t, store, tokenAddress, TestTokenReserve, 0, UnreachableThreshold)
	req.NoError(storage.SetReferrer(ctx, store, actor, direct, indirect))
	_, err := storage.AddBalance(ctx, store, actor, 1_000_000)
	req.NoError(err)

	test := chaintest.ActionTest{
		Name: "Referral shares come out of the trading fee",
		Action: &Buy{
			TokenAddress:     tokenAddress,
			SettlementIn:     1_000_000,
			Referrer:         direct,
			IndirectReferrer: indirect,
		},
		ExpectedOutputs: &BuyResult{
			TokenOut:    497_487,
			TradingFee:  10_000,
			Migrated:    false,
			PoolAddress: codec.EmptyAddress,
		},
		State: store,
		Actor: actor,
		Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
			require := require.New(t)

			// 15% of the 10,000 fee to the direct referrer, 1% to the
			// indirect referrer, the rest to the protocol
			directReward, err := storage.GetReferralRewardNoController(ctx, mu, direct)
			require.NoError(err)
			require.Equal(uint64(1_500), directReward)

			indirectReward, err := storage.GetReferralRewardNoController(ctx, mu, indirect)
			require.NoError(err)
			require.Equal(uint64(100), indirectReward)

			escrow, err := storage.GetBalance(ctx, mu, storage.ReferralVaultAddress)
			require.NoError(err)
			require.Equal(uint64(1_600), escrow)

			collector, err := storage.GetBalance(ctx, mu, storage.FeeCollectorAddress)
			require.NoError(err)
			require.Equal(uint64(8_400), collector)
		},
	}
	test.Run(ctx, t)
}

func TestBuyTriggersMigration(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	actor := codectest.NewRandomAddress()
	tokenAddress := codectest.NewRandomAddress()
	poolAddress := storage.PoolAddress(tokenAddress)

	store := chaintest.NewInMemoryStore()
	seedCurve(ctx, t, store, tokenAddress, TestTokenReserve, 0, 500_000)
	_, err := storage.AddBalance(ctx, store, actor, 1_000_000)
	req.NoError(err)

	test := chaintest.ActionTest{
		Name: "Crossing the threshold migrates the whole reserve",
		Action: &Buy{
			TokenAddress: tokenAddress,
			SettlementIn: 1_000_000,
		},
		ExpectedOutputs: &BuyResult{
			TokenOut:    497_487,
			TradingFee:  10_000,
			Migrated:    true,
			PoolAddress: poolAddress,
		},
		State: store,
		Actor: actor,
		Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
			require := require.New(t)

			// Curve is terminally closed
			_, status, tokenReserve, settlementReserve, _, _, _, _, err := storage.GetCurveNoController(ctx, mu, tokenAddress)
			require.NoError(err)
			require.Equal(storage.CurveStatusMigrated, status)
			require.Zero(tokenReserve)
			require.Zero(settlementReserve)

			// The pool holds the reserve minus the 3% migration fee
			poolToken, reserveToken, reserveSettlement, _, lpTokenAddress, err := storage.GetAmmPoolNoController(ctx, mu, poolAddress)
			require.NoError(err)
			require.Equal(tokenAddress, poolToken)
			require.Equal(uint64(502_513), reserveToken)
			require.Equal(uint64(960_300), reserveSettlement)

			poolBalance, err := storage.GetBalance(ctx, mu, poolAddress)
			require.NoError(err)
			require.Equal(uint64(960_300), poolBalance)

			// Trading fee plus migration fee
			collector, err := storage.GetBalance(ctx, mu, storage.FeeCollectorAddress)
			require.NoError(err)
			require.Equal(uint64(39_700), collector)

			// Receipt locked forever: sqrt(502,513 * 960,300)
			locked, err := storage.GetTokenAccountBalanceNoController(ctx, mu, lpTokenAddress, codec.EmptyAddress)
			require.NoError(err)
			require.Equal(uint64(694_667), locked)
		},
	}
	test.Run(ctx, t)

	// The curve never reopens
	closed := chaintest.ActionTest{
		Name: "Migrated curves reject further buys",
		Action: &Buy{
			TokenAddress: tokenAddress,
			SettlementIn: 1_000_000,
		},
		ExpectedErr: ErrOutputCurveMigrated,
		State:       store,
		Actor:       actor,
	}
	closed.Run(ctx, t)
}
