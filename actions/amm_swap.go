// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/amm"
	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/storage"
)

var (
	_ codec.Typed  = (*AmmSwapResult)(nil)
	_ chain.Action = (*AmmSwap)(nil)
)

// AmmSwap trades against a migrated token's pool. The swap fee stays in the
// pool reserves, growing the locked liquidity.
type AmmSwap struct {
	TokenAddress codec.Address `serialize:"true" json:"tokenAddress"`

	AmountIn uint64 `serialize:"true" json:"amountIn"`

	MinAmountOut uint64 `serialize:"true" json:"minAmountOut"`

	// SettlementIn spends native settlement for tokens; otherwise tokens
	// are spent for native settlement.
	SettlementIn bool `serialize:"true" json:"settlementIn"`
}

func (*AmmSwap) GetTypeID() uint8 {
	return consts.AmmSwapID
}

func (a *AmmSwap) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	poolAddress := storage.PoolAddress(a.TokenAddress)
	return state.Keys{
		string(storage.AmmPoolKey(poolAddress)):                             state.All,
		string(storage.BalanceKey(actor)):                                   state.All,
		string(storage.BalanceKey(poolAddress)):                             state.All,
		string(storage.TokenAccountBalanceKey(a.TokenAddress, actor)):       state.All,
		string(storage.TokenAccountBalanceKey(a.TokenAddress, poolAddress)): state.All,
	}
}

func (a *AmmSwap) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if a.AmountIn == 0 {
		return nil, ErrOutputValueZero
	}

	poolAddress := storage.PoolAddress(a.TokenAddress)
	tokenAddress, reserveToken, reserveSettlement, fee, lpTokenAddress, err := storage.GetAmmPoolNoController(ctx, mu, poolAddress)
	if err != nil {
		return nil, ErrOutputPoolDoesNotExist
	}

	var amountOut uint64
	if a.SettlementIn {
		amountOut, err = amm.SwapOutput(reserveSettlement, reserveToken, a.AmountIn, fee)
		if err != nil {
			return nil, err
		}
		if amountOut < a.MinAmountOut {
			return nil, ErrOutputSlippageExceeded
		}
		if _, err := storage.SubBalance(ctx, mu, actor, a.AmountIn); err != nil {
			return nil, err
		}
		if _, err := storage.AddBalance(ctx, mu, poolAddress, a.AmountIn); err != nil {
			return nil, err
		}
		if err := storage.TransferToken(ctx, mu, tokenAddress, poolAddress, actor, amountOut); err != nil {
			return nil, err
		}
		reserveSettlement += a.AmountIn
		reserveToken -= amountOut
	} else {
		amountOut, err = amm.SwapOutput(reserveToken, reserveSettlement, a.AmountIn, fee)
		if err != nil {
			return nil, err
		}
		if amountOut < a.MinAmountOut {
			return nil, ErrOutputSlippageExceeded
		}
		if err := storage.TransferToken(ctx, mu, tokenAddress, actor, poolAddress, a.AmountIn); err != nil {
			return nil, err
		}
		if _, err := storage.SubBalance(ctx, mu, poolAddress, amountOut); err != nil {
			return nil, err
		}
		if _, err := storage.AddBalance(ctx, mu, actor, amountOut); err != nil {
			return nil, err
		}
		reserveToken += a.AmountIn
		reserveSettlement -= amountOut
	}

	if err := storage.SetAmmPool(
		ctx,
		mu,
		poolAddress,
		tokenAddress,
		reserveToken,
		reserveSettlement,
		fee,
		lpTokenAddress,
	); err != nil {
		return nil, err
	}

	return &AmmSwapResult{AmountOut: amountOut}, nil
}

func (*AmmSwap) ComputeUnits(chain.Rules) uint64 {
	return AmmSwapComputeUnits
}

func (*AmmSwap) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type AmmSwapResult struct {
	AmountOut uint64 `serialize:"true" json:"amountOut"`
}

func (*AmmSwapResult) GetTypeID() uint8 {
	return consts.AmmSwapID
}
