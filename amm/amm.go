// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package amm hosts the constant-product pools that receive curve liquidity
// at migration. Pools follow Uniswap V2 conventions: x*y=k reserves, a
// fee-adjusted input multiplier, and geometric-mean liquidity receipts.
package amm

import (
	"context"
	"math/big"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/storage"
)

// CreatePoolAndSeed creates the pool for [tokenAddress], moves
// [tokenAmount] of the token and [settlementAmount] of native settlement
// from [from] into pool custody, and mints the liquidity receipt to
// [codec.EmptyAddress] so the seed liquidity is locked forever.
//
// The pool record doubles as the migration sentinel: if it already exists
// the call fails loudly instead of overwriting it.
func CreatePoolAndSeed(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	from codec.Address,
	tokenAmount uint64,
	settlementAmount uint64,
) (codec.Address, codec.Address, uint64, error) {
	if tokenAmount == 0 || settlementAmount == 0 {
		return codec.EmptyAddress, codec.EmptyAddress, 0, ErrEmptySeed
	}
	poolAddress := storage.PoolAddress(tokenAddress)
	_, err := mu.GetValue(ctx, storage.AmmPoolKey(poolAddress))
	if err == nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, ErrPoolAlreadyExists
	}
	if err != database.ErrNotFound {
		return codec.EmptyAddress, codec.EmptyAddress, 0, err
	}

	// Move the seed into pool custody
	if err := storage.TransferToken(ctx, mu, tokenAddress, from, poolAddress, tokenAmount); err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, err
	}
	if _, err := storage.SubBalance(ctx, mu, from, settlementAmount); err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, err
	}
	if _, err := storage.AddBalance(ctx, mu, poolAddress, settlementAmount); err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, err
	}

	// Lock the receipt by minting it to the empty address
	lpTokenAddress := storage.LPTokenAddress(poolAddress)
	lpAmount := liquidity(tokenAmount, settlementAmount)
	if err := storage.SetTokenInfo(
		ctx,
		mu,
		lpTokenAddress,
		[]byte(storage.LPTokenName),
		[]byte(storage.LPTokenSymbol),
		[]byte(storage.LPTokenMetadata),
		lpAmount,
		poolAddress,
	); err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, err
	}
	if err := storage.SetTokenAccountBalance(ctx, mu, lpTokenAddress, codec.EmptyAddress, lpAmount); err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, err
	}

	if err := storage.SetAmmPool(
		ctx,
		mu,
		poolAddress,
		tokenAddress,
		tokenAmount,
		settlementAmount,
		consts.AmmSwapFeeNum,
		lpTokenAddress,
	); err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, err
	}
	return poolAddress, lpTokenAddress, lpAmount, nil
}

// liquidity returns floor(sqrt(a*b)), the geometric mean of the seed.
func liquidity(a uint64, b uint64) uint64 {
	product := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	root := product.Sqrt(product)
	// sqrt of a 128-bit product always fits
	return root.Uint64()
}

// SwapOutput quotes a constant-product swap with [feeNum]/1000 of the input
// credited to the pool. Pure function; the caller updates the reserves.
func SwapOutput(
	reserveIn uint64,
	reserveOut uint64,
	amountIn uint64,
	feeNum uint64,
) (uint64, error) {
	if amountIn == 0 {
		return 0, ErrSwapAmountZero
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrInvalidPoolReserves
	}
	inWithFee := new(big.Int).Mul(
		new(big.Int).SetUint64(amountIn),
		new(big.Int).SetUint64(feeNum),
	)
	num := new(big.Int).Mul(inWithFee, new(big.Int).SetUint64(reserveOut))
	den := new(big.Int).Mul(
		new(big.Int).SetUint64(reserveIn),
		new(big.Int).SetUint64(1000),
	)
	den.Add(den, inWithFee)
	out := num.Quo(num, den)
	// out < reserveOut, so it always fits
	return out.Uint64(), nil
}
