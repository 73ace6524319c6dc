// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/utils"

	"github.com/got-milkbag/launchvm/consts"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// PoolAddress derives the AMM pool address of a migrated token. Each token
// migrates at most once, so a single deterministic pool per token suffices.
func PoolAddress(tokenAddress codec.Address) codec.Address {
	return codec.CreateAddress(consts.AMMPOOLID, utils.ToID(tokenAddress[:]))
}

// LPTokenAddress derives the address of the liquidity receipt minted when a
// pool is seeded.
func LPTokenAddress(poolAddress codec.Address) codec.Address {
	return codec.CreateAddress(consts.LPTOKENID, utils.ToID(poolAddress[:]))
}

func AmmPoolKey(poolAddress codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = ammPoolPrefix
	copy(k[1:1+codec.AddressLen], poolAddress[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], AmmPoolChunks)
	return k
}

// SetAmmPool persists the pool record: traded token, token reserve,
// settlement reserve, fee numerator, and the LP receipt token.
func SetAmmPool(
	ctx context.Context,
	mu state.Mutable,
	poolAddress codec.Address,
	tokenAddress codec.Address,
	reserveToken uint64,
	reserveSettlement uint64,
	fee uint64,
	lpTokenAddress codec.Address,
) error {
	k := AmmPoolKey(poolAddress)
	v := make([]byte, 2*codec.AddressLen+3*hconsts.Uint64Len)
	copy(v, tokenAddress[:])
	binary.BigEndian.PutUint64(v[codec.AddressLen:], reserveToken)
	binary.BigEndian.PutUint64(v[codec.AddressLen+hconsts.Uint64Len:], reserveSettlement)
	binary.BigEndian.PutUint64(v[codec.AddressLen+2*hconsts.Uint64Len:], fee)
	copy(v[codec.AddressLen+3*hconsts.Uint64Len:], lpTokenAddress[:])
	return mu.Insert(ctx, k, v)
}

func GetAmmPoolNoController(
	ctx context.Context,
	im state.Immutable,
	poolAddress codec.Address,
) (codec.Address, uint64, uint64, uint64, codec.Address, error) {
	k := AmmPoolKey(poolAddress)
	v, err := im.GetValue(ctx, k)
	if err != nil {
		return codec.EmptyAddress, 0, 0, 0, codec.EmptyAddress, err
	}
	return innerGetAmmPool(v)
}

// Used to serve RPC queries
func GetAmmPoolFromState(
	ctx context.Context,
	f ReadState,
	poolAddress codec.Address,
) (codec.Address, uint64, uint64, uint64, codec.Address, error) {
	k := AmmPoolKey(poolAddress)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] != nil {
		return codec.EmptyAddress, 0, 0, 0, codec.EmptyAddress, errs[0]
	}
	return innerGetAmmPool(values[0])
}

func innerGetAmmPool(
	v []byte,
) (codec.Address, uint64, uint64, uint64, codec.Address, error) {
	tokenAddress := codec.Address(v[:codec.AddressLen])
	reserveToken := binary.BigEndian.Uint64(v[codec.AddressLen:])
	reserveSettlement := binary.BigEndian.Uint64(v[codec.AddressLen+hconsts.Uint64Len:])
	fee := binary.BigEndian.Uint64(v[codec.AddressLen+2*hconsts.Uint64Len:])
	lpTokenAddress := codec.Address(v[codec.AddressLen+3*hconsts.Uint64Len:])
	return tokenAddress, reserveToken, reserveSettlement, fee, lpTokenAddress, nil
}
