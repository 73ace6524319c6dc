// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// Curve status values. The transition Active -> Migrated is one-way; a
// migrated token can never trade on the curve again.
const (
	CurveStatusActive uint8 = iota
	CurveStatusMigrated
)

// CurveKey returns the state key of the CurveState record for
// [tokenAddress]. One record exists per listed token, created exactly once
// at launch and owned exclusively by the curve vault actions.
func CurveKey(tokenAddress codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = curvePrefix
	copy(k[1:1+codec.AddressLen], tokenAddress[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], CurveChunks)
	return k
}

// SetCurve persists the CurveState record:
// shapeID + status + tokenReserve + settlementReserve + virtualConstant +
// migrationThreshold + lastPrice + lastInversePrice.
//
// [virtualConstant] and [migrationThreshold] are fixed at registration and
// must never change afterwards; [lastPrice]/[lastInversePrice] are advisory
// caches for market-cap readers and never gate correctness.
func SetCurve(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	shapeID uint8,
	status uint8,
	tokenReserve uint64,
	settlementReserve uint64,
	virtualConstant uint64,
	migrationThreshold uint64,
	lastPrice uint64,
	lastInversePrice uint64,
) error {
	k := CurveKey(tokenAddress)
	v := make([]byte, 2*hconsts.ByteLen+6*hconsts.Uint64Len)
	v[0] = shapeID
	v[1] = status
	binary.BigEndian.PutUint64(v[2:], tokenReserve)
	binary.BigEndian.PutUint64(v[2+hconsts.Uint64Len:], settlementReserve)
	binary.BigEndian.PutUint64(v[2+2*hconsts.Uint64Len:], virtualConstant)
	binary.BigEndian.PutUint64(v[2+3*hconsts.Uint64Len:], migrationThreshold)
	binary.BigEndian.PutUint64(v[2+4*hconsts.Uint64Len:], lastPrice)
	binary.BigEndian.PutUint64(v[2+5*hconsts.Uint64Len:], lastInversePrice)
	return mu.Insert(ctx, k, v)
}

func GetCurveNoController(
	ctx context.Context,
	im state.Immutable,
	tokenAddress codec.Address,
) (uint8, uint8, uint64, uint64, uint64, uint64, uint64, uint64, error) {
	k := CurveKey(tokenAddress)
	v, err := im.GetValue(ctx, k)
	if err != nil {
		return 0, 0, 0, 0, 0, 0, 0, 0, err
	}
	return innerGetCurve(v)
}

// Used to serve RPC queries
func GetCurveFromState(
	ctx context.Context,
	f ReadState,
	tokenAddress codec.Address,
) (uint8, uint8, uint64, uint64, uint64, uint64, uint64, uint64, error) {
	k := CurveKey(tokenAddress)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] != nil {
		return 0, 0, 0, 0, 0, 0, 0, 0, errs[0]
	}
	return innerGetCurve(values[0])
}

func innerGetCurve(
	v []byte,
) (uint8, uint8, uint64, uint64, uint64, uint64, uint64, uint64, error) {
	shapeID := v[0]
	status := v[1]
	tokenReserve := binary.BigEndian.Uint64(v[2:])
	settlementReserve := binary.BigEndian.Uint64(v[2+hconsts.Uint64Len:])
	virtualConstant := binary.BigEndian.Uint64(v[2+2*hconsts.Uint64Len:])
	migrationThreshold := binary.BigEndian.Uint64(v[2+3*hconsts.Uint64Len:])
	lastPrice := binary.BigEndian.Uint64(v[2+4*hconsts.Uint64Len:])
	lastInversePrice := binary.BigEndian.Uint64(v[2+5*hconsts.Uint64Len:])
	return shapeID, status, tokenReserve, settlementReserve, virtualConstant, migrationThreshold, lastPrice, lastInversePrice, nil
}
