// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// ReferrerKey returns the key of a trader's referral record: the direct
// referrer and the one-hop indirect referrer, both captured when the
// referral is bound and immutable afterwards.
func ReferrerKey(trader codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = referrerPrefix
	copy(k[1:1+codec.AddressLen], trader[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], ReferrerChunks)
	return k
}

func SetReferrer(
	ctx context.Context,
	mu state.Mutable,
	trader codec.Address,
	direct codec.Address,
	indirect codec.Address,
) error {
	k := ReferrerKey(trader)
	v := make([]byte, 2*codec.AddressLen)
	copy(v, direct[:])
	copy(v[codec.AddressLen:], indirect[:])
	return mu.Insert(ctx, k, v)
}

// GetReferrerNoController returns the direct and indirect referrers of
// [trader]. Missing records are returned as empty addresses, not errors.
func GetReferrerNoController(
	ctx context.Context,
	im state.Immutable,
	trader codec.Address,
) (codec.Address, codec.Address, error) {
	k := ReferrerKey(trader)
	v, err := im.GetValue(ctx, k)
	if err == database.ErrNotFound {
		return codec.EmptyAddress, codec.EmptyAddress, nil
	}
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, err
	}
	direct := codec.Address(v[:codec.AddressLen])
	indirect := codec.Address(v[codec.AddressLen:])
	return direct, indirect, nil
}

// Used to serve RPC queries
func GetReferrerFromState(
	ctx context.Context,
	f ReadState,
	trader codec.Address,
) (codec.Address, codec.Address, error) {
	k := ReferrerKey(trader)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] == database.ErrNotFound {
		return codec.EmptyAddress, codec.EmptyAddress, nil
	}
	if errs[0] != nil {
		return codec.EmptyAddress, codec.EmptyAddress, errs[0]
	}
	direct := codec.Address(values[0][:codec.AddressLen])
	indirect := codec.Address(values[0][codec.AddressLen:])
	return direct, indirect, nil
}

// ReferralRewardKey returns the key of a referrer's accrued, unclaimed
// rewards in settlement units. The value is escrowed in the referral vault
// until claimed.
func ReferralRewardKey(referrer codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = referralRewardPrefix
	copy(k[1:1+codec.AddressLen], referrer[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], ReferralRewardChunks)
	return k
}

func SetReferralReward(
	ctx context.Context,
	mu state.Mutable,
	referrer codec.Address,
	amount uint64,
) error {
	k := ReferralRewardKey(referrer)
	v := make([]byte, hconsts.Uint64Len)
	binary.BigEndian.PutUint64(v, amount)
	return mu.Insert(ctx, k, v)
}

func GetReferralRewardNoController(
	ctx context.Context,
	im state.Immutable,
	referrer codec.Address,
) (uint64, error) {
	k := ReferralRewardKey(referrer)
	v, err := im.GetValue(ctx, k)
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

// Used to serve RPC queries
func GetReferralRewardFromState(
	ctx context.Context,
	f ReadState,
	referrer codec.Address,
) (uint64, error) {
	k := ReferralRewardKey(referrer)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] == database.ErrNotFound {
		return 0, nil
	}
	if errs[0] != nil {
		return 0, errs[0]
	}
	return binary.BigEndian.Uint64(values[0]), nil
}
