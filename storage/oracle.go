// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/consts"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// ReferencePriceKey returns the key of the singleton reference-price record:
// micro-USD per whole native coin, posted by the price feed account.
func ReferencePriceKey() []byte {
	k := make([]byte, 1+hconsts.Uint16Len)
	k[0] = referencePricePrefix
	binary.BigEndian.PutUint16(k[1:], ReferencePriceChunks)
	return k
}

func SetReferencePrice(
	ctx context.Context,
	mu state.Mutable,
	price uint64,
) error {
	k := ReferencePriceKey()
	v := make([]byte, hconsts.Uint64Len)
	binary.BigEndian.PutUint64(v, price)
	return mu.Insert(ctx, k, v)
}

// GetReferencePriceNoController returns the posted reference price, or
// [consts.DefaultReferencePrice] if the feed has never posted one.
func GetReferencePriceNoController(
	ctx context.Context,
	im state.Immutable,
) (uint64, error) {
	k := ReferencePriceKey()
	v, err := im.GetValue(ctx, k)
	if err == database.ErrNotFound {
		return consts.DefaultReferencePrice, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

// Used to serve RPC queries
func GetReferencePriceFromState(
	ctx context.Context,
	f ReadState,
) (uint64, error) {
	k := ReferencePriceKey()
	values, errs := f(ctx, [][]byte{k})
	if errs[0] == database.ErrNotFound {
		return consts.DefaultReferencePrice, nil
	}
	if errs[0] != nil {
		return 0, errs[0]
	}
	return binary.BigEndian.Uint64(values[0]), nil
}
