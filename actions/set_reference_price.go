// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/storage"
)

var (
	_ codec.Typed  = (*SetReferencePriceResult)(nil)
	_ chain.Action = (*SetReferencePrice)(nil)
)

// SetReferencePrice posts the native coin's reference price in micro-USD.
// Only migration thresholds of future launches read it; existing curves keep
// the threshold they were registered with.
type SetReferencePrice struct {
	Price uint64 `serialize:"true" json:"price"`
}

func (*SetReferencePrice) GetTypeID() uint8 {
	return consts.SetReferencePriceID
}

func (*SetReferencePrice) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.ReferencePriceKey()): state.All,
	}
}

func (s *SetReferencePrice) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if actor != storage.FeedAddress {
		return nil, ErrOutputUnauthorizedFeed
	}
	if s.Price == 0 {
		return nil, ErrOutputPriceZero
	}
	if err := storage.SetReferencePrice(ctx, mu, s.Price); err != nil {
		return nil, err
	}
	return &SetReferencePriceResult{Price: s.Price}, nil
}

func (*SetReferencePrice) ComputeUnits(chain.Rules) uint64 {
	return SetReferencePriceComputeUnits
}

func (*SetReferencePrice) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type SetReferencePriceResult struct {
	Price uint64 `serialize:"true" json:"price"`
}

func (*SetReferencePriceResult) GetTypeID() uint8 {
	return consts.SetReferencePriceID
}
