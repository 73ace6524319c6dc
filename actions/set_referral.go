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
	_ codec.Typed  = (*SetReferralResult)(nil)
	_ chain.Action = (*SetReferral)(nil)
)

// SetReferral binds the actor to a referrer, once. The referrer's own
// referrer at bind time is snapshotted as the actor's indirect referrer;
// the chain is never walked at trade time.
type SetReferral struct {
	Referrer codec.Address `serialize:"true" json:"referrer"`
}

func (*SetReferral) GetTypeID() uint8 {
	return consts.SetReferralID
}

func (s *SetReferral) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.ReferrerKey(actor)):      state.All,
		string(storage.ReferrerKey(s.Referrer)): state.Read,
	}
}

func (s *SetReferral) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if s.Referrer == codec.EmptyAddress {
		return nil, ErrOutputReferrerEmpty
	}
	if s.Referrer == actor {
		return nil, ErrOutputReferralSelf
	}

	direct, _, err := storage.GetReferrerNoController(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	if direct != codec.EmptyAddress {
		return nil, ErrOutputReferralAlreadySet
	}

	indirect, _, err := storage.GetReferrerNoController(ctx, mu, s.Referrer)
	if err != nil {
		return nil, err
	}
	// A two-account cycle would route the indirect share back to the actor
	if indirect == actor {
		indirect = codec.EmptyAddress
	}

	if err := storage.SetReferrer(ctx, mu, actor, s.Referrer, indirect); err != nil {
		return nil, err
	}

	return &SetReferralResult{
		Referrer:         s.Referrer,
		IndirectReferrer: indirect,
	}, nil
}

func (*SetReferral) ComputeUnits(chain.Rules) uint64 {
	return SetReferralComputeUnits
}

func (*SetReferral) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type SetReferralResult struct {
	Referrer         codec.Address `serialize:"true" json:"referrer"`
	IndirectReferrer codec.Address `serialize:"true" json:"indirectReferrer"`
}

func (*SetReferralResult) GetTypeID() uint8 {
	return consts.SetReferralID
}
