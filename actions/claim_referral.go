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
	"github.com/got-milkbag/launchvm/referral"
	"github.com/got-milkbag/launchvm/storage"
)

var (
	_ codec.Typed  = (*ClaimReferralResult)(nil)
	_ chain.Action = (*ClaimReferral)(nil)
)

// ClaimReferral pays out the actor's full accrued referral rewards from the
// referral vault.
type ClaimReferral struct{}

func (*ClaimReferral) GetTypeID() uint8 {
	return consts.ClaimReferralID
}

func (*ClaimReferral) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.ReferralRewardKey(actor)):                 state.All,
		string(storage.BalanceKey(actor)):                        state.All,
		string(storage.BalanceKey(storage.ReferralVaultAddress)): state.Read | state.Write,
	}
}

func (*ClaimReferral) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	amount, err := referral.Program.Payout(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	return &ClaimReferralResult{Amount: amount}, nil
}

func (*ClaimReferral) ComputeUnits(chain.Rules) uint64 {
	return ClaimReferralComputeUnits
}

func (*ClaimReferral) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type ClaimReferralResult struct {
	Amount uint64 `serialize:"true" json:"amount"`
}

func (*ClaimReferralResult) GetTypeID() uint8 {
	return consts.ClaimReferralID
}
