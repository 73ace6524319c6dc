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

	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/referral"
	"github.com/got-milkbag/launchvm/storage"
)

func TestSetReferral(t *testing.T) {
	ctx := context.Background()

	grandparent := codectest.NewRandomAddress()
	parent := codectest.NewRandomAddress()
	child := codectest.NewRandomAddress()

	store := chaintest.NewInMemoryStore()

	tests := []chaintest.ActionTest{
		{
			Name:        "Referrer cannot be empty",
			Action:      &SetReferral{Referrer: codec.EmptyAddress},
			ExpectedErr: ErrOutputReferrerEmpty,
			State:       store,
			Actor:       parent,
		},
		{
			Name:        "Cannot refer yourself",
			Action:      &SetReferral{Referrer: parent},
			ExpectedErr: ErrOutputReferralSelf,
			State:       store,
			Actor:       parent,
		},
		{
			Name:   "First binding takes no indirect referrer",
			Action: &SetReferral{Referrer: grandparent},
			ExpectedOutputs: &SetReferralResult{
				Referrer:         grandparent,
				IndirectReferrer: codec.EmptyAddress,
			},
			State: store,
			Actor: parent,
		},
		{
			Name:   "Binding snapshots the referrer's own referrer",
			Action: &SetReferral{Referrer: parent},
			ExpectedOutputs: &SetReferralResult{
				Referrer:         parent,
				IndirectReferrer: grandparent,
			},
			State: store,
			Actor: child,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				direct, indirect, err := storage.GetReferrerNoController(ctx, mu, child)
				require.NoError(err)
				require.Equal(parent, direct)
				require.Equal(grandparent, indirect)
			},
		},
		{
			Name:        "Referral binds only once",
			Action:      &SetReferral{Referrer: grandparent},
			ExpectedErr: ErrOutputReferralAlreadySet,
			State:       store,
			Actor:       child,
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestClaimReferral(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	referrer := codectest.NewRandomAddress()

	store := chaintest.NewInMemoryStore()
	req.NoError(referral.Program.Accrue(ctx, store, referrer, consts.MinReferralPayout-1))

	tests := []chaintest.ActionTest{
		{
			Name:        "Dust claims are rejected",
			Action:      &ClaimReferral{},
			ExpectedErr: referral.ErrPayoutBelowMinimum,
			State:       store,
			Actor:       referrer,
		},
	}
	for _, tt := range tests {
		tt.Run(ctx, t)
	}

	req.NoError(referral.Program.Accrue(ctx, store, referrer, 1))

	claim := chaintest.ActionTest{
		Name:            "Claim pays the full accrued amount",
		Action:          &ClaimReferral{},
		ExpectedOutputs: &ClaimReferralResult{Amount: consts.MinReferralPayout},
		State:           store,
		Actor:           referrer,
		Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
			require := require.New(t)

			balance, err := storage.GetBalance(ctx, mu, referrer)
			require.NoError(err)
			require.Equal(consts.MinReferralPayout, balance)

			remaining, err := storage.GetReferralRewardNoController(ctx, mu, referrer)
			require.NoError(err)
			require.Zero(remaining)
		},
	}
	claim.Run(ctx, t)
}

func TestSetReferencePrice(t *testing.T) {
	ctx := context.Background()

	store := chaintest.NewInMemoryStore()

	tests := []chaintest.ActionTest{
		{
			Name:        "Only the feed account can post prices",
			Action:      &SetReferencePrice{Price: 6_000_000},
			ExpectedErr: ErrOutputUnauthorizedFeed,
			State:       store,
			Actor:       codectest.NewRandomAddress(),
		},
		{
			Name:        "Posted price cannot be zero",
			Action:      &SetReferencePrice{Price: 0},
			ExpectedErr: ErrOutputPriceZero,
			State:       store,
			Actor:       storage.FeedAddress,
		},
		{
			Name:            "Feed posts a new reference price",
			Action:          &SetReferencePrice{Price: 6_000_000},
			ExpectedOutputs: &SetReferencePriceResult{Price: 6_000_000},
			State:           store,
			Actor:           storage.FeedAddress,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				price, err := storage.GetReferencePriceNoController(ctx, mu)
				require.NoError(err)
				require.Equal(uint64(6_000_000), price)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
