// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package referral implements the two-tier referral program. Referral
// rewards are carved out of the protocol trading fee, escrowed in the
// referral vault, and paid out on demand once they clear the dust floor.
package referral

import (
	"context"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/storage"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Ledger is a referral schedule bound to an escrow vault.
type Ledger struct {
	DirectBps   uint64
	IndirectBps uint64
	MinPayout   uint64
	Vault       codec.Address
}

// Program is the schedule applied to every curve trade.
var Program = Ledger{
	DirectBps:   consts.DirectReferralBps,
	IndirectBps: consts.IndirectReferralBps,
	MinPayout:   consts.MinReferralPayout,
	Vault:       storage.ReferralVaultAddress,
}

// QuoteShares splits [tradingFee] into the direct and indirect referral
// shares. Absent referrers forfeit their share to the protocol; the two
// shares can never exceed the fee they are carved from.
func (l *Ledger) QuoteShares(
	hasDirect bool,
	hasIndirect bool,
	tradingFee uint64,
) (uint64, uint64) {
	var direct, indirect uint64
	if hasDirect {
		direct = quoteBps(tradingFee, l.DirectBps)
	}
	if hasIndirect {
		indirect = quoteBps(tradingFee, l.IndirectBps)
	}
	return direct, indirect
}

func quoteBps(amount uint64, bps uint64) uint64 {
	hi, lo := amount/consts.BpsDenominator, amount%consts.BpsDenominator
	return hi*bps + lo*bps/consts.BpsDenominator
}

// Accrue escrows [amount] for [referrer]: the settlement moves into the
// vault and the referrer's reward record grows by the same amount.
func (l *Ledger) Accrue(
	ctx context.Context,
	mu state.Mutable,
	referrer codec.Address,
	amount uint64,
) error {
	if amount == 0 {
		return nil
	}
	if _, err := storage.AddBalance(ctx, mu, l.Vault, amount); err != nil {
		return err
	}
	accrued, err := storage.GetReferralRewardNoController(ctx, mu, referrer)
	if err != nil {
		return err
	}
	total, err := smath.Add(accrued, amount)
	if err != nil {
		return err
	}
	return storage.SetReferralReward(ctx, mu, referrer, total)
}

// Payout releases the full accrued reward of [referrer] from the vault.
// Returns the amount paid; claims below the dust floor are rejected.
func (l *Ledger) Payout(
	ctx context.Context,
	mu state.Mutable,
	referrer codec.Address,
) (uint64, error) {
	accrued, err := storage.GetReferralRewardNoController(ctx, mu, referrer)
	if err != nil {
		return 0, err
	}
	if accrued < l.MinPayout {
		return 0, ErrPayoutBelowMinimum
	}
	if err := storage.SetReferralReward(ctx, mu, referrer, 0); err != nil {
		return 0, err
	}
	if _, err := storage.SubBalance(ctx, mu, l.Vault, accrued); err != nil {
		return 0, err
	}
	if _, err := storage.AddBalance(ctx, mu, referrer, accrued); err != nil {
		return 0, err
	}
	return accrued, nil
}
