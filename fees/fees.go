// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fees quotes and collects the protocol's fee schedule. Fees are
// always carved out of the traded amount, never added on top, so the amount
// a trader signs is exactly the amount that moves.
package fees

import (
	"context"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/storage"
)

// Ledger is a fee schedule bound to a collector account.
type Ledger struct {
	TradingFeeBps   uint64
	MigrationFeeBps uint64
	ListingFee      uint64
	Collector       codec.Address
}

// Protocol is the schedule applied to every listed token.
var Protocol = Ledger{
	TradingFeeBps:   consts.TradingFeeBps,
	MigrationFeeBps: consts.MigrationFeeBps,
	ListingFee:      consts.ListingFee,
	Collector:       storage.FeeCollectorAddress,
}

// QuoteTradingFee returns the trading fee on [amount], truncating toward
// zero. Overflow is impossible for bps fees on uint64 amounts below
// 2^64/BpsDenominator; trade sizes above that are rejected upstream by
// balance checks long before quoting.
func (l *Ledger) QuoteTradingFee(amount uint64) uint64 {
	return quoteBps(amount, l.TradingFeeBps)
}

// QuoteMigrationFee returns the one-time fee skimmed from the settlement
// reserve at migration.
func (l *Ledger) QuoteMigrationFee(amount uint64) uint64 {
	return quoteBps(amount, l.MigrationFeeBps)
}

func quoteBps(amount uint64, bps uint64) uint64 {
	hi, lo := amount/consts.BpsDenominator, amount%consts.BpsDenominator
	return hi*bps + lo*bps/consts.BpsDenominator
}

// Collect credits [amount] of settlement to the collector.
func (l *Ledger) Collect(
	ctx context.Context,
	mu state.Mutable,
	amount uint64,
) error {
	if amount == 0 {
		return nil
	}
	_, err := storage.AddBalance(ctx, mu, l.Collector, amount)
	return err
}
