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
	"github.com/got-milkbag/launchvm/curve"
	"github.com/got-milkbag/launchvm/fees"
	"github.com/got-milkbag/launchvm/storage"
)

var (
	_ codec.Typed  = (*SellResult)(nil)
	_ chain.Action = (*Sell)(nil)
)

// Sell returns tokens to the curve for native settlement. The trading fee
// is carved out of the gross quote; the trader receives the net amount.
// Selling never triggers migration.
type Sell struct {
	TokenAddress codec.Address `serialize:"true" json:"tokenAddress"`

	TokenIn uint64 `serialize:"true" json:"tokenIn"`

	// MinSettlementOut aborts the trade if the net quote moved past this
	// bound.
	MinSettlementOut uint64 `serialize:"true" json:"minSettlementOut"`

	// See Buy for why the referral record is repeated in the action.
	Referrer         codec.Address `serialize:"true" json:"referrer"`
	IndirectReferrer codec.Address `serialize:"true" json:"indirectReferrer"`
}

func (*Sell) GetTypeID() uint8 {
	return consts.SellID
}

func (s *Sell) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	keys := state.Keys{
		string(storage.CurveKey(s.TokenAddress)):                                     state.All,
		string(storage.ReferrerKey(actor)):                                           state.Read,
		string(storage.BalanceKey(actor)):                                            state.Read | state.Write,
		string(storage.BalanceKey(storage.VaultAddress)):                             state.All,
		string(storage.BalanceKey(storage.FeeCollectorAddress)):                      state.All,
		string(storage.BalanceKey(storage.ReferralVaultAddress)):                     state.All,
		string(storage.TokenAccountBalanceKey(s.TokenAddress, actor)):                state.All,
		string(storage.TokenAccountBalanceKey(s.TokenAddress, storage.VaultAddress)): state.All,
	}
	if s.Referrer != codec.EmptyAddress {
		keys[string(storage.ReferralRewardKey(s.Referrer))] = state.All
	}
	if s.IndirectReferrer != codec.EmptyAddress {
		keys[string(storage.ReferralRewardKey(s.IndirectReferrer))] = state.All
	}
	return keys
}

func (s *Sell) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if s.TokenIn == 0 {
		return nil, ErrOutputValueZero
	}

	shapeID, status, tokenReserve, settlementReserve, virtualConstant, migrationThreshold, _, _, err := storage.GetCurveNoController(ctx, mu, s.TokenAddress)
	if err != nil {
		return nil, ErrOutputCurveDoesNotExist
	}
	if status == storage.CurveStatusMigrated {
		return nil, ErrOutputCurveMigrated
	}

	if err := verifyReferrers(ctx, mu, actor, s.Referrer, s.IndirectReferrer); err != nil {
		return nil, err
	}

	model, err := curve.New(shapeID, virtualConstant)
	if err != nil {
		return nil, ErrOutputUnknownCurveShape
	}
	grossOut, err := model.QuoteSell(tokenReserve, settlementReserve, s.TokenIn)
	if err != nil {
		return nil, err
	}
	if grossOut < consts.MinTradeSize {
		return nil, ErrOutputTradeTooSmall
	}
	tradingFee := fees.Protocol.QuoteTradingFee(grossOut)
	netOut := grossOut - tradingFee
	if netOut < s.MinSettlementOut {
		return nil, ErrOutputSlippageExceeded
	}

	if err := storage.TransferToken(ctx, mu, s.TokenAddress, actor, storage.VaultAddress, s.TokenIn); err != nil {
		return nil, err
	}
	if _, err := storage.SubBalance(ctx, mu, storage.VaultAddress, grossOut); err != nil {
		return nil, err
	}
	if _, err := storage.AddBalance(ctx, mu, actor, netOut); err != nil {
		return nil, err
	}
	if err := distributeTradingFee(ctx, mu, tradingFee, s.Referrer, s.IndirectReferrer); err != nil {
		return nil, err
	}

	lastPrice, lastInversePrice := curve.TradePrices(grossOut, s.TokenIn)
	if err := storage.SetCurve(
		ctx,
		mu,
		s.TokenAddress,
		shapeID,
		storage.CurveStatusActive,
		tokenReserve+s.TokenIn,
		settlementReserve-grossOut,
		virtualConstant,
		migrationThreshold,
		lastPrice,
		lastInversePrice,
	); err != nil {
		return nil, err
	}

	return &SellResult{
		SettlementOut: netOut,
		TradingFee:    tradingFee,
	}, nil
}

func (*Sell) ComputeUnits(chain.Rules) uint64 {
	return SellComputeUnits
}

func (*Sell) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type SellResult struct {
	SettlementOut uint64 `serialize:"true" json:"settlementOut"`
	TradingFee    uint64 `serialize:"true" json:"tradingFee"`
}

func (*SellResult) GetTypeID() uint8 {
	return consts.SellID
}
