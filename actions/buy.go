// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/amm"
	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/curve"
	"github.com/got-milkbag/launchvm/fees"
	"github.com/got-milkbag/launchvm/referral"
	"github.com/got-milkbag/launchvm/storage"
)

var (
	_ codec.Typed  = (*BuyResult)(nil)
	_ chain.Action = (*Buy)(nil)
)

// Buy spends native settlement against a token's curve. The trading fee is
// carved out of the input before quoting, so the curve only ever prices the
// net amount.
//
// If the buy pushes the settlement reserve past the migration threshold the
// whole remaining reserve migrates to a fresh AMM pool inside the same
// execution; there is no partial fill and no second trigger.
type Buy struct {
	TokenAddress codec.Address `serialize:"true" json:"tokenAddress"`

	SettlementIn uint64 `serialize:"true" json:"settlementIn"`

	// MinTokenOut aborts the trade if the quote moved past this bound.
	MinTokenOut uint64 `serialize:"true" json:"minTokenOut"`

	// Referrer and IndirectReferrer must repeat the actor's bound referral
	// record (or stay empty when unbound); state keys have to be known
	// before execution, so the record cannot be discovered on the fly.
	Referrer         codec.Address `serialize:"true" json:"referrer"`
	IndirectReferrer codec.Address `serialize:"true" json:"indirectReferrer"`
}

func (*Buy) GetTypeID() uint8 {
	return consts.BuyID
}

func (b *Buy) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	poolAddress := storage.PoolAddress(b.TokenAddress)
	lpTokenAddress := storage.LPTokenAddress(poolAddress)
	keys := state.Keys{
		string(storage.CurveKey(b.TokenAddress)):                                         state.All,
		string(storage.ReferrerKey(actor)):                                               state.Read,
		string(storage.BalanceKey(actor)):                                                state.Read | state.Write,
		string(storage.BalanceKey(storage.VaultAddress)):                                 state.All,
		string(storage.BalanceKey(storage.FeeCollectorAddress)):                          state.All,
		string(storage.BalanceKey(storage.ReferralVaultAddress)):                         state.All,
		string(storage.TokenAccountBalanceKey(b.TokenAddress, actor)):                    state.All,
		string(storage.TokenAccountBalanceKey(b.TokenAddress, storage.VaultAddress)):     state.All,
		// Touched only when this buy crosses the migration threshold
		string(storage.AmmPoolKey(poolAddress)):                                          state.All,
		string(storage.BalanceKey(poolAddress)):                                          state.All,
		string(storage.TokenAccountBalanceKey(b.TokenAddress, poolAddress)):              state.All,
		string(storage.TokenInfoKey(lpTokenAddress)):                                     state.All,
		string(storage.TokenAccountBalanceKey(lpTokenAddress, codec.EmptyAddress)):       state.All,
	}
	if b.Referrer != codec.EmptyAddress {
		keys[string(storage.ReferralRewardKey(b.Referrer))] = state.All
	}
	if b.IndirectReferrer != codec.EmptyAddress {
		keys[string(storage.ReferralRewardKey(b.IndirectReferrer))] = state.All
	}
	return keys
}

func (b *Buy) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if b.SettlementIn == 0 {
		return nil, ErrOutputValueZero
	}
	if b.SettlementIn < consts.MinTradeSize {
		return nil, ErrOutputTradeTooSmall
	}

	shapeID, status, tokenReserve, settlementReserve, virtualConstant, migrationThreshold, _, _, err := storage.GetCurveNoController(ctx, mu, b.TokenAddress)
	if err != nil {
		return nil, ErrOutputCurveDoesNotExist
	}
	if status == storage.CurveStatusMigrated {
		return nil, ErrOutputCurveMigrated
	}

	if err := verifyReferrers(ctx, mu, actor, b.Referrer, b.IndirectReferrer); err != nil {
		return nil, err
	}

	tradingFee := fees.Protocol.QuoteTradingFee(b.SettlementIn)
	netIn := b.SettlementIn - tradingFee

	model, err := curve.New(shapeID, virtualConstant)
	if err != nil {
		return nil, ErrOutputUnknownCurveShape
	}
	tokenOut, err := model.QuoteBuy(tokenReserve, settlementReserve, netIn)
	if err != nil {
		return nil, err
	}
	if tokenOut < consts.MinTradeSize {
		return nil, ErrOutputTradeTooSmall
	}
	if tokenOut < b.MinTokenOut {
		return nil, ErrOutputSlippageExceeded
	}

	// Settle: the trader pays exactly SettlementIn, no more
	if _, err := storage.SubBalance(ctx, mu, actor, b.SettlementIn); err != nil {
		return nil, err
	}
	if _, err := storage.AddBalance(ctx, mu, storage.VaultAddress, netIn); err != nil {
		return nil, err
	}
	if err := distributeTradingFee(ctx, mu, tradingFee, b.Referrer, b.IndirectReferrer); err != nil {
		return nil, err
	}
	if err := storage.TransferToken(ctx, mu, b.TokenAddress, storage.VaultAddress, actor, tokenOut); err != nil {
		return nil, err
	}

	newTokenReserve := tokenReserve - tokenOut
	newSettlementReserve := settlementReserve + netIn
	lastPrice, lastInversePrice := curve.TradePrices(netIn, tokenOut)

	if newSettlementReserve >= migrationThreshold {
		poolAddress, err := migrate(ctx, mu, b.TokenAddress, newTokenReserve, newSettlementReserve)
		if err != nil {
			return nil, err
		}
		if err := storage.SetCurve(
			ctx,
			mu,
			b.TokenAddress,
			shapeID,
			storage.CurveStatusMigrated,
			0,
			0,
			virtualConstant,
			migrationThreshold,
			lastPrice,
			lastInversePrice,
		); err != nil {
			return nil, err
		}
		return &BuyResult{
			TokenOut:    tokenOut,
			TradingFee:  tradingFee,
			Migrated:    true,
			PoolAddress: poolAddress,
		}, nil
	}

	if err := storage.SetCurve(
		ctx,
		mu,
		b.TokenAddress,
		shapeID,
		storage.CurveStatusActive,
		newTokenReserve,
		newSettlementReserve,
		virtualConstant,
		migrationThreshold,
		lastPrice,
		lastInversePrice,
	); err != nil {
		return nil, err
	}
	return &BuyResult{
		TokenOut:   tokenOut,
		TradingFee: tradingFee,
	}, nil
}

// migrate skims the migration fee from the settlement reserve and seeds the
// AMM pool with everything left. A pool that already exists fails the whole
// buy rather than being overwritten.
func migrate(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	tokenReserve uint64,
	settlementReserve uint64,
) (codec.Address, error) {
	migrationFee := fees.Protocol.QuoteMigrationFee(settlementReserve)
	if _, err := storage.SubBalance(ctx, mu, storage.VaultAddress, migrationFee); err != nil {
		return codec.EmptyAddress, err
	}
	if err := fees.Protocol.Collect(ctx, mu, migrationFee); err != nil {
		return codec.EmptyAddress, err
	}
	poolAddress, _, _, err := amm.CreatePoolAndSeed(
		ctx,
		mu,
		tokenAddress,
		storage.VaultAddress,
		tokenReserve,
		settlementReserve-migrationFee,
	)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return poolAddress, nil
}

// verifyReferrers checks the referrers declared in the action against the
// actor's bound referral record.
func verifyReferrers(
	ctx context.Context,
	mu state.Mutable,
	actor codec.Address,
	declaredDirect codec.Address,
	declaredIndirect codec.Address,
) error {
	direct, indirect, err := storage.GetReferrerNoController(ctx, mu, actor)
	if err != nil {
		return err
	}
	if declaredDirect != direct || declaredIndirect != indirect {
		return ErrOutputReferrerMismatch
	}
	return nil
}

// distributeTradingFee carves the referral shares out of [tradingFee] and
// credits the remainder to the protocol collector.
func distributeTradingFee(
	ctx context.Context,
	mu state.Mutable,
	tradingFee uint64,
	direct codec.Address,
	indirect codec.Address,
) error {
	directShare, indirectShare := referral.Program.QuoteShares(
		direct != codec.EmptyAddress,
		indirect != codec.EmptyAddress,
		tradingFee,
	)
	if err := referral.Program.Accrue(ctx, mu, direct, directShare); err != nil {
		return err
	}
	if err := referral.Program.Accrue(ctx, mu, indirect, indirectShare); err != nil {
		return err
	}
	return fees.Protocol.Collect(ctx, mu, tradingFee-directShare-indirectShare)
}

func (*Buy) ComputeUnits(chain.Rules) uint64 {
	return BuyComputeUnits
}

func (*Buy) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type BuyResult struct {
	TokenOut    uint64        `serialize:"true" json:"tokenOut"`
	TradingFee  uint64        `serialize:"true" json:"tradingFee"`
	Migrated    bool          `serialize:"true" json:"migrated"`
	PoolAddress codec.Address `serialize:"true" json:"poolAddress"`
}

func (*BuyResult) GetTypeID() uint8 {
	return consts.BuyID
}
