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
	_ codec.Typed  = (*LaunchTokenResult)(nil)
	_ chain.Action = (*LaunchToken)(nil)
)

// LaunchToken mints a new token's full supply into curve custody and opens
// trading on the chosen curve shape. The launcher pays the flat listing fee
// and receives no tokens; everyone buys from the curve on equal footing.
type LaunchToken struct {
	Name     []byte `serialize:"true" json:"name"`
	Symbol   []byte `serialize:"true" json:"symbol"`
	Metadata []byte `serialize:"true" json:"metadata"`

	// CurveShape selects the pricing model frozen into the curve record.
	CurveShape uint8 `serialize:"true" json:"curveShape"`
}

func (*LaunchToken) GetTypeID() uint8 {
	return consts.LaunchTokenID
}

func (*LaunchToken) StateKeys(actor codec.Address, actionID ids.ID) state.Keys {
	tokenAddress := storage.TokenAddress(actionID)
	return state.Keys{
		string(storage.TokenInfoKey(tokenAddress)):                                      state.All,
		string(storage.TokenAccountBalanceKey(tokenAddress, storage.VaultAddress)):      state.All,
		string(storage.CurveKey(tokenAddress)):                                          state.All,
		string(storage.BalanceKey(actor)):                                               state.Read | state.Write,
		string(storage.BalanceKey(storage.FeeCollectorAddress)):                         state.All,
		string(storage.ReferencePriceKey()):                                             state.Read,
	}
}

func (l *LaunchToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	actionID ids.ID,
) (codec.Typed, error) {
	if len(l.Name) == 0 {
		return nil, ErrOutputTokenNameEmpty
	}
	if len(l.Symbol) == 0 {
		return nil, ErrOutputTokenSymbolEmpty
	}
	if len(l.Metadata) == 0 {
		return nil, ErrOutputTokenMetadataEmpty
	}
	if len(l.Name) > storage.MaxTokenNameSize {
		return nil, ErrOutputTokenNameTooLarge
	}
	if len(l.Symbol) > storage.MaxTokenSymbolSize {
		return nil, ErrOutputTokenSymbolTooLarge
	}
	if len(l.Metadata) > storage.MaxTokenMetadataSize {
		return nil, ErrOutputTokenMetadataTooLarge
	}

	var curveParameter uint64
	switch l.CurveShape {
	case curve.ExponentialID:
		curveParameter = consts.ExponentialVirtualBase
	case curve.LinearID:
		curveParameter = consts.LinearSlope
	default:
		return nil, ErrOutputUnknownCurveShape
	}

	// The address is derived from the action, so a collision means the same
	// action executed twice.
	tokenAddress := storage.TokenAddress(actionID)
	if _, err := mu.GetValue(ctx, storage.TokenInfoKey(tokenAddress)); err == nil {
		return nil, ErrOutputTokenAlreadyExists
	}

	// Listing fee
	if _, err := storage.SubBalance(ctx, mu, actor, fees.Protocol.ListingFee); err != nil {
		return nil, err
	}
	if err := fees.Protocol.Collect(ctx, mu, fees.Protocol.ListingFee); err != nil {
		return nil, err
	}

	// Mint the full supply into curve custody
	if err := storage.SetTokenInfo(ctx, mu, tokenAddress, l.Name, l.Symbol, l.Metadata, consts.LaunchSupply, actor); err != nil {
		return nil, err
	}
	if err := storage.SetTokenAccountBalance(ctx, mu, tokenAddress, storage.VaultAddress, consts.LaunchSupply); err != nil {
		return nil, err
	}

	// The migration threshold is fixed now; later feed updates never move it.
	referencePrice, err := storage.GetReferencePriceNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	migrationThreshold := curve.MigrationThreshold(consts.MigrationTargetUSD, referencePrice)

	if err := storage.SetCurve(
		ctx,
		mu,
		tokenAddress,
		l.CurveShape,
		storage.CurveStatusActive,
		consts.LaunchSupply,
		0,
		curveParameter,
		migrationThreshold,
		0,
		0,
	); err != nil {
		return nil, err
	}

	return &LaunchTokenResult{
		TokenAddress:       tokenAddress,
		MigrationThreshold: migrationThreshold,
	}, nil
}

func (*LaunchToken) ComputeUnits(chain.Rules) uint64 {
	return LaunchTokenComputeUnits
}

func (*LaunchToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type LaunchTokenResult struct {
	TokenAddress       codec.Address `serialize:"true" json:"tokenAddress"`
	MigrationThreshold uint64        `serialize:"true" json:"migrationThreshold"`
}

func (*LaunchTokenResult) GetTypeID() uint8 {
	return consts.LaunchTokenID
}
