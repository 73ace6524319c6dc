// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/hypersdk/api/indexer"
	"github.com/ava-labs/hypersdk/api/jsonrpc"
	"github.com/ava-labs/hypersdk/api/ws"
	"github.com/ava-labs/hypersdk/auth"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/extension/externalsubscriber"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/vm"

	"github.com/got-milkbag/launchvm/actions"
	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/storage"
)

var (
	ActionParser *codec.TypeParser[chain.Action]
	AuthParser   *codec.TypeParser[chain.Auth]
	OutputParser *codec.TypeParser[codec.Typed]
)

// Setup types
func init() {
	ActionParser = codec.NewTypeParser[chain.Action]()
	AuthParser = codec.NewTypeParser[chain.Auth]()
	OutputParser = codec.NewTypeParser[codec.Typed]()

	errs := &wrappers.Errs{}
	errs.Add(
		// Native coin
		ActionParser.Register(&actions.Transfer{}, nil),

		// Launch and curve trading
		ActionParser.Register(&actions.LaunchToken{}, nil),
		ActionParser.Register(&actions.Buy{}, nil),
		ActionParser.Register(&actions.Sell{}, nil),
		ActionParser.Register(&actions.CurveQuote{}, nil),
		ActionParser.Register(&actions.TransferToken{}, nil),

		// Referral program
		ActionParser.Register(&actions.SetReferral{}, nil),
		ActionParser.Register(&actions.ClaimReferral{}, nil),

		// Post-migration AMM
		ActionParser.Register(&actions.AmmSwap{}, nil),

		// Price feed
		ActionParser.Register(&actions.SetReferencePrice{}, nil),

		AuthParser.Register(&auth.ED25519{}, auth.UnmarshalED25519),
		AuthParser.Register(&auth.SECP256R1{}, auth.UnmarshalSECP256R1),
		AuthParser.Register(&auth.BLS{}, auth.UnmarshalBLS),

		OutputParser.Register(&actions.TransferResult{}, nil),
		OutputParser.Register(&actions.LaunchTokenResult{}, nil),
		OutputParser.Register(&actions.BuyResult{}, nil),
		OutputParser.Register(&actions.SellResult{}, nil),
		OutputParser.Register(&actions.CurveQuoteResult{}, nil),
		OutputParser.Register(&actions.TransferTokenResult{}, nil),
		OutputParser.Register(&actions.SetReferralResult{}, nil),
		OutputParser.Register(&actions.ClaimReferralResult{}, nil),
		OutputParser.Register(&actions.AmmSwapResult{}, nil),
		OutputParser.Register(&actions.SetReferencePriceResult{}, nil),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// New returns a VM with the indexer, websocket, rpc, and external subscriber apis enabled.
func New(options ...vm.Option) (*vm.VM, error) {
	opts := append([]vm.Option{
		indexer.With(),
		ws.With(),
		jsonrpc.With(),
		With(), // Add launch API
		externalsubscriber.With(),
	}, options...)

	return NewWithOptions(opts...)
}

// NewWithOptions returns a VM with the specified options
func NewWithOptions(options ...vm.Option) (*vm.VM, error) {
	return vm.New(
		consts.Version,
		genesis.DefaultGenesisFactory{},
		&storage.StateManager{},
		ActionParser,
		AuthParser,
		OutputParser,
		auth.Engines(),
		options...,
	)
}
