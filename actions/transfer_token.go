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
	_ codec.Typed  = (*TransferTokenResult)(nil)
	_ chain.Action = (*TransferToken)(nil)
)

// TransferToken moves launched tokens between accounts.
type TransferToken struct {
	To codec.Address `serialize:"true" json:"to"`

	TokenAddress codec.Address `serialize:"true" json:"tokenAddress"`

	Value uint64 `serialize:"true" json:"value"`
}

func (*TransferToken) GetTypeID() uint8 {
	return consts.TransferTokenID
}

func (t *TransferToken) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(t.TokenAddress)):                  state.Read,
		string(storage.TokenAccountBalanceKey(t.TokenAddress, actor)): state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(t.TokenAddress, t.To)):  state.All,
	}
}

func (t *TransferToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if t.Value == 0 {
		return nil, ErrOutputValueZero
	}
	if _, err := mu.GetValue(ctx, storage.TokenInfoKey(t.TokenAddress)); err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}
	balance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, t.TokenAddress, actor)
	if err != nil {
		return nil, err
	}
	if balance < t.Value {
		return nil, ErrOutputInsufficientTokenBalance
	}
	if err := storage.TransferToken(ctx, mu, t.TokenAddress, actor, t.To, t.Value); err != nil {
		return nil, err
	}

	receiverBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, t.TokenAddress, t.To)
	if err != nil {
		return nil, err
	}
	return &TransferTokenResult{
		SenderBalance:   balance - t.Value,
		ReceiverBalance: receiverBalance,
	}, nil
}

func (*TransferToken) ComputeUnits(chain.Rules) uint64 {
	return TransferTokenComputeUnits
}

func (*TransferToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type TransferTokenResult struct {
	SenderBalance   uint64 `serialize:"true" json:"senderBalance"`
	ReceiverBalance uint64 `serialize:"true" json:"receiverBalance"`
}

func (*TransferTokenResult) GetTypeID() uint8 {
	return consts.TransferTokenID
}
