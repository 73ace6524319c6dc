// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/storage"
)

func TestTransferToken(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	sender := codectest.NewRandomAddress()
	receiver := codectest.NewRandomAddress()
	tokenAddress := codectest.NewRandomAddress()

	store := chaintest.NewInMemoryStore()

	tests := []chaintest.ActionTest{
		{
			Name: "Can only transfer existing tokens",
			Action: &TransferToken{
				To:           receiver,
				TokenAddress: tokenAddress,
				Value:        100,
			},
			ExpectedErr: ErrOutputTokenDoesNotExist,
			State:       store,
			Actor:       sender,
		},
		{
			Name: "Transfer value must be greater than 0",
			Action: &TransferToken{
				To:           receiver,
				TokenAddress: tokenAddress,
				Value:        0,
			},
			ExpectedErr: ErrOutputValueZero,
			State:       store,
			Actor:       sender,
		},
	}
	for _, tt := range tests {
		tt.Run(ctx, t)
	}

	req.NoError(storage.SetTokenInfo(ctx, store, tokenAddress, []byte(TokenOneName), []byte(TokenOneSymbol), []byte(TokenOneMetadata), 1_000, sender))
	req.NoError(storage.SetTokenAccountBalance(ctx, store, tokenAddress, sender, 1_000))

	tests = []chaintest.ActionTest{
		{
			Name: "Transfer cannot exceed the sender balance",
			Action: &TransferToken{
				To:           receiver,
				TokenAddress: tokenAddress,
				Value:        1_001,
			},
			ExpectedErr: ErrOutputInsufficientTokenBalance,
			State:       store,
			Actor:       sender,
		},
		{
			Name: "Correct transfer moves the balance",
			Action: &TransferToken{
				To:           receiver,
				TokenAddress: tokenAddress,
				Value:        250,
			},
			ExpectedOutputs: &TransferTokenResult{
				SenderBalance:   750,
				ReceiverBalance: 250,
			},
			State: store,
			Actor: sender,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				balance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenAddress, receiver)
				require.NoError(err)
				require.Equal(uint64(250), balance)
			},
		},
	}
	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
