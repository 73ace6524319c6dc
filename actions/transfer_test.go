// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/storage"
)

func TestTransfer(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	sender := codectest.NewRandomAddress()
	receiver := codectest.NewRandomAddress()

	store := chaintest.NewInMemoryStore()
	_, err := storage.AddBalance(ctx, store, sender, 1_000)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name:        "Transfer value must be nonzero",
			Action:      &Transfer{To: receiver, Value: 0},
			ExpectedErr: ErrOutputValueZero,
			State:       store,
			Actor:       sender,
		},
		{
			Name: "Memo cannot exceed the size cap",
			Action: &Transfer{
				To:    receiver,
				Value: 1,
				Memo:  []byte(strings.Repeat("m", MaxMemoSize+1)),
			},
			ExpectedErr: ErrOutputMemoTooLarge,
			State:       store,
			Actor:       sender,
		},
		{
			Name:   "Correct transfer moves the balance",
			Action: &Transfer{To: receiver, Value: 250},
			ExpectedOutputs: &TransferResult{
				SenderBalance:   750,
				ReceiverBalance: 250,
			},
			State: store,
			Actor: sender,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				balance, err := storage.GetBalance(ctx, mu, receiver)
				require.NoError(err)
				require.Equal(uint64(250), balance)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
