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

	"github.com/vaultvm-labs/vaultvm/storage"
)

func TestTransfer(t *testing.T) {
	addr := codectest.NewRandomAddress()
	to := codectest.NewRandomAddress()

	tests := []chaintest.ActionTest{
		{
			Name:  "Transfer value must be positive",
			Actor: addr,
			Action: &Transfer{
				To:    to,
				Value: 0,
			},
			State:       chaintest.NewInMemoryStore(),
			ExpectedErr: ErrOutputValueZero,
		},
		{
			Name:  "Transfer requires a funded actor",
			Actor: addr,
			Action: &Transfer{
				To:    to,
				Value: TransferValue,
			},
			State:       chaintest.NewInMemoryStore(),
			ExpectedErr: storage.ErrInvalidBalance,
		},
		{
			Name:  "Correct transfers can occur",
			Actor: addr,
			Action: &Transfer{
				To:    to,
				Value: TransferValue,
			},
			State: func() state.Mutable {
				store := chaintest.NewInMemoryStore()
				require.NoError(t, storage.SetBalance(context.Background(), store, addr, InitialBalance))
				return store
			}(),
			ExpectedOutputs: &TransferResult{
				SenderBalance:   InitialBalance - TransferValue,
				ReceiverBalance: TransferValue,
			},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				toBal, err := storage.GetBalance(ctx, m, to)
				require.NoError(err)
				require.Equal(TransferValue, toBal)
				actorBal, err := storage.GetBalance(ctx, m, addr)
				require.NoError(err)
				require.Equal(InitialBalance-TransferValue, actorBal)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
