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

func TestWithdraw(t *testing.T) {
	addr := codectest.NewRandomAddress()
	custody := storage.VaultAddress(addr)

	fundedState := func() state.Mutable {
		store := chaintest.NewInMemoryStore()
		require.NoError(t, storage.SetVault(context.Background(), store, addr, &storage.Vault{
			Amount:       DepositValue,
			UnlockAt:     UnlockTime,
			LockDuration: LockTime,
			GracePeriod:  GraceTime,
			LastActive:   CreateTime,
		}))
		require.NoError(t, storage.SetBalance(context.Background(), store, custody, DepositValue))
		return store
	}

	tests := []chaintest.ActionTest{
		{
			Name:  "Withdraw value must be positive",
			Actor: addr,
			Action: &Withdraw{
				Value: 0,
			},
			State:       chaintest.NewInMemoryStore(),
			Timestamp:   UnlockTime,
			ExpectedErr: ErrOutputValueZero,
		},
		{
			Name:  "Can only withdraw from an existing vault",
			Actor: addr,
			Action: &Withdraw{
				Value: WithdrawValue,
			},
			State:       chaintest.NewInMemoryStore(),
			Timestamp:   UnlockTime,
			ExpectedErr: ErrOutputVaultNotFound,
		},
		{
			Name:  "No withdrawal before the unlock time",
			Actor: addr,
			Action: &Withdraw{
				Value: WithdrawValue,
			},
			State:       fundedState(),
			Timestamp:   UnlockTime - 1,
			ExpectedErr: ErrOutputVaultLocked,
		},
		{
			Name:  "No withdrawal beyond the vault balance",
			Actor: addr,
			Action: &Withdraw{
				Value: DepositValue + 1,
			},
			State:       fundedState(),
			Timestamp:   UnlockTime,
			ExpectedErr: ErrOutputInsufficientFunds,
		},
		{
			Name:  "Correct withdrawals can occur",
			Actor: addr,
			Action: &Withdraw{
				Value: WithdrawValue,
			},
			State:           fundedState(),
			Timestamp:       UnlockTime,
			ExpectedOutputs: &WithdrawResult{VaultBalance: DepositValue - WithdrawValue},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				vault, err := storage.GetVault(ctx, m, addr)
				require.NoError(err)
				require.Equal(DepositValue-WithdrawValue, vault.Amount)
				require.Equal(UnlockTime, vault.LastActive)
				actorBal, err := storage.GetBalance(ctx, m, addr)
				require.NoError(err)
				require.Equal(WithdrawValue, actorBal)
				custodyBal, err := storage.GetBalance(ctx, m, custody)
				require.NoError(err)
				require.Equal(DepositValue-WithdrawValue, custodyBal)
			},
		},
		{
			Name:  "Draining the vault keeps the record",
			Actor: addr,
			Action: &Withdraw{
				Value: DepositValue,
			},
			State:           fundedState(),
			Timestamp:       UnlockTime,
			ExpectedOutputs: &WithdrawResult{VaultBalance: 0},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				vault, err := storage.GetVault(ctx, m, addr)
				require.NoError(err)
				require.Equal(uint64(0), vault.Amount)
				actorBal, err := storage.GetBalance(ctx, m, addr)
				require.NoError(err)
				require.Equal(DepositValue, actorBal)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
