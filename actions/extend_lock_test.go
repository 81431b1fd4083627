// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"github.com/vaultvm-labs/vaultvm/storage"
)

func TestExtendLock(t *testing.T) {
	addr := codectest.NewRandomAddress()

	vaultState := func() state.Mutable {
		store := chaintest.NewInMemoryStore()
		require.NoError(t, storage.SetVault(context.Background(), store, addr, &storage.Vault{
			UnlockAt:     UnlockTime,
			LockDuration: LockTime,
			GracePeriod:  GraceTime,
			LastActive:   CreateTime,
		}))
		return store
	}

	tests := []chaintest.ActionTest{
		{
			Name:  "Can only extend an existing vault",
			Actor: addr,
			Action: &ExtendLock{
				Extension: storage.MinLockDuration,
			},
			State:       chaintest.NewInMemoryStore(),
			Timestamp:   CreateTime,
			ExpectedErr: ErrOutputVaultNotFound,
		},
		{
			Name:  "Extension below the minimum is rejected",
			Actor: addr,
			Action: &ExtendLock{
				Extension: storage.MinLockDuration - 1,
			},
			State:       vaultState(),
			Timestamp:   CreateTime,
			ExpectedErr: ErrOutputExtensionTooShort,
		},
		{
			Name:  "Total lock may not exceed the maximum",
			Actor: addr,
			Action: &ExtendLock{
				Extension: storage.MaxLockDuration,
			},
			State:       vaultState(),
			Timestamp:   CreateTime,
			ExpectedErr: ErrOutputInvalidLockDuration,
		},
		{
			Name:  "Extension near the int64 limit cannot wrap the unlock time",
			Actor: addr,
			Action: &ExtendLock{
				Extension: math.MaxInt64 - LockTime + 1,
			},
			State:       vaultState(),
			Timestamp:   CreateTime,
			ExpectedErr: ErrOutputInvalidLockDuration,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				vault, err := storage.GetVault(ctx, m, addr)
				require.NoError(err)
				require.Equal(UnlockTime, vault.UnlockAt)
				require.Equal(LockTime, vault.LockDuration)
			},
		},
		{
			Name:  "Correct extensions can occur",
			Actor: addr,
			Action: &ExtendLock{
				Extension: storage.MinLockDuration,
			},
			State:           vaultState(),
			Timestamp:       CreateTime + 1,
			ExpectedOutputs: &ExtendLockResult{UnlockAt: UnlockTime + storage.MinLockDuration},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				vault, err := storage.GetVault(ctx, m, addr)
				require.NoError(err)
				require.Equal(UnlockTime+storage.MinLockDuration, vault.UnlockAt)
				require.Equal(LockTime+storage.MinLockDuration, vault.LockDuration)
				require.Equal(CreateTime+1, vault.LastActive)
			},
		},
		{
			Name:  "Extension is legal after the unlock time",
			Actor: addr,
			Action: &ExtendLock{
				Extension: storage.MinLockDuration,
			},
			State:           vaultState(),
			Timestamp:       UnlockTime + 1,
			ExpectedOutputs: &ExtendLockResult{UnlockAt: UnlockTime + storage.MinLockDuration},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				vault, err := storage.GetVault(ctx, m, addr)
				require.NoError(err)
				require.Equal(UnlockTime+storage.MinLockDuration, vault.UnlockAt)
				require.Equal(UnlockTime+1, vault.LastActive)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
