// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/codec/codectest"
)

func TestVaultRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	owner := codectest.NewRandomAddress()
	beneficiary := codectest.NewRandomAddress()

	vault := &Vault{
		Amount:       1234,
		UnlockAt:     5_000_000,
		LockDuration: MinLockDuration,
		GracePeriod:  DefaultGracePeriod,
		LastActive:   4_000_000,
		Status:       BeneficiaryActive,
		Beneficiary:  beneficiary,
		TokenType:    CoinAddress,
	}

	require.False(VaultExists(ctx, store, owner))
	require.NoError(SetVault(ctx, store, owner, vault))
	require.True(VaultExists(ctx, store, owner))

	got, err := GetVault(ctx, store, owner)
	require.NoError(err)
	require.Equal(vault, got)

	require.NoError(DeleteVault(ctx, store, owner))
	require.False(VaultExists(ctx, store, owner))
}

func TestVaultAddress(t *testing.T) {
	require := require.New(t)

	ownerOne := codectest.NewRandomAddress()
	ownerTwo := codectest.NewRandomAddress()

	require.Equal(VaultAddress(ownerOne), VaultAddress(ownerOne))
	require.NotEqual(VaultAddress(ownerOne), VaultAddress(ownerTwo))
	require.NotEqual(ownerOne, VaultAddress(ownerOne))
}

func TestCanClaim(t *testing.T) {
	beneficiary := codectest.NewRandomAddress()
	stranger := codectest.NewRandomAddress()

	const (
		unlockAt   int64 = 10_000_000
		grace      int64 = 1_000_000
		lastActive int64 = 9_500_000
	)

	base := Vault{
		UnlockAt:    unlockAt,
		GracePeriod: grace,
		LastActive:  lastActive,
		Status:      BeneficiaryActive,
		Beneficiary: beneficiary,
	}

	tests := []struct {
		name    string
		mutate  func(*Vault)
		claimer codec.Address
		t       int64
		want    bool
	}{
		{
			name:    "before unlock and owner live",
			claimer: beneficiary,
			t:       unlockAt - 1,
			want:    false,
		},
		{
			name: "unlocked but grace window open",
			mutate: func(v *Vault) {
				// Keep the owner live so only the post-unlock path decides.
				v.LastActive = unlockAt + grace - 1
			},
			claimer: beneficiary,
			t:       unlockAt + grace - 1,
			want:    false,
		},
		{
			name:    "grace window past unlock elapsed",
			claimer: beneficiary,
			t:       unlockAt + grace,
			want:    true,
		},
		{
			name:    "owner silent for a grace window",
			claimer: beneficiary,
			t:       lastActive + grace,
			want:    true,
		},
		{
			name: "recent ping closes the inactivity path",
			mutate: func(v *Vault) {
				v.LastActive = lastActive + grace
			},
			claimer: beneficiary,
			t:       lastActive + grace,
			want:    false,
		},
		{
			name:    "stranger can never claim",
			claimer: stranger,
			t:       unlockAt + grace,
			want:    false,
		},
		{
			name: "no beneficiary nominated",
			mutate: func(v *Vault) {
				v.Beneficiary = codec.EmptyAddress
				v.Status = BeneficiaryInactive
			},
			claimer: beneficiary,
			t:       unlockAt + grace,
			want:    false,
		},
		{
			name: "inactive nomination",
			mutate: func(v *Vault) {
				v.Status = BeneficiaryInactive
			},
			claimer: beneficiary,
			t:       unlockAt + grace,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := base
			if tt.mutate != nil {
				tt.mutate(&v)
			}
			require.Equal(t, tt.want, CanClaim(&v, tt.claimer, tt.t))
		})
	}
}
