// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/vaultvm-labs/vaultvm/consts"
	"github.com/vaultvm-labs/vaultvm/storage"
)

var _ chain.Action = (*CreateVault)(nil)

type CreateVault struct {
	// LockDuration is how long, in ms of chain time, the deposit stays
	// inaccessible to the actor.
	LockDuration int64 `serialize:"true" json:"lockDuration"`

	// Beneficiary may claim the remaining balance once eligible. Empty
	// address means no dead-man's-switch.
	Beneficiary codec.Address `serialize:"true" json:"beneficiary"`

	// GracePeriod is both the post-unlock claim delay and the owner
	// inactivity threshold.
	GracePeriod int64 `serialize:"true" json:"gracePeriod"`
}

// GetTypeID implements chain.Action.
func (*CreateVault) GetTypeID() uint8 {
	return consts.CreateVaultID
}

// StateKeys implements chain.Action.
func (*CreateVault) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(actor)): state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*CreateVault) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

// Execute implements chain.Action.
func (c *CreateVault) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, t int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if c.LockDuration < storage.MinLockDuration || c.LockDuration > storage.MaxLockDuration {
		return nil, ErrOutputInvalidLockDuration
	}
	if storage.VaultExists(ctx, mu, actor) {
		return nil, ErrOutputVaultExists
	}

	// A grace period below the minimum is corrected, not rejected.
	grace := c.GracePeriod
	if grace < storage.MinGracePeriod {
		grace = storage.DefaultGracePeriod
	}
	status := storage.BeneficiaryInactive
	if c.Beneficiary != codec.EmptyAddress {
		status = storage.BeneficiaryActive
	}

	vault := &storage.Vault{
		Amount:       0,
		UnlockAt:     t + c.LockDuration,
		LockDuration: c.LockDuration,
		GracePeriod:  grace,
		LastActive:   t,
		Status:       status,
		Beneficiary:  c.Beneficiary,
		TokenType:    storage.CoinAddress,
	}
	if err := storage.SetVault(ctx, mu, actor, vault); err != nil {
		return nil, err
	}

	return &CreateVaultResult{
		VaultAddress: storage.VaultAddress(actor),
		UnlockAt:     vault.UnlockAt,
	}, nil
}

// ComputeUnits implements chain.Action.
func (*CreateVault) ComputeUnits(chain.Rules) uint64 {
	return CreateVaultComputeUnits
}

// ValidRange implements chain.Action.
func (*CreateVault) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*CreateVaultResult)(nil)

type CreateVaultResult struct {
	// VaultAddress is the custody account holding the vault's funds.
	VaultAddress codec.Address `serialize:"true" json:"vault_address"`
	UnlockAt     int64         `serialize:"true" json:"unlock_at"`
}

// GetTypeID implements codec.Typed.
func (*CreateVaultResult) GetTypeID() uint8 {
	return consts.CreateVaultID // Common practice is to use the action ID
}
