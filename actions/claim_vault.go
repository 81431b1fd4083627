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

var _ chain.Action = (*ClaimVault)(nil)

// ClaimVault hands the entire remaining balance of [Owner]'s vault to the
// nominated beneficiary and deletes the record. One-shot and irreversible;
// there is no partial claim.
type ClaimVault struct {
	// Owner of the vault being claimed.
	Owner codec.Address `serialize:"true" json:"owner"`
}

// GetTypeID implements chain.Action.
func (*ClaimVault) GetTypeID() uint8 {
	return consts.ClaimVaultID
}

// StateKeys implements chain.Action.
func (c *ClaimVault) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(c.Owner)):                         state.All,
		string(storage.BalanceKey(storage.VaultAddress(c.Owner))): state.All,
		string(storage.BalanceKey(actor)):                         state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*ClaimVault) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks, storage.BalanceChunks, storage.BalanceChunks}
}

// Execute implements chain.Action.
func (c *ClaimVault) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, t int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	vault, err := storage.GetVault(ctx, mu, c.Owner)
	if err != nil {
		return nil, ErrOutputVaultNotFound
	}
	if !vault.HasBeneficiary() {
		return nil, ErrOutputNoBeneficiary
	}
	if vault.Beneficiary != actor {
		return nil, ErrOutputNotBeneficiary
	}
	if vault.Status != storage.BeneficiaryActive {
		return nil, ErrOutputBeneficiaryNotActive
	}
	// Eligible either a full grace window past unlock, or after the owner
	// has been silent for a full grace window (the dead-man's-switch).
	if t < vault.UnlockAt+vault.GracePeriod && t-vault.LastActive < vault.GracePeriod {
		return nil, ErrOutputVaultLocked
	}

	// An empty vault is still claimable; the record is deleted either way.
	if vault.Amount > 0 {
		if err := storage.SubBalance(ctx, mu, storage.VaultAddress(c.Owner), vault.Amount); err != nil {
			return nil, err
		}
		if err := storage.AddBalance(ctx, mu, actor, vault.Amount, true); err != nil {
			return nil, err
		}
	}
	if err := storage.DeleteVault(ctx, mu, c.Owner); err != nil {
		return nil, err
	}
	return &ClaimVaultResult{ClaimedAmount: vault.Amount}, nil
}

// ComputeUnits implements chain.Action.
func (*ClaimVault) ComputeUnits(chain.Rules) uint64 {
	return ClaimVaultComputeUnits
}

// ValidRange implements chain.Action.
func (*ClaimVault) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*ClaimVaultResult)(nil)

type ClaimVaultResult struct {
	ClaimedAmount uint64 `serialize:"true" json:"claimed_amount"`
}

// GetTypeID implements codec.Typed.
func (*ClaimVaultResult) GetTypeID() uint8 {
	return consts.ClaimVaultID // Common practice is to use the action ID
}
