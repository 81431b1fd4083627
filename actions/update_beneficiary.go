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

var _ chain.Action = (*UpdateBeneficiary)(nil)

type UpdateBeneficiary struct {
	// Beneficiary replaces the current nomination. Empty address clears it
	// and disarms the dead-man's-switch.
	Beneficiary codec.Address `serialize:"true" json:"beneficiary"`
}

// GetTypeID implements chain.Action.
func (*UpdateBeneficiary) GetTypeID() uint8 {
	return consts.UpdateBeneficiaryID
}

// StateKeys implements chain.Action.
func (*UpdateBeneficiary) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(actor)): state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*UpdateBeneficiary) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

// Execute implements chain.Action.
func (u *UpdateBeneficiary) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, t int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	vault, err := storage.GetVault(ctx, mu, actor)
	if err != nil {
		return nil, ErrOutputVaultNotFound
	}

	vault.Beneficiary = u.Beneficiary
	if u.Beneficiary != codec.EmptyAddress {
		vault.Status = storage.BeneficiaryActive
	} else {
		vault.Status = storage.BeneficiaryInactive
	}
	vault.LastActive = t
	if err := storage.SetVault(ctx, mu, actor, vault); err != nil {
		return nil, err
	}
	return &UpdateBeneficiaryResult{Status: uint8(vault.Status)}, nil
}

// ComputeUnits implements chain.Action.
func (*UpdateBeneficiary) ComputeUnits(chain.Rules) uint64 {
	return UpdateBeneficiaryComputeUnits
}

// ValidRange implements chain.Action.
func (*UpdateBeneficiary) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*UpdateBeneficiaryResult)(nil)

type UpdateBeneficiaryResult struct {
	Status uint8 `serialize:"true" json:"status"`
}

// GetTypeID implements codec.Typed.
func (*UpdateBeneficiaryResult) GetTypeID() uint8 {
	return consts.UpdateBeneficiaryID // Common practice is to use the action ID
}
