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

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ chain.Action = (*Deposit)(nil)

type Deposit struct {
	// Amount moved from the actor's balance into the vault's custody
	// account.
	Value uint64 `serialize:"true" json:"value"`
}

// GetTypeID implements chain.Action.
func (*Deposit) GetTypeID() uint8 {
	return consts.DepositID
}

// StateKeys implements chain.Action.
func (*Deposit) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(actor)):                         state.Read | state.Write,
		string(storage.BalanceKey(actor)):                       state.Read | state.Write,
		string(storage.BalanceKey(storage.VaultAddress(actor))): state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*Deposit) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks, storage.BalanceChunks, storage.BalanceChunks}
}

// Execute implements chain.Action.
func (d *Deposit) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, t int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if d.Value == 0 {
		return nil, ErrOutputValueZero
	}
	vault, err := storage.GetVault(ctx, mu, actor)
	if err != nil {
		return nil, ErrOutputVaultNotFound
	}

	// Move the coins before touching the record so a failed debit leaves the
	// vault untouched.
	if err := storage.SubBalance(ctx, mu, actor, d.Value); err != nil {
		return nil, err
	}
	if err := storage.AddBalance(ctx, mu, storage.VaultAddress(actor), d.Value, true); err != nil {
		return nil, err
	}

	namount, err := smath.Add(vault.Amount, d.Value)
	if err != nil {
		return nil, err
	}
	vault.Amount = namount
	vault.LastActive = t
	if err := storage.SetVault(ctx, mu, actor, vault); err != nil {
		return nil, err
	}
	return &DepositResult{VaultBalance: vault.Amount}, nil
}

// ComputeUnits implements chain.Action.
func (*Deposit) ComputeUnits(chain.Rules) uint64 {
	return DepositComputeUnits
}

// ValidRange implements chain.Action.
func (*Deposit) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*DepositResult)(nil)

type DepositResult struct {
	VaultBalance uint64 `serialize:"true" json:"vault_balance"`
}

// GetTypeID implements codec.Typed.
func (*DepositResult) GetTypeID() uint8 {
	return consts.DepositID // Common practice is to use the action ID
}
