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

var _ chain.Action = (*Withdraw)(nil)

type Withdraw struct {
	// Amount moved from the vault's custody account back to the actor.
	Value uint64 `serialize:"true" json:"value"`
}

// GetTypeID implements chain.Action.
func (*Withdraw) GetTypeID() uint8 {
	return consts.WithdrawID
}

// StateKeys implements chain.Action.
func (*Withdraw) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(actor)):                         state.Read | state.Write,
		string(storage.BalanceKey(storage.VaultAddress(actor))): state.Read | state.Write,
		string(storage.BalanceKey(actor)):                       state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*Withdraw) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks, storage.BalanceChunks, storage.BalanceChunks}
}

// Execute implements chain.Action.
func (w *Withdraw) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, t int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if w.Value == 0 {
		return nil, ErrOutputValueZero
	}
	vault, err := storage.GetVault(ctx, mu, actor)
	if err != nil {
		return nil, ErrOutputVaultNotFound
	}
	if t < vault.UnlockAt {
		return nil, ErrOutputVaultLocked
	}
	if w.Value > vault.Amount {
		return nil, ErrOutputInsufficientFunds
	}

	if err := storage.SubBalance(ctx, mu, storage.VaultAddress(actor), w.Value); err != nil {
		return nil, err
	}
	if err := storage.AddBalance(ctx, mu, actor, w.Value, true); err != nil {
		return nil, err
	}

	// Withdrawing to zero keeps the record; only a claim deletes it.
	vault.Amount -= w.Value
	vault.LastActive = t
	if err := storage.SetVault(ctx, mu, actor, vault); err != nil {
		return nil, err
	}
	return &WithdrawResult{VaultBalance: vault.Amount}, nil
}

// ComputeUnits implements chain.Action.
func (*Withdraw) ComputeUnits(chain.Rules) uint64 {
	return WithdrawComputeUnits
}

// ValidRange implements chain.Action.
func (*Withdraw) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*WithdrawResult)(nil)

type WithdrawResult struct {
	VaultBalance uint64 `serialize:"true" json:"vault_balance"`
}

// GetTypeID implements codec.Typed.
func (*WithdrawResult) GetTypeID() uint8 {
	return consts.WithdrawID // Common practice is to use the action ID
}
