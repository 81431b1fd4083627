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

var _ chain.Action = (*ExtendLock)(nil)

type ExtendLock struct {
	// Extension is added to both the unlock time and the total lock
	// duration, in ms of chain time.
	Extension int64 `serialize:"true" json:"extension"`
}

// GetTypeID implements chain.Action.
func (*ExtendLock) GetTypeID() uint8 {
	return consts.ExtendLockID
}

// StateKeys implements chain.Action.
func (*ExtendLock) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(actor)): state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*ExtendLock) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

// Execute implements chain.Action.
func (e *ExtendLock) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, t int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	vault, err := storage.GetVault(ctx, mu, actor)
	if err != nil {
		return nil, ErrOutputVaultNotFound
	}
	if e.Extension < storage.MinLockDuration {
		return nil, ErrOutputExtensionTooShort
	}
	// Bounding Extension before adding keeps both sums below from wrapping
	// int64; a stored duration never exceeds [storage.MaxLockDuration].
	if e.Extension > storage.MaxLockDuration {
		return nil, ErrOutputInvalidLockDuration
	}
	nduration := vault.LockDuration + e.Extension
	if nduration > storage.MaxLockDuration {
		return nil, ErrOutputInvalidLockDuration
	}

	// Extension is legal even after the unlock time has passed; the refresh
	// of LastActive doubles as a liveness signal.
	vault.LockDuration = nduration
	vault.UnlockAt += e.Extension
	vault.LastActive = t
	if err := storage.SetVault(ctx, mu, actor, vault); err != nil {
		return nil, err
	}
	return &ExtendLockResult{UnlockAt: vault.UnlockAt}, nil
}

// ComputeUnits implements chain.Action.
func (*ExtendLock) ComputeUnits(chain.Rules) uint64 {
	return ExtendLockComputeUnits
}

// ValidRange implements chain.Action.
func (*ExtendLock) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*ExtendLockResult)(nil)

type ExtendLockResult struct {
	UnlockAt int64 `serialize:"true" json:"unlock_at"`
}

// GetTypeID implements codec.Typed.
func (*ExtendLockResult) GetTypeID() uint8 {
	return consts.ExtendLockID // Common practice is to use the action ID
}
