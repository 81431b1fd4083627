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

var _ chain.Action = (*Ping)(nil)

// Ping refreshes the actor's liveness timestamp and nothing else. Owners of
// vaults with a long lock use it to keep the dead-man's-switch from arming.
type Ping struct{}

// GetTypeID implements chain.Action.
func (*Ping) GetTypeID() uint8 {
	return consts.PingID
}

// StateKeys implements chain.Action.
func (*Ping) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.VaultKey(actor)): state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*Ping) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.VaultChunks}
}

// Execute implements chain.Action.
func (*Ping) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, t int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	vault, err := storage.GetVault(ctx, mu, actor)
	if err != nil {
		return nil, ErrOutputVaultNotFound
	}
	vault.LastActive = t
	if err := storage.SetVault(ctx, mu, actor, vault); err != nil {
		return nil, err
	}
	return &PingResult{LastActive: t}, nil
}

// ComputeUnits implements chain.Action.
func (*Ping) ComputeUnits(chain.Rules) uint64 {
	return PingComputeUnits
}

// ValidRange implements chain.Action.
func (*Ping) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*PingResult)(nil)

type PingResult struct {
	LastActive int64 `serialize:"true" json:"last_active"`
}

// GetTypeID implements codec.Typed.
func (*PingResult) GetTypeID() uint8 {
	return consts.PingID // Common practice is to use the action ID
}
