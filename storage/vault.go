// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/utils"

	"github.com/vaultvm-labs/vaultvm/consts"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// BeneficiaryStatus is a closed enumeration. Pending is reserved for a future
// two-step nomination flow and is produced by no current transition.
type BeneficiaryStatus uint8

const (
	BeneficiaryInactive BeneficiaryStatus = iota
	BeneficiaryActive
	BeneficiaryPending
)

// Vault is the custody record for a single owner. Amount mirrors the balance
// of the vault's custody account at VaultAddress(owner).
type Vault struct {
	Amount       uint64
	UnlockAt     int64
	LockDuration int64
	GracePeriod  int64
	LastActive   int64
	Status       BeneficiaryStatus
	Beneficiary  codec.Address
	TokenType    codec.Address
}

const vaultSize = hconsts.Uint64Len*5 + hconsts.ByteLen + codec.AddressLen*2

// HasBeneficiary reports whether a beneficiary is nominated. An empty address
// means none.
func (v *Vault) HasBeneficiary() bool {
	return v.Beneficiary != codec.EmptyAddress
}

// [vaultPrefix] + [owner]
func VaultKey(owner codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = vaultPrefix
	copy(k[1:1+codec.AddressLen], owner[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], VaultChunks)
	return k
}

// VaultAddress derives the custody account holding an owner's locked coins.
func VaultAddress(owner codec.Address) codec.Address {
	id := utils.ToID(owner[:])
	return codec.CreateAddress(consts.VAULTID, id)
}

func SetVault(
	ctx context.Context,
	mu state.Mutable,
	owner codec.Address,
	vault *Vault,
) error {
	k := VaultKey(owner)
	v := make([]byte, vaultSize)
	binary.BigEndian.PutUint64(v, vault.Amount)
	binary.BigEndian.PutUint64(v[hconsts.Uint64Len:], uint64(vault.UnlockAt))
	binary.BigEndian.PutUint64(v[hconsts.Uint64Len*2:], uint64(vault.LockDuration))
	binary.BigEndian.PutUint64(v[hconsts.Uint64Len*3:], uint64(vault.GracePeriod))
	binary.BigEndian.PutUint64(v[hconsts.Uint64Len*4:], uint64(vault.LastActive))
	v[hconsts.Uint64Len*5] = uint8(vault.Status)
	copy(v[hconsts.Uint64Len*5+hconsts.ByteLen:], vault.Beneficiary[:])
	copy(v[hconsts.Uint64Len*5+hconsts.ByteLen+codec.AddressLen:], vault.TokenType[:])
	return mu.Insert(ctx, k, v)
}

func GetVault(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
) (*Vault, error) {
	k := VaultKey(owner)
	v, err := im.GetValue(ctx, k)
	if err != nil {
		return nil, err
	}
	return innerGetVault(v)
}

// Used to serve RPC queries. A missing vault is not an error: the vault
// pointer is nil.
func GetVaultFromState(
	ctx context.Context,
	f ReadState,
	owner codec.Address,
) (*Vault, error) {
	k := VaultKey(owner)
	values, errs := f(ctx, [][]byte{k})
	if errors.Is(errs[0], database.ErrNotFound) {
		return nil, nil
	}
	if errs[0] != nil {
		return nil, errs[0]
	}
	return innerGetVault(values[0])
}

func innerGetVault(v []byte) (*Vault, error) {
	vault := &Vault{
		Amount:       binary.BigEndian.Uint64(v),
		UnlockAt:     int64(binary.BigEndian.Uint64(v[hconsts.Uint64Len:])),
		LockDuration: int64(binary.BigEndian.Uint64(v[hconsts.Uint64Len*2:])),
		GracePeriod:  int64(binary.BigEndian.Uint64(v[hconsts.Uint64Len*3:])),
		LastActive:   int64(binary.BigEndian.Uint64(v[hconsts.Uint64Len*4:])),
		Status:       BeneficiaryStatus(v[hconsts.Uint64Len*5]),
	}
	copy(vault.Beneficiary[:], v[hconsts.Uint64Len*5+hconsts.ByteLen:])
	copy(vault.TokenType[:], v[hconsts.Uint64Len*5+hconsts.ByteLen+codec.AddressLen:])
	return vault, nil
}

func DeleteVault(
	ctx context.Context,
	mu state.Mutable,
	owner codec.Address,
) error {
	return mu.Remove(ctx, VaultKey(owner))
}

func VaultExists(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
) bool {
	v, err := im.GetValue(ctx, VaultKey(owner))
	return v != nil && err == nil
}

// CanClaim reports whether [claimer] may take the vault's balance at chain
// time [t]. The claimer must be the nominated, active beneficiary and either
// the grace window past unlock has elapsed or the owner has been silent for a
// full grace window. The second disjunct is the dead-man's-switch: it can
// grant claim rights before the lock matures.
func CanClaim(v *Vault, claimer codec.Address, t int64) bool {
	if !v.HasBeneficiary() || v.Beneficiary != claimer {
		return false
	}
	if v.Status != BeneficiaryActive {
		return false
	}
	return t >= v.UnlockAt+v.GracePeriod || t-v.LastActive >= v.GracePeriod
}
