// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"

	"github.com/vaultvm-labs/vaultvm/consts"
	"github.com/vaultvm-labs/vaultvm/storage"
)

const JSONRPCEndpoint = "/vaultapi"

var _ api.HandlerFactory[api.VM] = (*jsonRPCServerFactory)(nil)

type jsonRPCServerFactory struct{}

func (jsonRPCServerFactory) New(vm api.VM) (api.Handler, error) {
	handler, err := api.NewJSONRPCHandler(consts.Name, NewJSONRPCServer(vm))
	return api.Handler{
		Path:    JSONRPCEndpoint,
		Handler: handler,
	}, err
}

type JSONRPCServer struct {
	vm api.VM
}

func NewJSONRPCServer(vm api.VM) *JSONRPCServer {
	return &JSONRPCServer{vm: vm}
}

type GenesisReply struct {
	Genesis *genesis.DefaultGenesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = j.vm.Genesis().(*genesis.DefaultGenesis)
	return nil
}

type BalanceArgs struct {
	Address codec.Address `json:"address"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.Balance")
	defer span.End()

	balance, err := storage.GetBalanceFromState(ctx, j.vm.ReadState, args.Address)
	if err != nil {
		return err
	}
	reply.Amount = balance
	return nil
}

type VaultArgs struct {
	Owner codec.Address `json:"owner"`
}

type VaultReply struct {
	Exists       bool          `json:"exists"`
	Amount       uint64        `json:"amount"`
	UnlockAt     int64         `json:"unlockAt"`
	LockDuration int64         `json:"lockDuration"`
	GracePeriod  int64         `json:"gracePeriod"`
	LastActive   int64         `json:"lastActive"`
	Status       uint8         `json:"status"`
	Beneficiary  codec.Address `json:"beneficiary"`
	TokenType    codec.Address `json:"tokenType"`
}

// Vault returns a snapshot of an owner's vault. A missing vault is reported
// through [Exists] rather than an error so callers can poll cheaply.
func (j *JSONRPCServer) Vault(req *http.Request, args *VaultArgs, reply *VaultReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.Vault")
	defer span.End()

	vault, err := storage.GetVaultFromState(ctx, j.vm.ReadState, args.Owner)
	if err != nil {
		return err
	}
	if vault == nil {
		reply.Exists = false
		return nil
	}
	reply.Exists = true
	reply.Amount = vault.Amount
	reply.UnlockAt = vault.UnlockAt
	reply.LockDuration = vault.LockDuration
	reply.GracePeriod = vault.GracePeriod
	reply.LastActive = vault.LastActive
	reply.Status = uint8(vault.Status)
	reply.Beneficiary = vault.Beneficiary
	reply.TokenType = vault.TokenType
	return nil
}

type IsUnlockedArgs struct {
	Owner codec.Address `json:"owner"`
}

type IsUnlockedReply struct {
	Unlocked bool `json:"unlocked"`
}

func (j *JSONRPCServer) IsUnlocked(req *http.Request, args *IsUnlockedArgs, reply *IsUnlockedReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.IsUnlocked")
	defer span.End()

	vault, err := storage.GetVaultFromState(ctx, j.vm.ReadState, args.Owner)
	if err != nil {
		return err
	}
	if vault == nil {
		return nil
	}
	t, err := storage.GetTimestampFromState(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	reply.Unlocked = t >= vault.UnlockAt
	return nil
}

type RemainingLockTimeArgs struct {
	Owner codec.Address `json:"owner"`
}

type RemainingLockTimeReply struct {
	Remaining int64 `json:"remaining"`
}

// RemainingLockTime reports the milliseconds until the vault unlocks, zero if
// the vault is already withdrawable or does not exist.
func (j *JSONRPCServer) RemainingLockTime(req *http.Request, args *RemainingLockTimeArgs, reply *RemainingLockTimeReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.RemainingLockTime")
	defer span.End()

	vault, err := storage.GetVaultFromState(ctx, j.vm.ReadState, args.Owner)
	if err != nil {
		return err
	}
	if vault == nil {
		return nil
	}
	t, err := storage.GetTimestampFromState(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	if t < vault.UnlockAt {
		reply.Remaining = vault.UnlockAt - t
	}
	return nil
}

type CanClaimArgs struct {
	Owner   codec.Address `json:"owner"`
	Claimer codec.Address `json:"claimer"`
}

type CanClaimReply struct {
	CanClaim bool `json:"canClaim"`
}

func (j *JSONRPCServer) CanClaim(req *http.Request, args *CanClaimArgs, reply *CanClaimReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.CanClaim")
	defer span.End()

	vault, err := storage.GetVaultFromState(ctx, j.vm.ReadState, args.Owner)
	if err != nil {
		return err
	}
	if vault == nil {
		return nil
	}
	t, err := storage.GetTimestampFromState(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	reply.CanClaim = storage.CanClaim(vault, args.Claimer, t)
	return nil
}
