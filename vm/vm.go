// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/hypersdk/api/indexer"
	"github.com/ava-labs/hypersdk/api/jsonrpc"
	"github.com/ava-labs/hypersdk/api/ws"
	"github.com/ava-labs/hypersdk/auth"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/extension/externalsubscriber"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/vm"

	"github.com/vaultvm-labs/vaultvm/actions"
	"github.com/vaultvm-labs/vaultvm/consts"
	"github.com/vaultvm-labs/vaultvm/storage"
)

var (
	ActionParser *codec.TypeParser[chain.Action]
	AuthParser   *codec.TypeParser[chain.Auth]
	OutputParser *codec.TypeParser[codec.Typed]
)

// Setup types
func init() {
	ActionParser = codec.NewTypeParser[chain.Action]()
	AuthParser = codec.NewTypeParser[chain.Auth]()
	OutputParser = codec.NewTypeParser[codec.Typed]()

	errs := &wrappers.Errs{}
	errs.Add(
		// When registering new actions, ALWAYS make sure to append at the end.
		ActionParser.Register(&actions.Transfer{}, nil),

		// Vault lifecycle actions
		ActionParser.Register(&actions.CreateVault{}, nil),
		ActionParser.Register(&actions.Deposit{}, nil),
		ActionParser.Register(&actions.Withdraw{}, nil),
		ActionParser.Register(&actions.ExtendLock{}, nil),
		ActionParser.Register(&actions.Ping{}, nil),

		// Beneficiary actions
		ActionParser.Register(&actions.UpdateBeneficiary{}, nil),
		ActionParser.Register(&actions.ClaimVault{}, nil),

		// When registering new outputs, ALWAYS make sure to append at the end.
		OutputParser.Register(&actions.TransferResult{}, nil),
		OutputParser.Register(&actions.CreateVaultResult{}, nil),
		OutputParser.Register(&actions.DepositResult{}, nil),
		OutputParser.Register(&actions.WithdrawResult{}, nil),
		OutputParser.Register(&actions.ExtendLockResult{}, nil),
		OutputParser.Register(&actions.PingResult{}, nil),
		OutputParser.Register(&actions.UpdateBeneficiaryResult{}, nil),
		OutputParser.Register(&actions.ClaimVaultResult{}, nil),

		// When registering new auth, ALWAYS make sure to append at the end.
		AuthParser.Register(&auth.ED25519{}, auth.UnmarshalED25519),
		AuthParser.Register(&auth.SECP256R1{}, auth.UnmarshalSECP256R1),
		AuthParser.Register(&auth.BLS{}, auth.UnmarshalBLS),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// New returns a VM with the indexer, websocket, rpc, vault, and external
// subscriber apis enabled.
func New(options ...vm.Option) (*vm.VM, error) {
	opts := append([]vm.Option{
		indexer.With(),
		ws.With(),
		jsonrpc.With(),
		With(), // Add Vault API
		externalsubscriber.With(),
	}, options...)

	return NewWithOptions(opts...)
}

// NewWithOptions returns a VM with the specified options
func NewWithOptions(options ...vm.Option) (*vm.VM, error) {
	return vm.New(
		consts.Version,
		genesis.DefaultGenesisFactory{},
		&storage.StateManager{},
		ActionParser,
		AuthParser,
		OutputParser,
		auth.Engines(),
		options...,
	)
}
