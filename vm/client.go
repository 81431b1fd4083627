// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"strings"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/requester"

	"github.com/vaultvm-labs/vaultvm/consts"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester
	g         *genesis.DefaultGenesis
}

// NewJSONRPCClient creates a new client object.
func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := requester.New(uri, consts.Name)
	return &JSONRPCClient{req, nil}
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.DefaultGenesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}

	resp := new(GenesisReply)
	err := cli.requester.SendRequest(
		ctx,
		"genesis",
		nil,
		resp,
	)
	if err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) Balance(ctx context.Context, addr codec.Address) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"balance",
		&BalanceArgs{
			Address: addr,
		},
		resp,
	)
	return resp.Amount, err
}

func (cli *JSONRPCClient) Vault(ctx context.Context, owner codec.Address) (*VaultReply, error) {
	resp := new(VaultReply)
	err := cli.requester.SendRequest(
		ctx,
		"vault",
		&VaultArgs{
			Owner: owner,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) IsUnlocked(ctx context.Context, owner codec.Address) (bool, error) {
	resp := new(IsUnlockedReply)
	err := cli.requester.SendRequest(
		ctx,
		"isUnlocked",
		&IsUnlockedArgs{
			Owner: owner,
		},
		resp,
	)
	return resp.Unlocked, err
}

func (cli *JSONRPCClient) RemainingLockTime(ctx context.Context, owner codec.Address) (int64, error) {
	resp := new(RemainingLockTimeReply)
	err := cli.requester.SendRequest(
		ctx,
		"remainingLockTime",
		&RemainingLockTimeArgs{
			Owner: owner,
		},
		resp,
	)
	return resp.Remaining, err
}

func (cli *JSONRPCClient) CanClaim(ctx context.Context, owner codec.Address, claimer codec.Address) (bool, error) {
	resp := new(CanClaimReply)
	err := cli.requester.SendRequest(
		ctx,
		"canClaim",
		&CanClaimArgs{
			Owner:   owner,
			Claimer: claimer,
		},
		resp,
	)
	return resp.CanClaim, err
}
