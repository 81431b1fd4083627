// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/vaultvm-labs/vaultvm/storage"

const (
	InitialBalance uint64 = 1_000_000

	DepositValue  uint64 = 500
	WithdrawValue uint64 = 200
	TransferValue uint64 = 1

	// Chain times used across the action tests, all in ms.
	CreateTime int64 = 1_000_000
	LockTime         = storage.MinLockDuration * 30
	GraceTime        = storage.DefaultGracePeriod
	UnlockTime       = CreateTime + LockTime
)
