// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	TransferComputeUnits          = 1
	CreateVaultComputeUnits       = 1
	DepositComputeUnits           = 1
	WithdrawComputeUnits          = 1
	ExtendLockComputeUnits        = 1
	PingComputeUnits              = 1
	UpdateBeneficiaryComputeUnits = 1
	ClaimVaultComputeUnits        = 1
)
