// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// Action TypeIDs
	TransferID uint8 = iota
	CreateVaultID
	DepositID
	WithdrawID
	ExtendLockID
	PingID
	UpdateBeneficiaryID
	ClaimVaultID
)

const (
	// Auth TypeIDs
	ED25519ID uint8 = iota
	SECP256R1ID
	BLSID

	// Relating to VaultVM address generation
	VAULTID
	COINID
)
