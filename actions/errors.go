// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrOutputValueZero = errors.New("value is zero")

	// Vault lifecycle errors
	ErrOutputVaultExists         = errors.New("vault already exists")
	ErrOutputVaultNotFound       = errors.New("vault does not exist")
	ErrOutputVaultLocked         = errors.New("vault is still locked")
	ErrOutputInvalidLockDuration = errors.New("lock duration out of bounds")
	ErrOutputExtensionTooShort   = errors.New("extension below minimum lock duration")
	ErrOutputInsufficientFunds   = errors.New("withdraw exceeds vault balance")

	// Beneficiary claim errors
	ErrOutputNoBeneficiary        = errors.New("no beneficiary set")
	ErrOutputNotBeneficiary       = errors.New("actor is not the beneficiary")
	ErrOutputBeneficiaryNotActive = errors.New("beneficiary is not active")

	// Reserved for future transitions; currently unreachable
	ErrOutputGracePeriodExpired = errors.New("grace period expired")
	ErrOutputInvalidBeneficiary = errors.New("invalid beneficiary")
)
