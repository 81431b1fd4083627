// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// Key prefixes
const (
	// Required for StateManager
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// Required for VaultVM
	balancePrefix
	vaultPrefix
)

// Chunks
const (
	BalanceChunks uint16 = 1
	VaultChunks   uint16 = 2
)

// Lock and grace bounds, in milliseconds of chain time. A lock must cover at
// least one day and at most a year; the grace window can never be shorter
// than a day or the inactivity path would trigger on ordinary gaps between
// owner transactions.
const (
	MinLockDuration    int64 = 24 * 60 * 60 * 1000
	MaxLockDuration    int64 = 365 * 24 * 60 * 60 * 1000
	MinGracePeriod     int64 = 24 * 60 * 60 * 1000
	DefaultGracePeriod int64 = 7 * 24 * 60 * 60 * 1000
)
