// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/utils"

	"github.com/vaultvm-labs/vaultvm/consts"
)

// Data for the VaultVM coin, the single asset vaults custody.
const (
	CoinMetadata = "Native coin of VaultVM"
)

var CoinAddress codec.Address

func init() {
	v := make([]byte, 0, len(consts.Name)+len(consts.Symbol)+len(CoinMetadata))
	v = append(v, consts.Name...)
	v = append(v, consts.Symbol...)
	v = append(v, CoinMetadata...)
	CoinAddress = codec.CreateAddress(consts.COINID, utils.ToID(v))
}
