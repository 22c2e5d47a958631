// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/hypersdk/codec"

	"github.com/pairvm/pairvm/consts"
)

// Key prefixes
const (
	// Required by the chain runtime
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// PairVM state
	tokenInfoPrefix
	tokenAccountPrefix
	poolPrefix
)

// Chunks
const (
	TokenInfoChunks    uint16 = 2
	TokenAccountChunks uint16 = 1
	PoolChunks         uint16 = 2
)

// Action invariants
const (
	MaxTokenNameSize     = 64
	MaxTokenSymbolSize   = 8
	MaxTokenMetadataSize = 256
	MaxTokenDecimals     = 18
)

// Default swap fee, 3/10^3, applied when pool creation leaves both fee
// fields zero. Each pool stores its own fee, so the default never changes
// an existing pool.
const (
	DefaultFeeRate  uint64 = 3
	DefaultFeeScale uint8  = 3
)

// Every claim token carries the same descriptive data; the issuing pool is
// what distinguishes them.
const (
	ClaimTokenName     = "PairVM-Claim"
	ClaimTokenSymbol   = "PAIRC"
	ClaimTokenDecimals = 9
	ClaimTokenMetadata = "Proportional claim on a PairVM pool"
)

var (
	CoinAddress codec.Address

	TokenServiceAddress   codec.Address
	AccountServiceAddress codec.Address
)

func init() {
	CoinAddress = TokenAddress([]byte(consts.Name), []byte(consts.Symbol), consts.Decimals, []byte(consts.Metadata))
	TokenServiceAddress = ServiceAddress(consts.TokenServiceName)
	AccountServiceAddress = ServiceAddress(consts.AccountServiceName)
}
