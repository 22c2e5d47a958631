// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

const (
	Name = "pairvm"
	HRP  = "pair"

	// Symbol and metadata of the native coin used for transaction fees.
	Symbol   = "PAIR"
	Decimals = 9
	Metadata = "Native coin of the PairVM two-asset AMM"
)

// TypeIDs for actions. These double as the output type IDs of each
// action's result.
const (
	// Asset primitives
	CreateTokenID uint8 = iota
	MintTokenID
	TransferTokenID

	// Pool operations
	CreatePoolID
	AddLiquidityID
	RemoveLiquidityID
	SwapID
)

// TypeIDs for auth and for address derivation. Every derived address
// starts with one of these seed tags, so addresses of different kinds
// can never collide even when their seed material does.
const (
	// Required auth IDs
	ED25519ID uint8 = iota
	SECP256R1ID
	BLSID

	// Seed tags for PairVM address generation
	TokenID
	TokenAccountID
	PoolID
	VaultID
	ClaimTokenID
	ServiceID
)

// Names of the well-known service identities. Operations carry the
// service addresses they intend to call and the validation gate
// rejects anything that does not resolve to these names.
const (
	TokenServiceName   = "pairvm.token"
	AccountServiceName = "pairvm.account"
)

var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
