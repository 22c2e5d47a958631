// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"bytes"
	"encoding/binary"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/utils"

	"github.com/pairvm/pairvm/consts"
)

// All PairVM addresses are derived the same way: a seed tag (the address
// type ID) plus the hash of the seed material. Re-deriving with identical
// inputs always yields the identical address, so callers can never inject
// a substitute account that passes the validation gate.

type ComparisonValue int

const (
	LessThan ComparisonValue = iota - 1
	Equal
	GreaterThan
)

// CompareAddress is the single ordering rule shared by every operation.
// It is a byte-lexicographic comparison over the full address encoding.
func CompareAddress(a codec.Address, b codec.Address) ComparisonValue {
	switch c := bytes.Compare(a[:], b[:]); {
	case c < 0:
		return LessThan
	case c > 0:
		return GreaterThan
	default:
		return Equal
	}
}

// CanonicalPair orders an unordered asset pair so the same pool is
// reachable regardless of argument order. Identical assets cannot form
// a pool.
func CanonicalPair(assetA codec.Address, assetB codec.Address) (codec.Address, codec.Address, error) {
	switch CompareAddress(assetA, assetB) {
	case LessThan:
		return assetA, assetB, nil
	case GreaterThan:
		return assetB, assetA, nil
	default:
		return codec.EmptyAddress, codec.EmptyAddress, ErrIdenticalAssets
	}
}

// TokenAddress derives the address of an asset from its descriptive data.
func TokenAddress(name []byte, symbol []byte, decimals uint8, metadata []byte) codec.Address {
	v := make([]byte, len(name)+len(symbol)+1+len(metadata))
	copy(v, name)
	copy(v[len(name):], symbol)
	v[len(name)+len(symbol)] = decimals
	copy(v[len(name)+len(symbol)+1:], metadata)
	return codec.CreateAddress(consts.TokenID, utils.ToID(v))
}

// PoolAddress derives the canonical pool address for an unordered asset
// pair. The pair is canonicalized first so both argument orders resolve
// to the same pool.
func PoolAddress(assetA codec.Address, assetB codec.Address) (codec.Address, error) {
	assetX, assetY, err := CanonicalPair(assetA, assetB)
	if err != nil {
		return codec.EmptyAddress, err
	}
	v := make([]byte, codec.AddressLen+codec.AddressLen)
	copy(v, assetX[:])
	copy(v[codec.AddressLen:], assetY[:])
	return codec.CreateAddress(consts.PoolID, utils.ToID(v)), nil
}

// VaultAddress derives the reserve account a pool holds for one of its
// assets.
func VaultAddress(pool codec.Address, asset codec.Address) codec.Address {
	v := make([]byte, codec.AddressLen+codec.AddressLen)
	copy(v, pool[:])
	copy(v[codec.AddressLen:], asset[:])
	return codec.CreateAddress(consts.VaultID, utils.ToID(v))
}

// ClaimTokenAddress derives the claim-token issuer of a pool.
func ClaimTokenAddress(pool codec.Address) codec.Address {
	return codec.CreateAddress(consts.ClaimTokenID, utils.ToID(pool[:]))
}

// TokenAccountAddress derives the account holding [owner]'s balance of
// [asset].
func TokenAccountAddress(asset codec.Address, owner codec.Address) codec.Address {
	v := make([]byte, codec.AddressLen+codec.AddressLen)
	copy(v, asset[:])
	copy(v[codec.AddressLen:], owner[:])
	return codec.CreateAddress(consts.TokenAccountID, utils.ToID(v))
}

// ServiceAddress derives the well-known identity of an external service.
func ServiceAddress(name string) codec.Address {
	return codec.CreateAddress(consts.ServiceID, utils.ToID([]byte(name)))
}

func TokenInfoKey(token codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+2)
	k[0] = tokenInfoPrefix
	copy(k[1:], token[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], TokenInfoChunks)
	return k
}

func TokenAccountKey(account codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+2)
	k[0] = tokenAccountPrefix
	copy(k[1:], account[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], TokenAccountChunks)
	return k
}

func PoolKey(pool codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+2)
	k[0] = poolPrefix
	copy(k[1:], pool[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], PoolChunks)
	return k
}

func HeightKey() []byte {
	return []byte{heightPrefix}
}

func TimestampKey() []byte {
	return []byte{timestampPrefix}
}

func FeeKey() []byte {
	return []byte{feePrefix}
}
