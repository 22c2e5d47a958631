// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
)

// Pool is the canonical record for one unordered asset pair. AssetX is
// always the byte-lexicographically smaller asset; the ordering is fixed
// at creation. Reserves are not stored here: a reserve is the balance of
// the corresponding vault, and vault balances only move through pool
// operations.
type Pool struct {
	AssetX     codec.Address
	AssetY     codec.Address
	VaultX     codec.Address
	VaultY     codec.Address
	ClaimToken codec.Address
	FeeRate    uint64
	FeeScale   uint8
}

const poolRecordSize = 5*codec.AddressLen + 8 + 1

func SetPool(ctx context.Context, mu state.Mutable, poolAddress codec.Address, p *Pool) error {
	v := make([]byte, poolRecordSize)
	offset := 0
	for _, addr := range []codec.Address{p.AssetX, p.AssetY, p.VaultX, p.VaultY, p.ClaimToken} {
		copy(v[offset:], addr[:])
		offset += codec.AddressLen
	}
	binary.BigEndian.PutUint64(v[offset:], p.FeeRate)
	offset += 8
	v[offset] = p.FeeScale
	return mu.Insert(ctx, PoolKey(poolAddress), v)
}

func GetPoolNoController(ctx context.Context, im state.Immutable, poolAddress codec.Address) (*Pool, error) {
	v, err := im.GetValue(ctx, PoolKey(poolAddress))
	if err != nil {
		return nil, err
	}
	return innerGetPool(v)
}

func innerGetPool(v []byte) (*Pool, error) {
	p := &Pool{}
	offset := 0
	for _, addr := range []*codec.Address{&p.AssetX, &p.AssetY, &p.VaultX, &p.VaultY, &p.ClaimToken} {
		copy(addr[:], v[offset:offset+codec.AddressLen])
		offset += codec.AddressLen
	}
	p.FeeRate = binary.BigEndian.Uint64(v[offset:])
	offset += 8
	p.FeeScale = v[offset]
	return p, nil
}

func PoolExists(ctx context.Context, im state.Immutable, poolAddress codec.Address) bool {
	v, err := im.GetValue(ctx, PoolKey(poolAddress))
	return v != nil && err == nil
}
