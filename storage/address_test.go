// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/codec"
)

func testAddress(t *testing.T, num uint8) codec.Address {
	t.Helper()
	addrSlice := make([]byte, codec.AddressLen)
	for i := range addrSlice {
		addrSlice[i] = num
	}
	addr, err := codec.ToAddress(addrSlice)
	require.NoError(t, err)
	return addr
}

func TestCompareAddress(t *testing.T) {
	require := require.New(t)

	low := testAddress(t, 1)
	high := testAddress(t, 2)

	require.Equal(LessThan, CompareAddress(low, high))
	require.Equal(GreaterThan, CompareAddress(high, low))
	require.Equal(Equal, CompareAddress(low, low))
}

func TestCanonicalPairOrderIndependent(t *testing.T) {
	require := require.New(t)

	low := testAddress(t, 1)
	high := testAddress(t, 2)

	x1, y1, err := CanonicalPair(low, high)
	require.NoError(err)
	x2, y2, err := CanonicalPair(high, low)
	require.NoError(err)
	require.Equal(x1, x2)
	require.Equal(y1, y2)
	require.Equal(low, x1)
	require.Equal(high, y1)
}

func TestCanonicalPairIdenticalAssets(t *testing.T) {
	require := require.New(t)

	asset := testAddress(t, 1)
	_, _, err := CanonicalPair(asset, asset)
	require.ErrorIs(err, ErrIdenticalAssets)
}

func TestPoolAddressOrderIndependent(t *testing.T) {
	require := require.New(t)

	assetA := testAddress(t, 1)
	assetB := testAddress(t, 2)

	forward, err := PoolAddress(assetA, assetB)
	require.NoError(err)
	backward, err := PoolAddress(assetB, assetA)
	require.NoError(err)
	require.Equal(forward, backward)

	_, err = PoolAddress(assetA, assetA)
	require.ErrorIs(err, ErrIdenticalAssets)
}

func TestDerivationsAreDeterministicAndDistinct(t *testing.T) {
	require := require.New(t)

	assetA := testAddress(t, 1)
	assetB := testAddress(t, 2)
	owner := testAddress(t, 3)

	pool, err := PoolAddress(assetA, assetB)
	require.NoError(err)

	// Same inputs, same address.
	require.Equal(VaultAddress(pool, assetA), VaultAddress(pool, assetA))
	require.Equal(TokenAccountAddress(assetA, owner), TokenAccountAddress(assetA, owner))
	require.Equal(ClaimTokenAddress(pool), ClaimTokenAddress(pool))

	// Different inputs or different seed tags, different addresses.
	seen := map[codec.Address]struct{}{
		pool:                               {},
		VaultAddress(pool, assetA):         {},
		VaultAddress(pool, assetB):         {},
		ClaimTokenAddress(pool):            {},
		TokenAccountAddress(assetA, owner): {},
		TokenAccountAddress(assetB, owner): {},
		ServiceAddress("pairvm.token"):     {},
		ServiceAddress("pairvm.account"):   {},
	}
	require.Len(seen, 8)
}

func TestTokenAddressBindsDescriptiveData(t *testing.T) {
	require := require.New(t)

	base := TokenAddress([]byte("Aurum"), []byte("AUR"), 9, []byte("meta"))
	require.Equal(base, TokenAddress([]byte("Aurum"), []byte("AUR"), 9, []byte("meta")))
	require.NotEqual(base, TokenAddress([]byte("Aurum"), []byte("AUR"), 8, []byte("meta")))
	require.NotEqual(base, TokenAddress([]byte("Aurum"), []byte("AUX"), 9, []byte("meta")))
}

func TestStateKeysAreDistinctPerPrefix(t *testing.T) {
	require := require.New(t)

	addr := testAddress(t, 1)
	keys := [][]byte{
		TokenInfoKey(addr),
		TokenAccountKey(addr),
		PoolKey(addr),
	}
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[string(k)] = struct{}{}
	}
	require.Len(seen, len(keys))
}
