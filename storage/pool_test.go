// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
)

func TestPoolRecordRoundTrip(t *testing.T) {
	require := require.New(t)
	store := chaintest.NewInMemoryStore()
	ctx := context.Background()

	assetX := testAddress(t, 1)
	assetY := testAddress(t, 2)
	pool, err := PoolAddress(assetX, assetY)
	require.NoError(err)

	record := &Pool{
		AssetX:     assetX,
		AssetY:     assetY,
		VaultX:     VaultAddress(pool, assetX),
		VaultY:     VaultAddress(pool, assetY),
		ClaimToken: ClaimTokenAddress(pool),
		FeeRate:    3,
		FeeScale:   3,
	}

	require.False(PoolExists(ctx, store, pool))
	require.NoError(SetPool(ctx, store, pool, record))
	require.True(PoolExists(ctx, store, pool))

	got, err := GetPoolNoController(ctx, store, pool)
	require.NoError(err)
	require.Equal(record, got)
}

func TestGetPoolMissing(t *testing.T) {
	require := require.New(t)
	store := chaintest.NewInMemoryStore()

	_, err := GetPoolNoController(context.Background(), store, testAddress(t, 9))
	require.Error(err)
}
