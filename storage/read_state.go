// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"

	"github.com/ava-labs/hypersdk/codec"
)

type ReadState func(context.Context, [][]byte) ([][]byte, []error)

// Used to serve RPC queries
func GetTokenInfoFromState(
	ctx context.Context,
	f ReadState,
	token codec.Address,
) ([]byte, []byte, uint8, []byte, uint64, codec.Address, error) {
	values, errs := f(ctx, [][]byte{TokenInfoKey(token)})
	if errs[0] != nil {
		return nil, nil, 0, nil, 0, codec.EmptyAddress, ErrTokenDoesNotExist
	}
	return innerGetTokenInfo(values[0])
}

func GetBalanceFromState(
	ctx context.Context,
	f ReadState,
	account codec.Address,
) (uint64, error) {
	values, errs := f(ctx, [][]byte{TokenAccountKey(account)})
	if errs[0] != nil {
		return 0, nil
	}
	_, _, balance, err := parseTokenAccount(values[0])
	return balance, err
}

func GetPoolFromState(
	ctx context.Context,
	f ReadState,
	pool codec.Address,
) (*Pool, error) {
	values, errs := f(ctx, [][]byte{PoolKey(pool)})
	if errs[0] != nil {
		return nil, errs[0]
	}
	return innerGetPool(values[0])
}
