// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Token account layout: asset | owner | balance
//
// Accounts live at derived addresses (see TokenAccountAddress), so a
// reference to someone else's account can always be detected by
// re-deriving.

func SetTokenAccount(
	ctx context.Context,
	mu state.Mutable,
	account codec.Address,
	asset codec.Address,
	owner codec.Address,
	balance uint64,
) error {
	k := TokenAccountKey(account)
	v := make([]byte, codec.AddressLen+codec.AddressLen+8)
	copy(v, asset[:])
	copy(v[codec.AddressLen:], owner[:])
	binary.BigEndian.PutUint64(v[codec.AddressLen+codec.AddressLen:], balance)
	return mu.Insert(ctx, k, v)
}

func GetTokenAccountNoController(
	ctx context.Context,
	im state.Immutable,
	account codec.Address,
) (codec.Address, codec.Address, uint64, error) {
	v, err := im.GetValue(ctx, TokenAccountKey(account))
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, ErrAccountDoesNotExist
	}
	return parseTokenAccount(v)
}

func parseTokenAccount(v []byte) (codec.Address, codec.Address, uint64, error) {
	asset := codec.Address(v[:codec.AddressLen])
	owner := codec.Address(v[codec.AddressLen : 2*codec.AddressLen])
	balance := binary.BigEndian.Uint64(v[2*codec.AddressLen:])
	return asset, owner, balance, nil
}

func TokenAccountExists(ctx context.Context, im state.Immutable, account codec.Address) (bool, error) {
	v, err := im.GetValue(ctx, TokenAccountKey(account))
	if err == database.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

// CreateTokenAccount is the account-creation contract: it allocates a
// zero-balance account for (asset, owner) at its derived address and fails
// if one already exists.
func CreateTokenAccount(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	owner codec.Address,
) (codec.Address, error) {
	account := TokenAccountAddress(asset, owner)
	exists, err := TokenAccountExists(ctx, mu, account)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if exists {
		return codec.EmptyAddress, ErrAccountExists
	}
	if err := SetTokenAccount(ctx, mu, account, asset, owner, 0); err != nil {
		return codec.EmptyAddress, err
	}
	return account, nil
}

// EnsureTokenAccount creates the (asset, owner) account if it does not
// exist yet and returns its address.
func EnsureTokenAccount(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	owner codec.Address,
) (codec.Address, error) {
	account := TokenAccountAddress(asset, owner)
	exists, err := TokenAccountExists(ctx, mu, account)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if !exists {
		if err := SetTokenAccount(ctx, mu, account, asset, owner, 0); err != nil {
			return codec.EmptyAddress, err
		}
	}
	return account, nil
}

// Balance returns the balance of a token account, treating a missing
// account as zero.
func Balance(ctx context.Context, im state.Immutable, account codec.Address) (uint64, error) {
	v, err := im.GetValue(ctx, TokenAccountKey(account))
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v[2*codec.AddressLen:]), nil
}

// TransferAsset is the transfer contract: it moves [amount] of [token]
// between two accounts. [authority] must own the debited account and both
// accounts must hold [token].
func TransferAsset(
	ctx context.Context,
	mu state.Mutable,
	token codec.Address,
	from codec.Address,
	to codec.Address,
	authority codec.Address,
	amount uint64,
) error {
	fromAsset, fromOwner, fromBalance, err := GetTokenAccountNoController(ctx, mu, from)
	if err != nil {
		return err
	}
	if fromAsset != token {
		return ErrAssetMismatch
	}
	if fromOwner != authority {
		return ErrAuthorityMismatch
	}
	if fromBalance < amount {
		return ErrInsufficientBalance
	}
	// Self-transfer: both records alias, so the stale credit write would
	// overwrite the debit. Checked no-op.
	if from == to {
		return nil
	}
	toAsset, toOwner, toBalance, err := GetTokenAccountNoController(ctx, mu, to)
	if err != nil {
		return err
	}
	if toAsset != token {
		return ErrAssetMismatch
	}
	newToBalance, err := smath.Add(toBalance, amount)
	if err != nil {
		return err
	}
	if err := SetTokenAccount(ctx, mu, from, fromAsset, fromOwner, fromBalance-amount); err != nil {
		return err
	}
	return SetTokenAccount(ctx, mu, to, toAsset, toOwner, newToBalance)
}
