// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Token info layout:
// nameLen | name | symbolLen | symbol | decimals | metadataLen | metadata |
// totalSupply | authority

func SetTokenInfo(
	ctx context.Context,
	mu state.Mutable,
	token codec.Address,
	name []byte,
	symbol []byte,
	decimals uint8,
	metadata []byte,
	totalSupply uint64,
	authority codec.Address,
) error {
	k := TokenInfoKey(token)
	v := make([]byte, 2+len(name)+2+len(symbol)+1+2+len(metadata)+8+codec.AddressLen)
	offset := 0
	binary.BigEndian.PutUint16(v[offset:], uint16(len(name)))
	offset += 2
	copy(v[offset:], name)
	offset += len(name)
	binary.BigEndian.PutUint16(v[offset:], uint16(len(symbol)))
	offset += 2
	copy(v[offset:], symbol)
	offset += len(symbol)
	v[offset] = decimals
	offset++
	binary.BigEndian.PutUint16(v[offset:], uint16(len(metadata)))
	offset += 2
	copy(v[offset:], metadata)
	offset += len(metadata)
	binary.BigEndian.PutUint64(v[offset:], totalSupply)
	offset += 8
	copy(v[offset:], authority[:])
	return mu.Insert(ctx, k, v)
}

func GetTokenInfoNoController(
	ctx context.Context,
	im state.Immutable,
	token codec.Address,
) ([]byte, []byte, uint8, []byte, uint64, codec.Address, error) {
	v, err := im.GetValue(ctx, TokenInfoKey(token))
	if err != nil {
		return nil, nil, 0, nil, 0, codec.EmptyAddress, ErrTokenDoesNotExist
	}
	return innerGetTokenInfo(v)
}

func innerGetTokenInfo(v []byte) ([]byte, []byte, uint8, []byte, uint64, codec.Address, error) {
	offset := 0
	nameLen := binary.BigEndian.Uint16(v[offset:])
	offset += 2
	name := v[offset : offset+int(nameLen)]
	offset += int(nameLen)
	symbolLen := binary.BigEndian.Uint16(v[offset:])
	offset += 2
	symbol := v[offset : offset+int(symbolLen)]
	offset += int(symbolLen)
	decimals := v[offset]
	offset++
	metadataLen := binary.BigEndian.Uint16(v[offset:])
	offset += 2
	metadata := v[offset : offset+int(metadataLen)]
	offset += int(metadataLen)
	totalSupply := binary.BigEndian.Uint64(v[offset:])
	offset += 8
	authority := codec.Address(v[offset : offset+codec.AddressLen])
	return name, symbol, decimals, metadata, totalSupply, authority, nil
}

func TokenExists(ctx context.Context, im state.Immutable, token codec.Address) bool {
	v, err := im.GetValue(ctx, TokenInfoKey(token))
	return v != nil && err == nil
}

// TotalSupply returns the outstanding supply of [token].
func TotalSupply(ctx context.Context, im state.Immutable, token codec.Address) (uint64, error) {
	_, _, _, _, supply, _, err := GetTokenInfoNoController(ctx, im, token)
	return supply, err
}

// MintAsset is the issuance contract: it requires [authority] to be the
// declared mint authority of [token] and credits [to], which must already
// hold an account for [token].
func MintAsset(
	ctx context.Context,
	mu state.Mutable,
	token codec.Address,
	to codec.Address,
	authority codec.Address,
	amount uint64,
) error {
	name, symbol, decimals, metadata, supply, tokenAuthority, err := GetTokenInfoNoController(ctx, mu, token)
	if err != nil {
		return err
	}
	if tokenAuthority != authority {
		return ErrAuthorityMismatch
	}
	asset, owner, balance, err := GetTokenAccountNoController(ctx, mu, to)
	if err != nil {
		return err
	}
	if asset != token {
		return ErrAssetMismatch
	}
	newSupply, err := smath.Add(supply, amount)
	if err != nil {
		return err
	}
	newBalance, err := smath.Add(balance, amount)
	if err != nil {
		return err
	}
	if err := SetTokenInfo(ctx, mu, token, name, symbol, decimals, metadata, newSupply, tokenAuthority); err != nil {
		return err
	}
	return SetTokenAccount(ctx, mu, to, asset, owner, newBalance)
}

// BurnAsset debits [from] and reduces total supply. [authority] must be
// both the account owner and the declared mint authority of [token].
func BurnAsset(
	ctx context.Context,
	mu state.Mutable,
	token codec.Address,
	from codec.Address,
	owner codec.Address,
	authority codec.Address,
	amount uint64,
) error {
	name, symbol, decimals, metadata, supply, tokenAuthority, err := GetTokenInfoNoController(ctx, mu, token)
	if err != nil {
		return err
	}
	if tokenAuthority != authority {
		return ErrAuthorityMismatch
	}
	asset, accountOwner, balance, err := GetTokenAccountNoController(ctx, mu, from)
	if err != nil {
		return err
	}
	if asset != token {
		return ErrAssetMismatch
	}
	if accountOwner != owner {
		return ErrOwnerMismatch
	}
	if balance < amount {
		return ErrInsufficientBalance
	}
	newSupply, err := smath.Sub(supply, amount)
	if err != nil {
		return err
	}
	if err := SetTokenInfo(ctx, mu, token, name, symbol, decimals, metadata, newSupply, tokenAuthority); err != nil {
		return err
	}
	return SetTokenAccount(ctx, mu, from, asset, accountOwner, balance-amount)
}
