// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
)

var _ chain.StateManager = (*StateManager)(nil)

// StateManager tells the chain runtime where the fee-paying balances
// live: transaction fees are paid in the native coin, held in ordinary
// token accounts.
type StateManager struct{}

func (*StateManager) HeightKey() []byte {
	return HeightKey()
}

func (*StateManager) TimestampKey() []byte {
	return TimestampKey()
}

func (*StateManager) FeeKey() []byte {
	return FeeKey()
}

func (*StateManager) SponsorStateKeys(addr codec.Address) state.Keys {
	return state.Keys{
		string(TokenAccountKey(TokenAccountAddress(CoinAddress, addr))): state.Read | state.Write,
	}
}

func (*StateManager) CanDeduct(
	ctx context.Context,
	addr codec.Address,
	im state.Immutable,
	amount uint64,
) error {
	balance, err := Balance(ctx, im, TokenAccountAddress(CoinAddress, addr))
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInvalidBalance
	}
	return nil
}

func (*StateManager) Deduct(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
) error {
	account := TokenAccountAddress(CoinAddress, addr)
	_, owner, balance, err := GetTokenAccountNoController(ctx, mu, account)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInvalidBalance
	}
	return SetTokenAccount(ctx, mu, account, CoinAddress, owner, balance-amount)
}

func (*StateManager) AddBalance(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
	createAccount bool,
) error {
	account := TokenAccountAddress(CoinAddress, addr)
	exists, err := TokenAccountExists(ctx, mu, account)
	if err != nil {
		return err
	}
	if !exists {
		if !createAccount {
			return nil
		}
		if _, err := CreateTokenAccount(ctx, mu, CoinAddress, addr); err != nil {
			return err
		}
	}
	_, owner, balance, err := GetTokenAccountNoController(ctx, mu, account)
	if err != nil {
		return err
	}
	return SetTokenAccount(ctx, mu, account, CoinAddress, owner, balance+amount)
}
