// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/pairvm/pairvm/consts"
	"github.com/pairvm/pairvm/gate"
	"github.com/pairvm/pairvm/storage"
)

var (
	_ chain.Action = (*MintToken)(nil)
	_ codec.Typed  = (*MintTokenResult)(nil)
)

// MintToken issues [Value] of [Token] to [To]. The actor must be the
// token's mint authority; the destination account is created if absent.
type MintToken struct {
	Token codec.Address `serialize:"true" json:"token"`
	To    codec.Address `serialize:"true" json:"to"`
	Value uint64        `serialize:"true" json:"value"`
}

func (*MintToken) GetTypeID() uint8 {
	return consts.MintTokenID
}

func (m *MintToken) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(m.Token)):                                       state.All,
		string(storage.TokenAccountKey(storage.TokenAccountAddress(m.Token, m.To))): state.All,
	}
}

func (*MintToken) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.TokenInfoChunks, storage.TokenAccountChunks}
}

func (m *MintToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if err := gate.CheckSigner(actor); err != nil {
		return nil, err
	}
	if m.Value == 0 {
		return nil, ErrOutputValueZero
	}
	if !storage.TokenExists(ctx, mu, m.Token) {
		return nil, ErrOutputTokenDoesNotExist
	}
	account, err := storage.EnsureTokenAccount(ctx, mu, m.Token, m.To)
	if err != nil {
		return nil, err
	}
	if err := storage.MintAsset(ctx, mu, m.Token, account, actor, m.Value); err != nil {
		return nil, err
	}
	balance, err := storage.Balance(ctx, mu, account)
	if err != nil {
		return nil, err
	}

	return &MintTokenResult{Balance: balance}, nil
}

func (*MintToken) ComputeUnits(chain.Rules) uint64 {
	return MintTokenComputeUnits
}

func (*MintToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type MintTokenResult struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (*MintTokenResult) GetTypeID() uint8 {
	return consts.MintTokenID
}
