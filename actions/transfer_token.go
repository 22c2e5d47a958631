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
	_ chain.Action = (*TransferToken)(nil)
	_ codec.Typed  = (*TransferTokenResult)(nil)
)

// TransferToken moves [Value] of [Token] from the actor's account to
// [To]'s, creating the destination account if absent.
type TransferToken struct {
	Token codec.Address `serialize:"true" json:"token"`
	To    codec.Address `serialize:"true" json:"to"`
	Value uint64        `serialize:"true" json:"value"`
}

func (*TransferToken) GetTypeID() uint8 {
	return consts.TransferTokenID
}

func (t *TransferToken) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenAccountKey(storage.TokenAccountAddress(t.Token, actor))): state.All,
		string(storage.TokenAccountKey(storage.TokenAccountAddress(t.Token, t.To))):  state.All,
	}
}

func (*TransferToken) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.TokenAccountChunks, storage.TokenAccountChunks}
}

func (t *TransferToken) Execute(
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
	if t.Value == 0 {
		return nil, ErrOutputValueZero
	}
	from := storage.TokenAccountAddress(t.Token, actor)
	to, err := storage.EnsureTokenAccount(ctx, mu, t.Token, t.To)
	if err != nil {
		return nil, err
	}
	if err := storage.TransferAsset(ctx, mu, t.Token, from, to, actor, t.Value); err != nil {
		return nil, err
	}
	senderBalance, err := storage.Balance(ctx, mu, from)
	if err != nil {
		return nil, err
	}
	receiverBalance, err := storage.Balance(ctx, mu, to)
	if err != nil {
		return nil, err
	}

	return &TransferTokenResult{
		SenderBalance:   senderBalance,
		ReceiverBalance: receiverBalance,
	}, nil
}

func (*TransferToken) ComputeUnits(chain.Rules) uint64 {
	return TransferTokenComputeUnits
}

func (*TransferToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type TransferTokenResult struct {
	SenderBalance   uint64 `serialize:"true" json:"senderBalance"`
	ReceiverBalance uint64 `serialize:"true" json:"receiverBalance"`
}

func (*TransferTokenResult) GetTypeID() uint8 {
	return consts.TransferTokenID
}
