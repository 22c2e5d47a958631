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
	_ chain.Action = (*CreateToken)(nil)
	_ codec.Typed  = (*CreateTokenResult)(nil)
)

// CreateToken registers a new fungible asset with the actor as its mint
// authority.
type CreateToken struct {
	Name     []byte `serialize:"true" json:"name"`
	Symbol   []byte `serialize:"true" json:"symbol"`
	Decimals uint8  `serialize:"true" json:"decimals"`
	Metadata []byte `serialize:"true" json:"metadata"`
}

func (*CreateToken) GetTypeID() uint8 {
	return consts.CreateTokenID
}

func (c *CreateToken) StateKeys(codec.Address, ids.ID) state.Keys {
	token := storage.TokenAddress(c.Name, c.Symbol, c.Decimals, c.Metadata)
	return state.Keys{
		string(storage.TokenInfoKey(token)): state.All,
	}
}

func (*CreateToken) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.TokenInfoChunks}
}

func (c *CreateToken) Execute(
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
	if len(c.Name) == 0 {
		return nil, ErrOutputTokenNameEmpty
	}
	if len(c.Name) > storage.MaxTokenNameSize {
		return nil, ErrOutputTokenNameTooLarge
	}
	if len(c.Symbol) == 0 {
		return nil, ErrOutputTokenSymbolEmpty
	}
	if len(c.Symbol) > storage.MaxTokenSymbolSize {
		return nil, ErrOutputTokenSymbolTooLarge
	}
	if len(c.Metadata) == 0 {
		return nil, ErrOutputTokenMetadataEmpty
	}
	if len(c.Metadata) > storage.MaxTokenMetadataSize {
		return nil, ErrOutputTokenMetadataTooLarge
	}
	if c.Decimals > storage.MaxTokenDecimals {
		return nil, ErrOutputTokenDecimalsTooHigh
	}

	token := storage.TokenAddress(c.Name, c.Symbol, c.Decimals, c.Metadata)
	if storage.TokenExists(ctx, mu, token) {
		return nil, ErrOutputTokenAlreadyExists
	}
	if err := storage.SetTokenInfo(ctx, mu, token, c.Name, c.Symbol, c.Decimals, c.Metadata, 0, actor); err != nil {
		return nil, err
	}

	return &CreateTokenResult{Token: token}, nil
}

func (*CreateToken) ComputeUnits(chain.Rules) uint64 {
	return CreateTokenComputeUnits
}

func (*CreateToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type CreateTokenResult struct {
	Token codec.Address `serialize:"true" json:"token"`
}

func (*CreateTokenResult) GetTypeID() uint8 {
	return consts.CreateTokenID
}
