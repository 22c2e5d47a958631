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
	"github.com/pairvm/pairvm/pricing"
	"github.com/pairvm/pairvm/storage"
)

var (
	_ chain.Action = (*Swap)(nil)
	_ codec.Typed  = (*SwapResult)(nil)
)

// Swap exchanges [AmountIn] of [AssetIn] for [AssetOut] against the
// pool's reserves at the constant-product price, fee deducted from the
// input. Which vault is the source is resolved from the asset
// identifier, never from a caller-chosen index.
type Swap struct {
	AssetIn      codec.Address `serialize:"true" json:"assetIn"`
	AssetOut     codec.Address `serialize:"true" json:"assetOut"`
	AmountIn     uint64        `serialize:"true" json:"amountIn"`
	MinAmountOut uint64        `serialize:"true" json:"minAmountOut"`

	// Account references, fixed positions.
	Pool           codec.Address `serialize:"true" json:"pool"`
	VaultX         codec.Address `serialize:"true" json:"vaultX"`
	VaultY         codec.Address `serialize:"true" json:"vaultY"`
	UserAccountIn  codec.Address `serialize:"true" json:"userAccountIn"`
	UserAccountOut codec.Address `serialize:"true" json:"userAccountOut"`
	TokenService   codec.Address `serialize:"true" json:"tokenService"`
}

func (*Swap) GetTypeID() uint8 {
	return consts.SwapID
}

func (s *Swap) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.PoolKey(s.Pool)):                   state.Read,
		string(storage.TokenAccountKey(s.VaultX)):         state.All,
		string(storage.TokenAccountKey(s.VaultY)):         state.All,
		string(storage.TokenAccountKey(s.UserAccountIn)):  state.All,
		string(storage.TokenAccountKey(s.UserAccountOut)): state.All,
	}
}

func (*Swap) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.PoolChunks,
		storage.TokenAccountChunks,
		storage.TokenAccountChunks,
		storage.TokenAccountChunks,
		storage.TokenAccountChunks,
	}
}

func (s *Swap) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	// Swaps are permissionless, but the asset debit still needs an
	// authorized payer.
	if err := gate.CheckSigner(actor); err != nil {
		return nil, err
	}
	if err := gate.CheckInitialized(storage.PoolExists(ctx, mu, s.Pool)); err != nil {
		return nil, err
	}
	pool, err := storage.GetPoolNoController(ctx, mu, s.Pool)
	if err != nil {
		return nil, err
	}

	var inIsX bool
	switch {
	case s.AssetIn == pool.AssetX && s.AssetOut == pool.AssetY:
		inIsX = true
	case s.AssetIn == pool.AssetY && s.AssetOut == pool.AssetX:
		inIsX = false
	default:
		return nil, ErrOutputUnknownAsset
	}

	poolAddress, err := storage.PoolAddress(pool.AssetX, pool.AssetY)
	if err != nil {
		return nil, err
	}
	if err := gate.CheckDerivedAddresses(
		[2]codec.Address{s.Pool, poolAddress},
		[2]codec.Address{s.VaultX, storage.VaultAddress(poolAddress, pool.AssetX)},
		[2]codec.Address{s.VaultY, storage.VaultAddress(poolAddress, pool.AssetY)},
		[2]codec.Address{s.UserAccountIn, storage.TokenAccountAddress(s.AssetIn, actor)},
		[2]codec.Address{s.UserAccountOut, storage.TokenAccountAddress(s.AssetOut, actor)},
	); err != nil {
		return nil, err
	}
	if err := gate.CheckService(s.TokenService, storage.TokenServiceAddress); err != nil {
		return nil, err
	}

	_, vaultXOwner, reserveX, err := storage.GetTokenAccountNoController(ctx, mu, s.VaultX)
	if err != nil {
		return nil, err
	}
	_, vaultYOwner, reserveY, err := storage.GetTokenAccountNoController(ctx, mu, s.VaultY)
	if err != nil {
		return nil, err
	}
	if err := gate.CheckOwnership(vaultXOwner, poolAddress); err != nil {
		return nil, err
	}
	if err := gate.CheckOwnership(vaultYOwner, poolAddress); err != nil {
		return nil, err
	}

	model, err := pricing.NewConstantProduct(reserveX, reserveY, pool.FeeRate, pool.FeeScale)
	if err != nil {
		return nil, err
	}
	amountOut, err := model.Swap(s.AmountIn, inIsX)
	if err != nil {
		return nil, err
	}
	if amountOut < s.MinAmountOut {
		return nil, ErrOutputSlippageExceeded
	}

	vaultIn, vaultOut := s.VaultX, s.VaultY
	if !inIsX {
		vaultIn, vaultOut = s.VaultY, s.VaultX
	}
	if err := storage.TransferAsset(ctx, mu, s.AssetIn, s.UserAccountIn, vaultIn, actor, s.AmountIn); err != nil {
		return nil, err
	}
	if _, err := storage.EnsureTokenAccount(ctx, mu, s.AssetOut, actor); err != nil {
		return nil, err
	}
	if err := storage.TransferAsset(ctx, mu, s.AssetOut, vaultOut, s.UserAccountOut, poolAddress, amountOut); err != nil {
		return nil, err
	}

	return &SwapResult{
		AmountOut: amountOut,
		AssetOut:  s.AssetOut,
	}, nil
}

func (*Swap) ComputeUnits(chain.Rules) uint64 {
	return SwapComputeUnits
}

func (*Swap) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type SwapResult struct {
	AmountOut uint64        `serialize:"true" json:"amountOut"`
	AssetOut  codec.Address `serialize:"true" json:"assetOut"`
}

func (*SwapResult) GetTypeID() uint8 {
	return consts.SwapID
}
