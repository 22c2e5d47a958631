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
	_ chain.Action = (*AddLiquidity)(nil)
	_ codec.Typed  = (*AddLiquidityResult)(nil)
)

// AddLiquidity deposits [Amount] of [Asset] plus the matching amount of
// [OtherAsset] (computed off the pre-transaction reserves, capped by
// [MaxOther]) and mints claim tokens equal to [Amount] to the actor. On
// the first deposit the actor sets the price ratio and [MaxOther] is
// taken exactly.
type AddLiquidity struct {
	Asset      codec.Address `serialize:"true" json:"asset"`
	OtherAsset codec.Address `serialize:"true" json:"otherAsset"`
	Amount     uint64        `serialize:"true" json:"amount"`
	MaxOther   uint64        `serialize:"true" json:"maxOther"`

	// Account references, fixed positions. Vaults are in canonical
	// order; user accounts follow the caller's leg order.
	Pool             codec.Address `serialize:"true" json:"pool"`
	VaultX           codec.Address `serialize:"true" json:"vaultX"`
	VaultY           codec.Address `serialize:"true" json:"vaultY"`
	ClaimToken       codec.Address `serialize:"true" json:"claimToken"`
	UserAccount      codec.Address `serialize:"true" json:"userAccount"`
	UserOtherAccount codec.Address `serialize:"true" json:"userOtherAccount"`
	UserClaimAccount codec.Address `serialize:"true" json:"userClaimAccount"`
	TokenService     codec.Address `serialize:"true" json:"tokenService"`
	AccountService   codec.Address `serialize:"true" json:"accountService"`
}

func (*AddLiquidity) GetTypeID() uint8 {
	return consts.AddLiquidityID
}

func (a *AddLiquidity) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.PoolKey(a.Pool)):                     state.Read,
		string(storage.TokenAccountKey(a.VaultX)):           state.All,
		string(storage.TokenAccountKey(a.VaultY)):           state.All,
		string(storage.TokenInfoKey(a.ClaimToken)):          state.All,
		string(storage.TokenAccountKey(a.UserAccount)):      state.All,
		string(storage.TokenAccountKey(a.UserOtherAccount)): state.All,
		string(storage.TokenAccountKey(a.UserClaimAccount)): state.All,
	}
}

func (*AddLiquidity) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.PoolChunks,
		storage.TokenAccountChunks,
		storage.TokenAccountChunks,
		storage.TokenInfoChunks,
		storage.TokenAccountChunks,
		storage.TokenAccountChunks,
		storage.TokenAccountChunks,
	}
}

func (a *AddLiquidity) Execute(
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
	if err := gate.CheckInitialized(storage.PoolExists(ctx, mu, a.Pool)); err != nil {
		return nil, err
	}
	pool, err := storage.GetPoolNoController(ctx, mu, a.Pool)
	if err != nil {
		return nil, err
	}

	var inIsX bool
	switch {
	case a.Asset == pool.AssetX && a.OtherAsset == pool.AssetY:
		inIsX = true
	case a.Asset == pool.AssetY && a.OtherAsset == pool.AssetX:
		inIsX = false
	default:
		return nil, ErrOutputUnknownAsset
	}

	poolAddress, err := storage.PoolAddress(pool.AssetX, pool.AssetY)
	if err != nil {
		return nil, err
	}
	if err := gate.CheckDerivedAddresses(
		[2]codec.Address{a.Pool, poolAddress},
		[2]codec.Address{a.VaultX, storage.VaultAddress(poolAddress, pool.AssetX)},
		[2]codec.Address{a.VaultY, storage.VaultAddress(poolAddress, pool.AssetY)},
		[2]codec.Address{a.ClaimToken, storage.ClaimTokenAddress(poolAddress)},
		[2]codec.Address{a.UserAccount, storage.TokenAccountAddress(a.Asset, actor)},
		[2]codec.Address{a.UserOtherAccount, storage.TokenAccountAddress(a.OtherAsset, actor)},
		[2]codec.Address{a.UserClaimAccount, storage.TokenAccountAddress(a.ClaimToken, actor)},
	); err != nil {
		return nil, err
	}
	if err := gate.CheckService(a.TokenService, storage.TokenServiceAddress); err != nil {
		return nil, err
	}
	if err := gate.CheckService(a.AccountService, storage.AccountServiceAddress); err != nil {
		return nil, err
	}

	_, vaultXOwner, reserveX, err := storage.GetTokenAccountNoController(ctx, mu, a.VaultX)
	if err != nil {
		return nil, err
	}
	_, vaultYOwner, reserveY, err := storage.GetTokenAccountNoController(ctx, mu, a.VaultY)
	if err != nil {
		return nil, err
	}
	if err := gate.CheckOwnership(vaultXOwner, poolAddress); err != nil {
		return nil, err
	}
	if err := gate.CheckOwnership(vaultYOwner, poolAddress); err != nil {
		return nil, err
	}

	claimSupply, err := storage.TotalSupply(ctx, mu, a.ClaimToken)
	if err != nil {
		return nil, err
	}

	model, err := pricing.NewConstantProduct(reserveX, reserveY, pool.FeeRate, pool.FeeScale)
	if err != nil {
		return nil, err
	}
	other, minted, err := model.Deposit(a.Amount, a.MaxOther, inIsX, claimSupply)
	if err != nil {
		return nil, err
	}

	vaultIn, vaultOther := a.VaultX, a.VaultY
	if !inIsX {
		vaultIn, vaultOther = a.VaultY, a.VaultX
	}
	if err := storage.TransferAsset(ctx, mu, a.Asset, a.UserAccount, vaultIn, actor, a.Amount); err != nil {
		return nil, err
	}
	if err := storage.TransferAsset(ctx, mu, a.OtherAsset, a.UserOtherAccount, vaultOther, actor, other); err != nil {
		return nil, err
	}
	if _, err := storage.EnsureTokenAccount(ctx, mu, a.ClaimToken, actor); err != nil {
		return nil, err
	}
	if err := storage.MintAsset(ctx, mu, a.ClaimToken, a.UserClaimAccount, poolAddress, minted); err != nil {
		return nil, err
	}

	return &AddLiquidityResult{
		OtherTaken:  other,
		ClaimMinted: minted,
	}, nil
}

func (*AddLiquidity) ComputeUnits(chain.Rules) uint64 {
	return AddLiquidityComputeUnits
}

func (*AddLiquidity) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type AddLiquidityResult struct {
	OtherTaken  uint64 `serialize:"true" json:"otherTaken"`
	ClaimMinted uint64 `serialize:"true" json:"claimMinted"`
}

func (*AddLiquidityResult) GetTypeID() uint8 {
	return consts.AddLiquidityID
}
