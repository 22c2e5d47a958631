// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"

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
	_ chain.Action = (*CreatePool)(nil)
	_ codec.Typed  = (*CreatePoolResult)(nil)
)

// CreatePool allocates the canonical pool record for an unordered asset
// pair together with its two vaults and its claim-token issuer. The
// assets may be supplied in either order; every derived account is
// computed from the canonical order, so both orders resolve to the same
// pool and a second creation fails. Leaving both fee fields zero selects
// the default fee.
type CreatePool struct {
	AssetA   codec.Address `serialize:"true" json:"assetA"`
	AssetB   codec.Address `serialize:"true" json:"assetB"`
	FeeRate  uint64        `serialize:"true" json:"feeRate"`
	FeeScale uint8         `serialize:"true" json:"feeScale"`

	// Account references, fixed positions, canonical order.
	Pool           codec.Address `serialize:"true" json:"pool"`
	VaultX         codec.Address `serialize:"true" json:"vaultX"`
	VaultY         codec.Address `serialize:"true" json:"vaultY"`
	ClaimToken     codec.Address `serialize:"true" json:"claimToken"`
	TokenService   codec.Address `serialize:"true" json:"tokenService"`
	AccountService codec.Address `serialize:"true" json:"accountService"`
}

func (*CreatePool) GetTypeID() uint8 {
	return consts.CreatePoolID
}

func (c *CreatePool) StateKeys(codec.Address, ids.ID) state.Keys {
	poolAddress, err := storage.PoolAddress(c.AssetA, c.AssetB)
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.TokenInfoKey(c.AssetA)):     state.Read,
		string(storage.TokenInfoKey(c.AssetB)):     state.Read,
		string(storage.PoolKey(poolAddress)):       state.All,
		string(storage.TokenAccountKey(c.VaultX)):  state.All,
		string(storage.TokenAccountKey(c.VaultY)):  state.All,
		string(storage.TokenInfoKey(c.ClaimToken)): state.All,
	}
}

func (*CreatePool) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.TokenInfoChunks,
		storage.TokenInfoChunks,
		storage.PoolChunks,
		storage.TokenAccountChunks,
		storage.TokenAccountChunks,
		storage.TokenInfoChunks,
	}
}

func (c *CreatePool) Execute(
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
	// Both fee fields zero means the caller left the fee unspecified.
	feeRate, feeScale := c.FeeRate, c.FeeScale
	if feeRate == 0 && feeScale == 0 {
		feeRate, feeScale = storage.DefaultFeeRate, storage.DefaultFeeScale
	}
	if !pricing.ValidFee(feeRate, feeScale) {
		return nil, ErrOutputInvalidFee
	}
	if !storage.TokenExists(ctx, mu, c.AssetA) {
		return nil, ErrOutputAssetADoesNotExist
	}
	if !storage.TokenExists(ctx, mu, c.AssetB) {
		return nil, ErrOutputAssetBDoesNotExist
	}

	poolAddress, err := storage.PoolAddress(c.AssetA, c.AssetB)
	if err != nil {
		if errors.Is(err, storage.ErrIdenticalAssets) {
			return nil, ErrOutputAssetsIdentical
		}
		return nil, err
	}
	assetX, assetY, err := storage.CanonicalPair(c.AssetA, c.AssetB)
	if err != nil {
		return nil, err
	}
	vaultX := storage.VaultAddress(poolAddress, assetX)
	vaultY := storage.VaultAddress(poolAddress, assetY)
	claimToken := storage.ClaimTokenAddress(poolAddress)

	if err := gate.CheckDerivedAddresses(
		[2]codec.Address{c.Pool, poolAddress},
		[2]codec.Address{c.VaultX, vaultX},
		[2]codec.Address{c.VaultY, vaultY},
		[2]codec.Address{c.ClaimToken, claimToken},
	); err != nil {
		return nil, err
	}
	if err := gate.CheckService(c.TokenService, storage.TokenServiceAddress); err != nil {
		return nil, err
	}
	if err := gate.CheckService(c.AccountService, storage.AccountServiceAddress); err != nil {
		return nil, err
	}
	if err := gate.CheckUninitialized(storage.PoolExists(ctx, mu, poolAddress)); err != nil {
		return nil, err
	}

	// Vaults: zero-balance reserve accounts owned by the pool itself.
	if err := storage.SetTokenAccount(ctx, mu, vaultX, assetX, poolAddress, 0); err != nil {
		return nil, err
	}
	if err := storage.SetTokenAccount(ctx, mu, vaultY, assetY, poolAddress, 0); err != nil {
		return nil, err
	}
	// Claim-token issuer: mint authority is the pool, zero supply.
	if err := storage.SetTokenInfo(
		ctx,
		mu,
		claimToken,
		[]byte(storage.ClaimTokenName),
		[]byte(storage.ClaimTokenSymbol),
		storage.ClaimTokenDecimals,
		[]byte(storage.ClaimTokenMetadata),
		0,
		poolAddress,
	); err != nil {
		return nil, err
	}
	if err := storage.SetPool(ctx, mu, poolAddress, &storage.Pool{
		AssetX:     assetX,
		AssetY:     assetY,
		VaultX:     vaultX,
		VaultY:     vaultY,
		ClaimToken: claimToken,
		FeeRate:    feeRate,
		FeeScale:   feeScale,
	}); err != nil {
		return nil, err
	}

	return &CreatePoolResult{
		Pool:       poolAddress,
		VaultX:     vaultX,
		VaultY:     vaultY,
		ClaimToken: claimToken,
	}, nil
}

func (*CreatePool) ComputeUnits(chain.Rules) uint64 {
	return CreatePoolComputeUnits
}

func (*CreatePool) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type CreatePoolResult struct {
	Pool       codec.Address `serialize:"true" json:"pool"`
	VaultX     codec.Address `serialize:"true" json:"vaultX"`
	VaultY     codec.Address `serialize:"true" json:"vaultY"`
	ClaimToken codec.Address `serialize:"true" json:"claimToken"`
}

func (*CreatePoolResult) GetTypeID() uint8 {
	return consts.CreatePoolID
}
