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
	_ chain.Action = (*RemoveLiquidity)(nil)
	_ codec.Typed  = (*RemoveLiquidityResult)(nil)
)

// RemoveLiquidity burns [BurnAmount] claim tokens and pays out the
// proportional share of both reserves, floored, to the actor. The caller
// protects against stale reserves with per-leg minimums in canonical
// order.
type RemoveLiquidity struct {
	BurnAmount uint64 `serialize:"true" json:"burnAmount"`
	MinAmountX uint64 `serialize:"true" json:"minAmountX"`
	MinAmountY uint64 `serialize:"true" json:"minAmountY"`

	// Account references, fixed positions, canonical order.
	Pool             codec.Address `serialize:"true" json:"pool"`
	VaultX           codec.Address `serialize:"true" json:"vaultX"`
	VaultY           codec.Address `serialize:"true" json:"vaultY"`
	ClaimToken       codec.Address `serialize:"true" json:"claimToken"`
	UserAccountX     codec.Address `serialize:"true" json:"userAccountX"`
	UserAccountY     codec.Address `serialize:"true" json:"userAccountY"`
	UserClaimAccount codec.Address `serialize:"true" json:"userClaimAccount"`
	TokenService     codec.Address `serialize:"true" json:"tokenService"`
	AccountService   codec.Address `serialize:"true" json:"accountService"`
}

func (*RemoveLiquidity) GetTypeID() uint8 {
	return consts.RemoveLiquidityID
}

func (r *RemoveLiquidity) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.PoolKey(r.Pool)):                     state.Read,
		string(storage.TokenAccountKey(r.VaultX)):           state.All,
		string(storage.TokenAccountKey(r.VaultY)):           state.All,
		string(storage.TokenInfoKey(r.ClaimToken)):          state.All,
		string(storage.TokenAccountKey(r.UserAccountX)):     state.All,
		string(storage.TokenAccountKey(r.UserAccountY)):     state.All,
		string(storage.TokenAccountKey(r.UserClaimAccount)): state.All,
	}
}

func (*RemoveLiquidity) StateKeysMaxChunks() []uint16 {
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

func (r *RemoveLiquidity) Execute(
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
	if err := gate.CheckInitialized(storage.PoolExists(ctx, mu, r.Pool)); err != nil {
		return nil, err
	}
	pool, err := storage.GetPoolNoController(ctx, mu, r.Pool)
	if err != nil {
		return nil, err
	}

	poolAddress, err := storage.PoolAddress(pool.AssetX, pool.AssetY)
	if err != nil {
		return nil, err
	}
	if err := gate.CheckDerivedAddresses(
		[2]codec.Address{r.Pool, poolAddress},
		[2]codec.Address{r.VaultX, storage.VaultAddress(poolAddress, pool.AssetX)},
		[2]codec.Address{r.VaultY, storage.VaultAddress(poolAddress, pool.AssetY)},
		[2]codec.Address{r.ClaimToken, storage.ClaimTokenAddress(poolAddress)},
		[2]codec.Address{r.UserAccountX, storage.TokenAccountAddress(pool.AssetX, actor)},
		[2]codec.Address{r.UserAccountY, storage.TokenAccountAddress(pool.AssetY, actor)},
		[2]codec.Address{r.UserClaimAccount, storage.TokenAccountAddress(r.ClaimToken, actor)},
	); err != nil {
		return nil, err
	}
	if err := gate.CheckService(r.TokenService, storage.TokenServiceAddress); err != nil {
		return nil, err
	}
	if err := gate.CheckService(r.AccountService, storage.AccountServiceAddress); err != nil {
		return nil, err
	}

	_, vaultXOwner, reserveX, err := storage.GetTokenAccountNoController(ctx, mu, r.VaultX)
	if err != nil {
		return nil, err
	}
	_, vaultYOwner, reserveY, err := storage.GetTokenAccountNoController(ctx, mu, r.VaultY)
	if err != nil {
		return nil, err
	}
	if err := gate.CheckOwnership(vaultXOwner, poolAddress); err != nil {
		return nil, err
	}
	if err := gate.CheckOwnership(vaultYOwner, poolAddress); err != nil {
		return nil, err
	}

	claimSupply, err := storage.TotalSupply(ctx, mu, r.ClaimToken)
	if err != nil {
		return nil, err
	}
	claimBalance, err := storage.Balance(ctx, mu, r.UserClaimAccount)
	if err != nil {
		return nil, err
	}
	if claimBalance < r.BurnAmount {
		return nil, ErrOutputInsufficientClaimBalance
	}

	model, err := pricing.NewConstantProduct(reserveX, reserveY, pool.FeeRate, pool.FeeScale)
	if err != nil {
		return nil, err
	}
	outX, outY, err := model.Withdraw(r.BurnAmount, claimSupply)
	if err != nil {
		return nil, err
	}
	if outX < r.MinAmountX || outY < r.MinAmountY {
		return nil, ErrOutputWithdrawBelowMinimum
	}

	if err := storage.BurnAsset(ctx, mu, r.ClaimToken, r.UserClaimAccount, actor, poolAddress, r.BurnAmount); err != nil {
		return nil, err
	}
	if _, err := storage.EnsureTokenAccount(ctx, mu, pool.AssetX, actor); err != nil {
		return nil, err
	}
	if _, err := storage.EnsureTokenAccount(ctx, mu, pool.AssetY, actor); err != nil {
		return nil, err
	}
	if err := storage.TransferAsset(ctx, mu, pool.AssetX, r.VaultX, r.UserAccountX, poolAddress, outX); err != nil {
		return nil, err
	}
	if err := storage.TransferAsset(ctx, mu, pool.AssetY, r.VaultY, r.UserAccountY, poolAddress, outY); err != nil {
		return nil, err
	}

	return &RemoveLiquidityResult{
		AmountX: outX,
		AmountY: outY,
	}, nil
}

func (*RemoveLiquidity) ComputeUnits(chain.Rules) uint64 {
	return RemoveLiquidityComputeUnits
}

func (*RemoveLiquidity) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type RemoveLiquidityResult struct {
	AmountX uint64 `serialize:"true" json:"amountX"`
	AmountY uint64 `serialize:"true" json:"amountY"`
}

func (*RemoveLiquidityResult) GetTypeID() uint8 {
	return consts.RemoveLiquidityID
}
