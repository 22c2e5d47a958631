// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/state"

	"github.com/pairvm/pairvm/gate"
	"github.com/pairvm/pairvm/pricing"
	"github.com/pairvm/pairvm/storage"
)

func TestAddLiquidity(t *testing.T) {
	req := require.New(t)
	store := chaintest.NewInMemoryStore()

	actor, err := createAddressWithSameDigits(1)
	req.NoError(err)

	refs, err := derivePoolRefs(tokenOneAddress, tokenTwoAddress)
	req.NoError(err)
	userAccountX := storage.TokenAccountAddress(refs.assetX, actor)
	userAccountY := storage.TokenAccountAddress(refs.assetY, actor)
	userClaimAccount := storage.TokenAccountAddress(refs.claimToken, actor)

	setupActions := []chain.Action{
		&CreateToken{
			Name:     []byte(TokenOneName),
			Symbol:   []byte(TokenOneSymbol),
			Decimals: TokenOneDecimals,
			Metadata: []byte(TokenOneMetadata),
		},
		&CreateToken{
			Name:     []byte(TokenTwoName),
			Symbol:   []byte(TokenTwoSymbol),
			Decimals: TokenTwoDecimals,
			Metadata: []byte(TokenTwoMetadata),
		},
		&MintToken{
			Token: tokenOneAddress,
			To:    actor,
			Value: 10_000,
		},
		&MintToken{
			Token: tokenTwoAddress,
			To:    actor,
			Value: 10_000,
		},
	}
	for _, action := range setupActions {
		_, err := action.Execute(context.Background(), nil, store, 0, actor, ids.Empty)
		req.NoError(err)
	}

	preCreation := chaintest.ActionTest{
		Name: "pool must exist",
		Action: &AddLiquidity{
			Asset:      refs.assetX,
			OtherAsset: refs.assetY,
			Amount:     1_000,
			MaxOther:   500,
			Pool:       refs.pool,
		},
		ExpectedErr: gate.ErrNotInitialized,
		State:       store,
		Actor:       actor,
	}
	preCreation.Run(context.Background(), t)

	_, err = (&CreatePool{
		AssetA:         tokenOneAddress,
		AssetB:         tokenTwoAddress,
		FeeRate:        TestFeeRate,
		FeeScale:       TestFeeScale,
		Pool:           refs.pool,
		VaultX:         refs.vaultX,
		VaultY:         refs.vaultY,
		ClaimToken:     refs.claimToken,
		TokenService:   storage.TokenServiceAddress,
		AccountService: storage.AccountServiceAddress,
	}).Execute(context.Background(), nil, store, 0, actor, ids.Empty)
	req.NoError(err)

	unknownAsset, err := createAddressWithSameDigits(7)
	req.NoError(err)
	bogus, err := createAddressWithSameDigits(8)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "deposit asset must belong to the pool",
			Action: &AddLiquidity{
				Asset:      unknownAsset,
				OtherAsset: refs.assetY,
				Amount:     1_000,
				MaxOther:   500,
				Pool:       refs.pool,
			},
			ExpectedErr: ErrOutputUnknownAsset,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "user account reference must match the derived address",
			Action: &AddLiquidity{
				Asset:            refs.assetX,
				OtherAsset:       refs.assetY,
				Amount:           1_000,
				MaxOther:         500,
				Pool:             refs.pool,
				VaultX:           refs.vaultX,
				VaultY:           refs.vaultY,
				ClaimToken:       refs.claimToken,
				UserAccount:      bogus,
				UserOtherAccount: userAccountY,
				UserClaimAccount: userClaimAccount,
				TokenService:     storage.TokenServiceAddress,
				AccountService:   storage.AccountServiceAddress,
			},
			ExpectedErr: gate.ErrInvalidDerivedAddress,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "first deposit takes the limit exactly",
			Action: &AddLiquidity{
				Asset:            refs.assetX,
				OtherAsset:       refs.assetY,
				Amount:           1_000,
				MaxOther:         500,
				Pool:             refs.pool,
				VaultX:           refs.vaultX,
				VaultY:           refs.vaultY,
				ClaimToken:       refs.claimToken,
				UserAccount:      userAccountX,
				UserOtherAccount: userAccountY,
				UserClaimAccount: userClaimAccount,
				TokenService:     storage.TokenServiceAddress,
				AccountService:   storage.AccountServiceAddress,
			},
			ExpectedOutputs: &AddLiquidityResult{
				OtherTaken:  500,
				ClaimMinted: 1_000,
			},
			State: store,
			Actor: actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				reserveX, err := storage.Balance(ctx, mu, refs.vaultX)
				require.NoError(err)
				require.Equal(uint64(1_000), reserveX)
				reserveY, err := storage.Balance(ctx, mu, refs.vaultY)
				require.NoError(err)
				require.Equal(uint64(500), reserveY)
				claimBalance, err := storage.Balance(ctx, mu, userClaimAccount)
				require.NoError(err)
				require.Equal(uint64(1_000), claimBalance)
				supply, err := storage.TotalSupply(ctx, mu, refs.claimToken)
				require.NoError(err)
				require.Equal(uint64(1_000), supply)
				balanceX, err := storage.Balance(ctx, mu, userAccountX)
				require.NoError(err)
				require.Equal(uint64(9_000), balanceX)
				balanceY, err := storage.Balance(ctx, mu, userAccountY)
				require.NoError(err)
				require.Equal(uint64(9_500), balanceY)
			},
		},
		{
			Name: "matching leg cannot exceed the caller's limit",
			Action: &AddLiquidity{
				Asset:            refs.assetX,
				OtherAsset:       refs.assetY,
				Amount:           100,
				MaxOther:         49,
				Pool:             refs.pool,
				VaultX:           refs.vaultX,
				VaultY:           refs.vaultY,
				ClaimToken:       refs.claimToken,
				UserAccount:      userAccountX,
				UserOtherAccount: userAccountY,
				UserClaimAccount: userClaimAccount,
				TokenService:     storage.TokenServiceAddress,
				AccountService:   storage.AccountServiceAddress,
			},
			ExpectedErr: pricing.ErrDepositExceedsLimit,
			State:       store,
			Actor:       actor,
		},
		{
			Name: "later deposits price off the current reserves",
			Action: &AddLiquidity{
				Asset:            refs.assetX,
				OtherAsset:       refs.assetY,
				Amount:           100,
				MaxOther:         50,
				Pool:             refs.pool,
				VaultX:           refs.vaultX,
				VaultY:           refs.vaultY,
				ClaimToken:       refs.claimToken,
				UserAccount:      userAccountX,
				UserOtherAccount: userAccountY,
				UserClaimAccount: userClaimAccount,
				TokenService:     storage.TokenServiceAddress,
				AccountService:   storage.AccountServiceAddress,
			},
			ExpectedOutputs: &AddLiquidityResult{
				OtherTaken:  50,
				ClaimMinted: 100,
			},
			State: store,
			Actor: actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				reserveX, err := storage.Balance(ctx, mu, refs.vaultX)
				require.NoError(err)
				require.Equal(uint64(1_100), reserveX)
				reserveY, err := storage.Balance(ctx, mu, refs.vaultY)
				require.NoError(err)
				require.Equal(uint64(550), reserveY)
				supply, err := storage.TotalSupply(ctx, mu, refs.claimToken)
				require.NoError(err)
				require.Equal(uint64(1_100), supply)
			},
		},
		{
			Name: "deposit on the other leg prices off the same reserves",
			Action: &AddLiquidity{
				Asset:            refs.assetY,
				OtherAsset:       refs.assetX,
				Amount:           55,
				MaxOther:         110,
				Pool:             refs.pool,
				VaultX:           refs.vaultX,
				VaultY:           refs.vaultY,
				ClaimToken:       refs.claimToken,
				UserAccount:      userAccountY,
				UserOtherAccount: userAccountX,
				UserClaimAccount: userClaimAccount,
				TokenService:     storage.TokenServiceAddress,
				AccountService:   storage.AccountServiceAddress,
			},
			ExpectedOutputs: &AddLiquidityResult{
				OtherTaken:  110,
				ClaimMinted: 55,
			},
			State: store,
			Actor: actor,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
