// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/hypersdk/codec"

	"github.com/pairvm/pairvm/storage"
)

const (
	TokenOneName     = "Aurum"
	TokenOneSymbol   = "AUR"
	TokenOneDecimals = 9
	TokenOneMetadata = "A gold-backed test token" // #nosec G101

	TokenTwoName     = "Boreal"
	TokenTwoSymbol   = "BOR"
	TokenTwoDecimals = 9
	TokenTwoMetadata = "A northern test token" // #nosec G101

	TooLargeTokenSymbol = "AAAAAAAAA"

	TestFeeRate  = 3
	TestFeeScale = 3
)

var (
	tokenOneAddress = storage.TokenAddress([]byte(TokenOneName), []byte(TokenOneSymbol), TokenOneDecimals, []byte(TokenOneMetadata))
	tokenTwoAddress = storage.TokenAddress([]byte(TokenTwoName), []byte(TokenTwoSymbol), TokenTwoDecimals, []byte(TokenTwoMetadata))
)

func createAddressWithSameDigits(num uint8) (codec.Address, error) {
	addrSlice := make([]byte, codec.AddressLen)
	for i := range addrSlice {
		addrSlice[i] = num
	}
	return codec.ToAddress(addrSlice)
}

// poolRefs bundles every derived account of one pool in canonical order.
type poolRefs struct {
	pool       codec.Address
	assetX     codec.Address
	assetY     codec.Address
	vaultX     codec.Address
	vaultY     codec.Address
	claimToken codec.Address
}

func derivePoolRefs(assetA codec.Address, assetB codec.Address) (poolRefs, error) {
	pool, err := storage.PoolAddress(assetA, assetB)
	if err != nil {
		return poolRefs{}, err
	}
	assetX, assetY, err := storage.CanonicalPair(assetA, assetB)
	if err != nil {
		return poolRefs{}, err
	}
	return poolRefs{
		pool:       pool,
		assetX:     assetX,
		assetY:     assetY,
		vaultX:     storage.VaultAddress(pool, assetX),
		vaultY:     storage.VaultAddress(pool, assetY),
		claimToken: storage.ClaimTokenAddress(pool),
	}, nil
}
