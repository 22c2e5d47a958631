// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// Token-related errors
	ErrOutputValueZero             = errors.New("value is zero")
	ErrOutputTokenNameEmpty        = errors.New("token name is empty")
	ErrOutputTokenNameTooLarge     = errors.New("token name is too large")
	ErrOutputTokenSymbolEmpty      = errors.New("token symbol is empty")
	ErrOutputTokenSymbolTooLarge   = errors.New("token symbol is too large")
	ErrOutputTokenMetadataEmpty    = errors.New("token metadata is empty")
	ErrOutputTokenMetadataTooLarge = errors.New("token metadata is too large")
	ErrOutputTokenDecimalsTooHigh  = errors.New("token decimals are too high")
	ErrOutputTokenAlreadyExists    = errors.New("token already exists")
	ErrOutputTokenDoesNotExist     = errors.New("token does not exist")

	// Pool-related errors
	ErrOutputInvalidFee               = errors.New("fee fraction is not in [0, 1)")
	ErrOutputAssetADoesNotExist       = errors.New("asset A does not exist")
	ErrOutputAssetBDoesNotExist       = errors.New("asset B does not exist")
	ErrOutputAssetsIdentical          = errors.New("pool assets are identical")
	ErrOutputUnknownAsset             = errors.New("asset does not belong to this pool")
	ErrOutputSlippageExceeded         = errors.New("swap output below caller minimum")
	ErrOutputWithdrawBelowMinimum     = errors.New("withdraw output below caller minimum")
	ErrOutputInsufficientClaimBalance = errors.New("insufficient claim token balance")
)
