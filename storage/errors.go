// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrIdenticalAssets = errors.New("assets are identical")

	// Asset ledger failures
	ErrTokenDoesNotExist   = errors.New("token does not exist")
	ErrAccountDoesNotExist = errors.New("token account does not exist")
	ErrAccountExists       = errors.New("token account already exists")
	ErrAssetMismatch       = errors.New("account asset does not match")
	ErrOwnerMismatch       = errors.New("account owner does not match")
	ErrAuthorityMismatch   = errors.New("authority does not match")
	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrInvalidBalance = errors.New("invalid balance")
)
