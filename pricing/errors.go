// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "errors"

var (
	ErrZeroInput = errors.New("zero input")
	ErrOverflow  = errors.New("arithmetic overflow")

	ErrInvalidFee = errors.New("fee fraction is not in [0, 1)")

	ErrDepositExceedsLimit   = errors.New("required deposit exceeds caller limit")
	ErrNothingToWithdraw     = errors.New("no claim tokens outstanding")
	ErrBurnExceedsSupply     = errors.New("burn amount exceeds claim supply")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity for swap")
)
