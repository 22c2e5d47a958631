// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	CreateTokenComputeUnits   = 1
	MintTokenComputeUnits     = 1
	TransferTokenComputeUnits = 1

	CreatePoolComputeUnits      = 2
	AddLiquidityComputeUnits    = 2
	RemoveLiquidityComputeUnits = 2
	SwapComputeUnits            = 2
)
