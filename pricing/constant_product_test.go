// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestValidFee(t *testing.T) {
	require := require.New(t)

	require.True(ValidFee(0, 0))
	require.True(ValidFee(3, 3))
	require.True(ValidFee(999, 3))
	require.False(ValidFee(1000, 3))
	require.False(ValidFee(1, 0))
	require.False(ValidFee(0, MaxFeeScale+1))
}

func TestFirstDepositSetsRatio(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(0, 0, 3, 3)
	require.NoError(err)

	other, minted, err := model.Deposit(1_000, 500, true, 0)
	require.NoError(err)
	require.Equal(uint64(500), other)
	require.Equal(uint64(1_000), minted)

	reserveX, reserveY := model.Reserves()
	require.Equal(uint64(1_000), reserveX)
	require.Equal(uint64(500), reserveY)
}

func TestFirstDepositRequiresBothLegs(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(0, 0, 3, 3)
	require.NoError(err)

	_, _, err = model.Deposit(1_000, 0, true, 0)
	require.ErrorIs(err, ErrZeroInput)

	_, _, err = model.Deposit(0, 500, true, 0)
	require.ErrorIs(err, ErrZeroInput)
}

func TestDepositTracksReserveRatio(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(1_000, 500, 3, 3)
	require.NoError(err)

	other, minted, err := model.Deposit(100, 50, true, 1_000)
	require.NoError(err)
	require.Equal(uint64(50), other)
	require.Equal(uint64(100), minted)

	reserveX, reserveY := model.Reserves()
	require.Equal(uint64(1_100), reserveX)
	require.Equal(uint64(550), reserveY)
}

func TestDepositExceedsLimit(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(1_000, 500, 3, 3)
	require.NoError(err)

	_, _, err = model.Deposit(100, 49, true, 1_000)
	require.ErrorIs(err, ErrDepositExceedsLimit)

	// Reserves untouched on failure
	reserveX, reserveY := model.Reserves()
	require.Equal(uint64(1_000), reserveX)
	require.Equal(uint64(500), reserveY)
}

func TestDepositSecondaryLeg(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(1_000, 500, 3, 3)
	require.NoError(err)

	// Depositing on the Y leg prices the X leg off the same reserves.
	other, minted, err := model.Deposit(50, 100, false, 1_000)
	require.NoError(err)
	require.Equal(uint64(100), other)
	require.Equal(uint64(50), minted)
}

func TestWithdrawProportional(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(1_100, 550, 3, 3)
	require.NoError(err)

	outX, outY, err := model.Withdraw(500, 1_100)
	require.NoError(err)
	require.Equal(uint64(500), outX)
	require.Equal(uint64(250), outY)

	reserveX, reserveY := model.Reserves()
	require.Equal(uint64(600), reserveX)
	require.Equal(uint64(300), reserveY)
}

func TestWithdrawCannotExceedSupply(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(1_100, 550, 3, 3)
	require.NoError(err)

	_, _, err = model.Withdraw(2_200, 1_100)
	require.ErrorIs(err, ErrBurnExceedsSupply)

	// Reserves untouched on failure
	reserveX, reserveY := model.Reserves()
	require.Equal(uint64(1_100), reserveX)
	require.Equal(uint64(550), reserveY)
}

func TestWithdrawEmptySupply(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(0, 0, 3, 3)
	require.NoError(err)

	_, _, err = model.Withdraw(1, 0)
	require.ErrorIs(err, ErrNothingToWithdraw)
}

func TestSwapConstantProduct(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(1_000, 1_000, 3, 3)
	require.NoError(err)

	// effectiveIn = floor(100*997/1000) = 99
	// amountOut = floor(1000*99/1099) = 90
	out, err := model.Swap(100, true)
	require.NoError(err)
	require.Equal(uint64(90), out)

	reserveX, reserveY := model.Reserves()
	require.Equal(uint64(1_100), reserveX)
	require.Equal(uint64(910), reserveY)
}

func TestSwapEmptyDestination(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(1_000, 0, 3, 3)
	require.NoError(err)

	_, err = model.Swap(100, true)
	require.ErrorIs(err, ErrInsufficientLiquidity)
}

func TestSwapZeroInput(t *testing.T) {
	require := require.New(t)

	model, err := NewConstantProduct(1_000, 1_000, 3, 3)
	require.NoError(err)

	_, err = model.Swap(0, true)
	require.ErrorIs(err, ErrZeroInput)
}

// The pool's reserve product must never decrease across a swap: the fee
// leg stays in the source reserve, so with any nonzero fee the product
// strictly benefits modulo integer rounding.
func TestSwapProductNonDecreasing(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(1701))

	for i := 0; i < 10_000; i++ {
		reserveX := 1 + rng.Uint64()%1_000_000_000
		reserveY := 1 + rng.Uint64()%1_000_000_000
		amountIn := 1 + rng.Uint64()%1_000_000

		model, err := NewConstantProduct(reserveX, reserveY, 3, 3)
		require.NoError(err)

		inIsX := rng.Intn(2) == 0
		if _, err := model.Swap(amountIn, inIsX); err != nil {
			continue
		}

		newX, newY := model.Reserves()
		before := new(uint256.Int).Mul(uint256.NewInt(reserveX), uint256.NewInt(reserveY))
		after := new(uint256.Int).Mul(uint256.NewInt(newX), uint256.NewInt(newY))
		require.True(after.Cmp(before) >= 0, "product decreased: (%d,%d) -> (%d,%d) in=%d", reserveX, reserveY, newX, newY, amountIn)
	}
}

func TestMulDivOverflow(t *testing.T) {
	require := require.New(t)

	// (2^64-1)^2 / 1 cannot be represented in a uint64.
	_, err := mulDiv(^uint64(0), ^uint64(0), 1)
	require.ErrorIs(err, ErrOverflow)

	v, err := mulDiv(^uint64(0), ^uint64(0), ^uint64(0))
	require.NoError(err)
	require.Equal(^uint64(0), v)
}
