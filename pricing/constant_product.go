// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"github.com/holiman/uint256"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// MaxFeeScale bounds the fee denominator to 10^12, well inside uint64
// range.
const MaxFeeScale uint8 = 12

// ConstantProduct holds one pool's reserves and fee and implements the
// x*y=k arithmetic policies. All ratio computations floor and widen to
// 256 bits for the intermediate multiply, so exact proportionality never
// depends on float rounding or silent wraparound. Methods mutate the
// reserves only after every check has passed.
type ConstantProduct struct {
	reserveX uint64
	reserveY uint64
	feeRate  uint64
	feeScale uint8
}

func NewConstantProduct(reserveX uint64, reserveY uint64, feeRate uint64, feeScale uint8) (*ConstantProduct, error) {
	if !ValidFee(feeRate, feeScale) {
		return nil, ErrInvalidFee
	}
	return &ConstantProduct{
		reserveX: reserveX,
		reserveY: reserveY,
		feeRate:  feeRate,
		feeScale: feeScale,
	}, nil
}

// ValidFee reports whether feeRate / 10^feeScale is a fraction in [0, 1).
func ValidFee(feeRate uint64, feeScale uint8) bool {
	if feeScale > MaxFeeScale {
		return false
	}
	return feeRate < pow10(feeScale)
}

// Deposit computes the matching amount of the other leg and the claim
// tokens to mint for a deposit of [amount] on the [inIsX] leg. On the
// first deposit the depositor sets the price ratio: the other leg takes
// [maxOther] exactly. Afterwards the other leg is priced off the
// pre-transaction reserves and must not exceed [maxOther]. Minted claim
// tokens always equal [amount], establishing a 1:1 rate at genesis and
// tracking the caller's named leg thereafter.
func (c *ConstantProduct) Deposit(amount uint64, maxOther uint64, inIsX bool, claimSupply uint64) (uint64, uint64, error) {
	if amount == 0 {
		return 0, 0, ErrZeroInput
	}
	reserveIn, reserveOut := c.oriented(inIsX)

	var other uint64
	if reserveIn == 0 && reserveOut == 0 {
		if maxOther == 0 {
			return 0, 0, ErrZeroInput
		}
		other = maxOther
	} else {
		var err error
		other, err = mulDiv(amount, reserveOut, reserveIn)
		if err != nil {
			return 0, 0, err
		}
		if other > maxOther {
			return 0, 0, ErrDepositExceedsLimit
		}
	}

	newIn, err := smath.Add(reserveIn, amount)
	if err != nil {
		return 0, 0, err
	}
	newOut, err := smath.Add(reserveOut, other)
	if err != nil {
		return 0, 0, err
	}
	if _, err := smath.Add(claimSupply, amount); err != nil {
		return 0, 0, err
	}
	c.setOriented(newIn, newOut, inIsX)
	return other, amount, nil
}

// Withdraw computes both payouts for burning [burn] claim tokens out of
// [claimSupply].
func (c *ConstantProduct) Withdraw(burn uint64, claimSupply uint64) (uint64, uint64, error) {
	if burn == 0 {
		return 0, 0, ErrZeroInput
	}
	if claimSupply == 0 {
		return 0, 0, ErrNothingToWithdraw
	}
	if burn > claimSupply {
		return 0, 0, ErrBurnExceedsSupply
	}
	outX, err := mulDiv(burn, c.reserveX, claimSupply)
	if err != nil {
		return 0, 0, err
	}
	outY, err := mulDiv(burn, c.reserveY, claimSupply)
	if err != nil {
		return 0, 0, err
	}
	c.reserveX -= outX
	c.reserveY -= outY
	return outX, outY, nil
}

// Swap computes the constant-product output for [amountIn] on the
// [inIsX] leg, with the fee deducted from the input before the invariant
// applies.
func (c *ConstantProduct) Swap(amountIn uint64, inIsX bool) (uint64, error) {
	if amountIn == 0 {
		return 0, ErrZeroInput
	}
	reserveIn, reserveOut := c.oriented(inIsX)
	if reserveOut == 0 {
		return 0, ErrInsufficientLiquidity
	}

	feeDenominator := pow10(c.feeScale)
	effectiveIn, err := mulDiv(amountIn, feeDenominator-c.feeRate, feeDenominator)
	if err != nil {
		return 0, err
	}
	if effectiveIn == 0 {
		return 0, ErrZeroInput
	}
	newIn, err := smath.Add(reserveIn, effectiveIn)
	if err != nil {
		return 0, err
	}
	amountOut, err := mulDiv(reserveOut, effectiveIn, newIn)
	if err != nil {
		return 0, err
	}
	if amountOut >= reserveOut {
		return 0, ErrInsufficientLiquidity
	}

	// The full input, fee leg included, lands in the source reserve.
	newReserveIn, err := smath.Add(reserveIn, amountIn)
	if err != nil {
		return 0, err
	}
	c.setOriented(newReserveIn, reserveOut-amountOut, inIsX)
	return amountOut, nil
}

// Reserves returns the current (X, Y) reserves.
func (c *ConstantProduct) Reserves() (uint64, uint64) {
	return c.reserveX, c.reserveY
}

func (c *ConstantProduct) oriented(inIsX bool) (uint64, uint64) {
	if inIsX {
		return c.reserveX, c.reserveY
	}
	return c.reserveY, c.reserveX
}

func (c *ConstantProduct) setOriented(reserveIn uint64, reserveOut uint64, inIsX bool) {
	if inIsX {
		c.reserveX, c.reserveY = reserveIn, reserveOut
	} else {
		c.reserveX, c.reserveY = reserveOut, reserveIn
	}
}

// mulDiv returns floor(a*b/denominator) with a 256-bit intermediate.
func mulDiv(a uint64, b uint64, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, ErrZeroInput
	}
	z := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	z.Div(z, uint256.NewInt(denominator))
	if !z.IsUint64() {
		return 0, ErrOverflow
	}
	return z.Uint64(), nil
}

func pow10(scale uint8) uint64 {
	v := uint64(1)
	for i := uint8(0); i < scale; i++ {
		v *= 10
	}
	return v
}
