// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import "math/big"

var _ Curve = (*Exponential)(nil)

// Exponential prices trades as a constant product over a virtually seeded
// settlement reserve. The virtual seed sets a nonzero opening price and is
// never paid out: sells can drain at most the real settlement reserve.
type Exponential struct {
	virtualConstant uint64
}

func NewExponential(virtualConstant uint64) *Exponential {
	return &Exponential{virtualConstant: virtualConstant}
}

func (e *Exponential) QuoteBuy(
	tokenReserve uint64,
	settlementReserve uint64,
	settlementIn uint64,
) (uint64, error) {
	if settlementIn == 0 {
		return 0, ErrAmountZero
	}
	if tokenReserve == 0 {
		return 0, ErrReserveExhausted
	}
	vRes := new(big.Int).Add(
		new(big.Int).SetUint64(settlementReserve),
		new(big.Int).SetUint64(e.virtualConstant),
	)
	if vRes.Sign() == 0 {
		return 0, ErrInvalidReserves
	}
	in := new(big.Int).SetUint64(settlementIn)
	// tokenOut = tokenReserve * in / (vRes + in)
	num := new(big.Int).Mul(new(big.Int).SetUint64(tokenReserve), in)
	den := new(big.Int).Add(vRes, in)
	out := num.Quo(num, den)
	if !out.IsUint64() {
		return 0, ErrQuoteOverflow
	}
	return out.Uint64(), nil
}

func (e *Exponential) QuoteSell(
	tokenReserve uint64,
	settlementReserve uint64,
	tokenIn uint64,
) (uint64, error) {
	if tokenIn == 0 {
		return 0, ErrAmountZero
	}
	vRes := new(big.Int).Add(
		new(big.Int).SetUint64(settlementReserve),
		new(big.Int).SetUint64(e.virtualConstant),
	)
	// out = vRes * tokenIn / (tokenReserve + tokenIn)
	num := new(big.Int).Mul(vRes, new(big.Int).SetUint64(tokenIn))
	den := new(big.Int).Add(
		new(big.Int).SetUint64(tokenReserve),
		new(big.Int).SetUint64(tokenIn),
	)
	if den.Sign() == 0 {
		return 0, ErrInvalidReserves
	}
	out := num.Quo(num, den)
	if !out.IsUint64() {
		return 0, ErrQuoteOverflow
	}
	quoted := out.Uint64()
	// The virtual seed is a price floor, not withdrawable liquidity.
	if quoted > settlementReserve {
		quoted = settlementReserve
	}
	return quoted, nil
}
