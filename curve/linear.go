// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"math/big"

	"github.com/got-milkbag/launchvm/consts"
)

var _ Curve = (*Linear)(nil)

// priceScale is the denominator of the linear cost integral, 1e24. It does
// not fit in a uint64 so it is parsed once at package load.
var priceScale, _ = new(big.Int).SetString(consts.LinearPriceScale, 10)

// Linear prices each marginal token at slope*circulating/priceScale, so the
// cumulative cost of c circulating units is slope*c^2/(2*priceScale). Buys
// invert the integral with an integer square root.
type Linear struct {
	slope uint64
}

func NewLinear(slope uint64) *Linear {
	return &Linear{slope: slope}
}

func (l *Linear) QuoteBuy(
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
	if l.slope == 0 {
		return 0, ErrInvalidReserves
	}
	circulating := new(big.Int).SetUint64(consts.LaunchSupply - tokenReserve)
	// Solve cost(c+x) - cost(c) <= in for the largest x:
	// x = floor(sqrt(c^2 + 2*priceScale*in/slope)) - c
	paid := new(big.Int).Lsh(priceScale, 1)
	paid.Mul(paid, new(big.Int).SetUint64(settlementIn))
	paid.Quo(paid, new(big.Int).SetUint64(l.slope))
	target := new(big.Int).Mul(circulating, circulating)
	target.Add(target, paid)
	out := target.Sqrt(target)
	out.Sub(out, circulating)
	if !out.IsUint64() {
		return 0, ErrQuoteOverflow
	}
	quoted := out.Uint64()
	if quoted > tokenReserve {
		return 0, ErrReserveExhausted
	}
	return quoted, nil
}

func (l *Linear) QuoteSell(
	tokenReserve uint64,
	settlementReserve uint64,
	tokenIn uint64,
) (uint64, error) {
	if tokenIn == 0 {
		return 0, ErrAmountZero
	}
	circulating := consts.LaunchSupply - tokenReserve
	if tokenIn > circulating {
		return 0, ErrInvalidReserves
	}
	// slope*(c^2 - (c-in)^2) / (2*priceScale), truncating once on the full
	// difference so rounding never favors the seller
	c := new(big.Int).SetUint64(circulating)
	rem := new(big.Int).SetUint64(circulating - tokenIn)
	num := new(big.Int).Mul(c, c)
	num.Sub(num, new(big.Int).Mul(rem, rem))
	num.Mul(num, new(big.Int).SetUint64(l.slope))
	den := new(big.Int).Lsh(priceScale, 1)
	out := num.Quo(num, den)
	if !out.IsUint64() {
		return 0, ErrQuoteOverflow
	}
	quoted := out.Uint64()
	if quoted > settlementReserve {
		quoted = settlementReserve
	}
	return quoted, nil
}
