// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve implements the bonding-curve pricing shapes. Quotes are pure
// functions of the reserves; they never touch state and never round in the
// trader's favor.
package curve

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/got-milkbag/launchvm/consts"
)

// Shape identifiers persisted in CurveState. Zero is deliberately invalid so
// an uninitialized record can never quote.
const (
	InvalidShapeID uint8 = iota
	ExponentialID
	LinearID
)

// Curve prices trades against a (tokenReserve, settlementReserve) pair.
//
// QuoteBuy returns the token units released for [settlementIn] settlement
// units after fees. QuoteSell returns the settlement units released for
// [tokenIn] token units, before fees. Both truncate toward zero.
type Curve interface {
	QuoteBuy(tokenReserve uint64, settlementReserve uint64, settlementIn uint64) (uint64, error)
	QuoteSell(tokenReserve uint64, settlementReserve uint64, tokenIn uint64) (uint64, error)
}

// Shapes maps a shape identifier to its constructor. [parameter] is the
// per-token constant frozen at registration: the virtual settlement seed for
// the exponential shape, the slope for the linear shape.
var Shapes = map[uint8]func(parameter uint64) Curve{
	ExponentialID: func(parameter uint64) Curve {
		return NewExponential(parameter)
	},
	LinearID: func(parameter uint64) Curve {
		return NewLinear(parameter)
	},
}

// New returns the pricing model for [shapeID], or ErrUnknownShape.
func New(shapeID uint8, parameter uint64) (Curve, error) {
	constructor, ok := Shapes[shapeID]
	if !ok {
		return nil, ErrUnknownShape
	}
	return constructor(parameter), nil
}

// mulDiv returns a*b/c with a 256-bit intermediate, truncating toward zero.
// The second return is false when the result does not fit in a uint64.
func mulDiv(a uint64, b uint64, c uint64) (uint64, bool) {
	if c == 0 {
		return 0, false
	}
	num := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	num.Quo(num, new(big.Int).SetUint64(c))
	if !num.IsUint64() {
		return 0, false
	}
	return num.Uint64(), true
}

// TradePrices returns the advisory spot-price caches recorded after a trade:
// settlement units per [consts.PriceCacheScale] token units and the inverse.
// These are best-effort; on overflow the cache is zeroed rather than failing
// the trade.
func TradePrices(settlementAmount uint64, tokenAmount uint64) (uint64, uint64) {
	if settlementAmount == 0 || tokenAmount == 0 {
		return 0, 0
	}
	price, ok := mulDiv(settlementAmount, consts.PriceCacheScale, tokenAmount)
	if !ok {
		price = 0
	}
	inverse, ok := mulDiv(tokenAmount, consts.PriceCacheScale, settlementAmount)
	if !ok {
		inverse = 0
	}
	return price, inverse
}

// MigrationThreshold converts the USD market-cap target into a settlement
// reserve threshold using [referencePrice] (micro-USD per whole native coin).
// The threshold is fixed into CurveState at registration and later feed
// updates never move it.
func MigrationThreshold(targetUSD uint64, referencePrice uint64) uint64 {
	if referencePrice == 0 {
		referencePrice = consts.DefaultReferencePrice
	}
	microPerUSD := decimal.NewFromInt(1_000_000)
	baseUnitsPerCoin := decimal.New(1, int32(consts.Decimals))
	coins := decimal.NewFromUint64(targetUSD).Mul(microPerUSD).Div(decimal.NewFromUint64(referencePrice))
	threshold := coins.Mul(baseUnitsPerCoin).BigInt()
	if !threshold.IsUint64() {
		return ^uint64(0)
	}
	return threshold.Uint64()
}
