// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// Basis-point denominator shared by every fee computation.
const BpsDenominator uint64 = 10_000

// Protocol fee schedule. These are protocol-wide and apply to all listed
// tokens; the per-token curve parameters are frozen into CurveState at
// registration instead.
const (
	// TradingFeeBps is charged on the settlement side of every curve trade
	// (on the input for buys, on the gross output for sells).
	TradingFeeBps uint64 = 100

	// MigrationFeeBps is skimmed from the settlement reserve once, at the
	// moment a token's liquidity migrates to the AMM.
	MigrationFeeBps uint64 = 300

	// ListingFee is the flat native-coin fee charged when launching a token.
	ListingFee uint64 = 1_000_000_000

	// DirectReferralBps and IndirectReferralBps are carved out of the
	// trading fee (never added on top of it) for the trader's referrer and
	// that referrer's own referrer.
	DirectReferralBps   uint64 = 1_500
	IndirectReferralBps uint64 = 100

	// MinReferralPayout gates ClaimReferral to keep dust claims off-chain.
	MinReferralPayout uint64 = 100_000_000
)

// Curve parameters.
const (
	// LaunchSupply is the fixed total supply minted to the curve vault for
	// every launched token: 1B tokens at 9 decimals.
	LaunchSupply uint64 = 1_000_000_000_000_000_000

	// MinTradeSize rejects dust trades whose output would round to nothing.
	MinTradeSize uint64 = 1_000

	// ExponentialVirtualBase seeds the virtual settlement reserve for the
	// exponential shape: 3,000 native coins at 9 decimals.
	ExponentialVirtualBase uint64 = 3_000_000_000_000

	// LinearSlope parameterizes the linear shape; the cumulative cost of c
	// circulating units is LinearSlope*c^2/(2*LinearPriceScale).
	LinearSlope      uint64 = 40
	LinearPriceScale        = "1000000000000000000000000" // 1e24, exceeds uint64

	// PriceCacheScale scales the advisory last-trade price cached in
	// CurveState (settlement units per PriceCacheScale token units).
	PriceCacheScale uint64 = 1_000_000_000
)

// Migration parameters.
const (
	// MigrationTargetUSD is the USD-denominated market-cap target; the
	// per-token settlement threshold is fixed at registration as
	// MigrationTargetUSD divided by the reference price of the native coin.
	MigrationTargetUSD uint64 = 69_000

	// DefaultReferencePrice is used until the price feed posts a value:
	// micro-USD per whole native coin.
	DefaultReferencePrice uint64 = 5_000_000
)

// AMM parameters (Uniswap V2 conventions).
const (
	// AmmSwapFeeNum is the fee-adjusted input multiplier out of 1000: a
	// value of 997 charges 30 bps per swap, accrued to the pool reserves.
	AmmSwapFeeNum uint64 = 997
)
