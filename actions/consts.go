// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// TODO: tune compute units via benchmarks
const (
	TransferComputeUnits          = 1
	LaunchTokenComputeUnits       = 5
	BuyComputeUnits               = 5
	SellComputeUnits              = 5
	CurveQuoteComputeUnits        = 2
	SetReferralComputeUnits       = 1
	ClaimReferralComputeUnits     = 2
	TransferTokenComputeUnits     = 1
	AmmSwapComputeUnits           = 5
	SetReferencePriceComputeUnits = 1
)

const MaxMemoSize = 256
