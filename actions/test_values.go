// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// Values shared across action tests. Reserves are kept small so expected
// quotes stay hand-checkable.
const (
	TokenOneName     = "LaunchCoin"
	TokenOneSymbol   = "LCN"
	TokenOneMetadata = "The first launch"

	// Exponential curve seed used by trade tests
	TestTokenReserve    uint64 = 1_000_000
	TestVirtualConstant uint64 = 1_000_000

	// A threshold no test trade can reach unless it wants to
	UnreachableThreshold uint64 = 1 << 62
)
