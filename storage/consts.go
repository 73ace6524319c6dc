// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/utils"

	"github.com/got-milkbag/launchvm/consts"
)

// Key prefixes
const (
	// Required for StateManager
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// Required for LaunchVM
	balancePrefix
	tokenInfoPrefix
	tokenAccountBalancePrefix
	curvePrefix
	referrerPrefix
	referralRewardPrefix
	ammPoolPrefix
	referencePricePrefix
)

// Chunks
const (
	BalanceChunks             uint16 = 1
	TokenInfoChunks           uint16 = 2
	TokenAccountBalanceChunks uint16 = 1
	CurveChunks               uint16 = 1
	ReferrerChunks            uint16 = 1
	ReferralRewardChunks      uint16 = 1
	AmmPoolChunks             uint16 = 1
	ReferencePriceChunks      uint16 = 1
)

// Related to action invariants
const (
	MaxTokenNameSize     = 64
	MaxTokenSymbolSize   = 8
	MaxTokenMetadataSize = 256
)

// All AMM liquidity receipts carry the following data
const (
	LPTokenName     = "Launch-LP" // #nosec G101
	LPTokenSymbol   = "LLP"
	LPTokenMetadata = "A migrated launch pool receipt"
)

// Module accounts. These are plain addresses with no known private key
// except FeedAddress, whose key is held by the protocol's price feed.
var (
	// VaultAddress custodies every listed token's reserve and the
	// settlement balance accumulated against it.
	VaultAddress codec.Address

	// FeeCollectorAddress accumulates protocol trading, migration, and
	// listing fees.
	FeeCollectorAddress codec.Address

	// ReferralVaultAddress escrows referral rewards until they are claimed.
	ReferralVaultAddress codec.Address

	// FeedAddress is the only account allowed to post reference prices.
	FeedAddress codec.Address
)

func init() {
	VaultAddress = codec.CreateAddress(consts.CURVEVAULTID, utils.ToID([]byte("launchvm-curve-vault")))
	FeeCollectorAddress = codec.CreateAddress(consts.FEELEDGERID, utils.ToID([]byte("launchvm-fee-collector")))
	ReferralVaultAddress = codec.CreateAddress(consts.REFERRALLEDGERID, utils.ToID([]byte("launchvm-referral-vault")))
	FeedAddress = codec.CreateAddress(consts.PRICEFEEDID, utils.ToID([]byte("launchvm-price-feed")))
}
