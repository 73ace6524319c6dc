// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

// TypeIDs for actions
const (
	TransferID uint8 = iota
	LaunchTokenID
	BuyID
	SellID
	CurveQuoteID
	SetReferralID
	ClaimReferralID
	TransferTokenID
	AmmSwapID
	SetReferencePriceID
)

// TypeIDs for auth
const (
	// Required
	ED25519ID uint8 = iota
	SECP256R1ID
	BLSID

	// Relating to LaunchVM address generation
	TOKENID
	CURVEVAULTID
	AMMPOOLID
	LPTOKENID
	FEELEDGERID
	REFERRALLEDGERID
	PRICEFEEDID
)

const (
	Name     = "launchvm"
	HRP      = "launch"
	Symbol   = "LVM"
	Decimals = 9
)

var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
