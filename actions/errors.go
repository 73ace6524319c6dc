// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// Transfers
	ErrOutputValueZero                = errors.New("value is zero")
	ErrOutputMemoTooLarge             = errors.New("memo is too large")
	ErrOutputTokenDoesNotExist        = errors.New("token does not exist")
	ErrOutputInsufficientTokenBalance = errors.New("insufficient token balance")

	// Launches
	ErrOutputTokenNameEmpty        = errors.New("token name is empty")
	ErrOutputTokenNameTooLarge     = errors.New("token name is too large")
	ErrOutputTokenSymbolEmpty      = errors.New("token symbol is empty")
	ErrOutputTokenSymbolTooLarge   = errors.New("token symbol is too large")
	ErrOutputTokenMetadataEmpty    = errors.New("token metadata is empty")
	ErrOutputTokenMetadataTooLarge = errors.New("token metadata is too large")
	ErrOutputTokenAlreadyExists    = errors.New("token already exists")
	ErrOutputUnknownCurveShape     = errors.New("unknown curve shape")

	// Curve trades
	ErrOutputCurveDoesNotExist = errors.New("no curve exists for token")
	ErrOutputCurveMigrated     = errors.New("curve has migrated to the AMM")
	ErrOutputTradeTooSmall     = errors.New("trade below the minimum size")
	ErrOutputSlippageExceeded  = errors.New("output below the slippage bound")

	// Referrals
	ErrOutputReferrerEmpty      = errors.New("referrer is empty")
	ErrOutputReferralSelf       = errors.New("cannot refer yourself")
	ErrOutputReferralAlreadySet = errors.New("referral already set")
	ErrOutputReferrerMismatch   = errors.New("referrers do not match the bound referral")

	// AMM
	ErrOutputPoolDoesNotExist = errors.New("no pool exists for token")

	// Oracle
	ErrOutputUnauthorizedFeed = errors.New("actor is not the price feed")
	ErrOutputPriceZero        = errors.New("reference price is zero")
)
