// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package referral

import "errors"

var ErrPayoutBelowMinimum = errors.New("accrued rewards below the minimum payout")
