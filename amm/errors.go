// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package amm

import "errors"

var (
	ErrPoolAlreadyExists   = errors.New("pool already exists for token")
	ErrEmptySeed           = errors.New("pool seed amounts must be nonzero")
	ErrSwapAmountZero      = errors.New("swap amount must be nonzero")
	ErrInvalidPoolReserves = errors.New("invalid pool reserves")
)
