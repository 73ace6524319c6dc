// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import "errors"

var (
	ErrUnknownShape     = errors.New("unknown curve shape")
	ErrAmountZero       = errors.New("trade amount must be nonzero")
	ErrInvalidReserves  = errors.New("invalid curve reserves")
	ErrReserveExhausted = errors.New("token reserve exhausted")
	ErrQuoteOverflow    = errors.New("quote does not fit in uint64")
)
