// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/curve"
	"github.com/got-milkbag/launchvm/fees"
	"github.com/got-milkbag/launchvm/storage"
)

var (
	_ codec.Typed  = (*CurveQuoteResult)(nil)
	_ chain.Action = (*CurveQuote)(nil)
)

// CurveQuote prices a hypothetical trade against the current reserves
// without moving anything. The quote uses exactly the code path of the
// corresponding trade, so a quote followed immediately by the trade in the
// same block returns the same numbers.
type CurveQuote struct {
	TokenAddress codec.Address `serialize:"true" json:"tokenAddress"`
	Amount       uint64        `serialize:"true" json:"amount"`
	IsBuy        bool          `serialize:"true" json:"isBuy"`
}

func (*CurveQuote) GetTypeID() uint8 {
	return consts.CurveQuoteID
}

func (q *CurveQuote) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.CurveKey(q.TokenAddress)): state.Read,
	}
}

func (q *CurveQuote) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	_ codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if q.Amount == 0 {
		return nil, ErrOutputValueZero
	}

	shapeID, status, tokenReserve, settlementReserve, virtualConstant, _, _, _, err := storage.GetCurveNoController(ctx, mu, q.TokenAddress)
	if err != nil {
		return nil, ErrOutputCurveDoesNotExist
	}
	if status == storage.CurveStatusMigrated {
		return nil, ErrOutputCurveMigrated
	}

	model, err := curve.New(shapeID, virtualConstant)
	if err != nil {
		return nil, ErrOutputUnknownCurveShape
	}

	if q.IsBuy {
		tradingFee := fees.Protocol.QuoteTradingFee(q.Amount)
		tokenOut, err := model.QuoteBuy(tokenReserve, settlementReserve, q.Amount-tradingFee)
		if err != nil {
			return nil, err
		}
		return &CurveQuoteResult{
			AmountOut:  tokenOut,
			TradingFee: tradingFee,
		}, nil
	}

	grossOut, err := model.QuoteSell(tokenReserve, settlementReserve, q.Amount)
	if err != nil {
		return nil, err
	}
	tradingFee := fees.Protocol.QuoteTradingFee(grossOut)
	return &CurveQuoteResult{
		AmountOut:  grossOut - tradingFee,
		TradingFee: tradingFee,
	}, nil
}

func (*CurveQuote) ComputeUnits(chain.Rules) uint64 {
	return CurveQuoteComputeUnits
}

func (*CurveQuote) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

type CurveQuoteResult struct {
	AmountOut  uint64 `serialize:"true" json:"amountOut"`
	TradingFee uint64 `serialize:"true" json:"tradingFee"`
}

func (*CurveQuoteResult) GetTypeID() uint8 {
	return consts.CurveQuoteID
}
