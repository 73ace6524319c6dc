// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"

	"github.com/got-milkbag/launchvm/consts"
	"github.com/got-milkbag/launchvm/storage"
)

const JSONRPCEndpoint = "/launchapi"

var _ api.HandlerFactory[api.VM] = (*jsonRPCServerFactory)(nil)

type jsonRPCServerFactory struct{}

func (jsonRPCServerFactory) New(vm api.VM) (api.Handler, error) {
	handler, err := api.NewJSONRPCHandler(consts.Name, NewJSONRPCServer(vm))
	return api.Handler{
		Path:    JSONRPCEndpoint,
		Handler: handler,
	}, err
}

type JSONRPCServer struct {
	vm api.VM
}

func NewJSONRPCServer(vm api.VM) *JSONRPCServer {
	return &JSONRPCServer{vm: vm}
}

type GenesisReply struct {
	Genesis *genesis.DefaultGenesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = j.vm.Genesis().(*genesis.DefaultGenesis)
	return nil
}

type GetBalanceArgs struct {
	Address codec.Address `json:"address"`
}

type GetBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetBalance(req *http.Request, args *GetBalanceArgs, reply *GetBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetBalance")
	defer span.End()

	balance, err := storage.GetBalanceFromState(ctx, j.vm.ReadState, args.Address)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type GetTokenInfoArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
}

type GetTokenInfoReply struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	Metadata    string        `json:"metadata"`
	TotalSupply uint64        `json:"totalSupply"`
	Creator     codec.Address `json:"creator"`
}

func (j *JSONRPCServer) GetTokenInfo(req *http.Request, args *GetTokenInfoArgs, reply *GetTokenInfoReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetTokenInfo")
	defer span.End()

	name, symbol, metadata, totalSupply, creator, err := storage.GetTokenInfoFromState(ctx, j.vm.ReadState, args.TokenAddress)
	if err != nil {
		return err
	}
	reply.Name = string(name)
	reply.Symbol = string(symbol)
	reply.Metadata = string(metadata)
	reply.TotalSupply = totalSupply
	reply.Creator = creator
	return nil
}

type GetTokenBalanceArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
	Account      codec.Address `json:"account"`
}

type GetTokenBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetTokenBalance(req *http.Request, args *GetTokenBalanceArgs, reply *GetTokenBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetTokenBalance")
	defer span.End()

	balance, err := storage.GetTokenAccountBalanceFromState(ctx, j.vm.ReadState, args.TokenAddress, args.Account)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type GetCurveInfoArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
}

type GetCurveInfoReply struct {
	ShapeID            uint8  `json:"shapeID"`
	Migrated           bool   `json:"migrated"`
	TokenReserve       uint64 `json:"tokenReserve"`
	SettlementReserve  uint64 `json:"settlementReserve"`
	VirtualConstant    uint64 `json:"virtualConstant"`
	MigrationThreshold uint64 `json:"migrationThreshold"`
	LastPrice          uint64 `json:"lastPrice"`
	LastInversePrice   uint64 `json:"lastInversePrice"`

	// MigrationProgress is the settlement reserve as a share of the
	// threshold in basis points, clamped to 10,000
	MigrationProgress uint64 `json:"migrationProgress"`
}

func (j *JSONRPCServer) GetCurveInfo(req *http.Request, args *GetCurveInfoArgs, reply *GetCurveInfoReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetCurveInfo")
	defer span.End()

	shapeID, status, tokenReserve, settlementReserve, virtualConstant, migrationThreshold, lastPrice, lastInversePrice, err := storage.GetCurveFromState(ctx, j.vm.ReadState, args.TokenAddress)
	if err != nil {
		return err
	}
	reply.ShapeID = shapeID
	reply.Migrated = status == storage.CurveStatusMigrated
	reply.TokenReserve = tokenReserve
	reply.SettlementReserve = settlementReserve
	reply.VirtualConstant = virtualConstant
	reply.MigrationThreshold = migrationThreshold
	reply.LastPrice = lastPrice
	reply.LastInversePrice = lastInversePrice

	switch {
	case reply.Migrated:
		reply.MigrationProgress = consts.BpsDenominator
	case migrationThreshold > 0:
		progress := settlementReserve / (migrationThreshold / consts.BpsDenominator)
		if progress > consts.BpsDenominator {
			progress = consts.BpsDenominator
		}
		reply.MigrationProgress = progress
	}
	return nil
}

type GetAmmPoolArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
}

type GetAmmPoolReply struct {
	PoolAddress       codec.Address `json:"poolAddress"`
	ReserveToken      uint64        `json:"reserveToken"`
	ReserveSettlement uint64        `json:"reserveSettlement"`
	Fee               uint64        `json:"fee"`
	LPTokenAddress    codec.Address `json:"lpTokenAddress"`
}

func (j *JSONRPCServer) GetAmmPool(req *http.Request, args *GetAmmPoolArgs, reply *GetAmmPoolReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetAmmPool")
	defer span.End()

	poolAddress := storage.PoolAddress(args.TokenAddress)
	_, reserveToken, reserveSettlement, fee, lpTokenAddress, err := storage.GetAmmPoolFromState(ctx, j.vm.ReadState, poolAddress)
	if err != nil {
		return err
	}
	reply.PoolAddress = poolAddress
	reply.ReserveToken = reserveToken
	reply.ReserveSettlement = reserveSettlement
	reply.Fee = fee
	reply.LPTokenAddress = lpTokenAddress
	return nil
}

type GetReferralArgs struct {
	Account codec.Address `json:"account"`
}

type GetReferralReply struct {
	Referrer         codec.Address `json:"referrer"`
	IndirectReferrer codec.Address `json:"indirectReferrer"`
	AccruedRewards   uint64        `json:"accruedRewards"`
}

func (j *JSONRPCServer) GetReferral(req *http.Request, args *GetReferralArgs, reply *GetReferralReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetReferral")
	defer span.End()

	direct, indirect, err := storage.GetReferrerFromState(ctx, j.vm.ReadState, args.Account)
	if err != nil {
		return err
	}
	rewards, err := storage.GetReferralRewardFromState(ctx, j.vm.ReadState, args.Account)
	if err != nil {
		return err
	}
	reply.Referrer = direct
	reply.IndirectReferrer = indirect
	reply.AccruedRewards = rewards
	return nil
}

type GetReferencePriceReply struct {
	Price uint64 `json:"price"`
}

func (j *JSONRPCServer) GetReferencePrice(req *http.Request, _ *struct{}, reply *GetReferencePriceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetReferencePrice")
	defer span.End()

	price, err := storage.GetReferencePriceFromState(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	reply.Price = price
	return nil
}
