// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"strings"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/requester"

	"github.com/got-milkbag/launchvm/consts"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester
	g         *genesis.DefaultGenesis
}

// NewJSONRPCClient creates a new client object.
func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := requester.New(uri, consts.Name)
	return &JSONRPCClient{req, nil}
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.DefaultGenesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}

	resp := new(GenesisReply)
	err := cli.requester.SendRequest(
		ctx,
		"genesis",
		nil,
		resp,
	)
	if err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) GetBalance(ctx context.Context, address codec.Address) (uint64, error) {
	resp := new(GetBalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"getBalance",
		&GetBalanceArgs{Address: address},
		resp,
	)
	return resp.Balance, err
}

func (cli *JSONRPCClient) GetTokenInfo(ctx context.Context, tokenAddress codec.Address) (*GetTokenInfoReply, error) {
	resp := new(GetTokenInfoReply)
	err := cli.requester.SendRequest(
		ctx,
		"getTokenInfo",
		&GetTokenInfoArgs{TokenAddress: tokenAddress},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetTokenBalance(ctx context.Context, tokenAddress codec.Address, account codec.Address) (uint64, error) {
	resp := new(GetTokenBalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"getTokenBalance",
		&GetTokenBalanceArgs{
			TokenAddress: tokenAddress,
			Account:      account,
		},
		resp,
	)
	return resp.Balance, err
}

func (cli *JSONRPCClient) GetCurveInfo(ctx context.Context, tokenAddress codec.Address) (*GetCurveInfoReply, error) {
	resp := new(GetCurveInfoReply)
	err := cli.requester.SendRequest(
		ctx,
		"getCurveInfo",
		&GetCurveInfoArgs{TokenAddress: tokenAddress},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetAmmPool(ctx context.Context, tokenAddress codec.Address) (*GetAmmPoolReply, error) {
	resp := new(GetAmmPoolReply)
	err := cli.requester.SendRequest(
		ctx,
		"getAmmPool",
		&GetAmmPoolArgs{TokenAddress: tokenAddress},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetReferral(ctx context.Context, account codec.Address) (*GetReferralReply, error) {
	resp := new(GetReferralReply)
	err := cli.requester.SendRequest(
		ctx,
		"getReferral",
		&GetReferralArgs{Account: account},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetReferencePrice(ctx context.Context) (uint64, error) {
	resp := new(GetReferencePriceReply)
	err := cli.requester.SendRequest(
		ctx,
		"getReferencePrice",
		nil,
		resp,
	)
	return resp.Price, err
}
