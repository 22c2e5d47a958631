// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"

	"github.com/pairvm/pairvm/consts"
	"github.com/pairvm/pairvm/storage"
)

const JSONRPCEndpoint = "/poolapi"

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

type GetTokenInfoArgs struct {
	Token codec.Address `json:"token"`
}

type GetTokenInfoReply struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	Decimals    uint8         `json:"decimals"`
	Metadata    string        `json:"metadata"`
	TotalSupply uint64        `json:"totalSupply"`
	Authority   codec.Address `json:"authority"`
}

func (j *JSONRPCServer) GetTokenInfo(req *http.Request, args *GetTokenInfoArgs, reply *GetTokenInfoReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetTokenInfo")
	defer span.End()

	name, symbol, decimals, metadata, totalSupply, authority, err := storage.GetTokenInfoFromState(ctx, j.vm.ReadState, args.Token)
	if err != nil {
		return err
	}
	reply.Name = string(name)
	reply.Symbol = string(symbol)
	reply.Decimals = decimals
	reply.Metadata = string(metadata)
	reply.TotalSupply = totalSupply
	reply.Authority = authority
	return nil
}

type GetBalanceArgs struct {
	Token   codec.Address `json:"token"`
	Account codec.Address `json:"account"`
}

type GetBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetBalance(req *http.Request, args *GetBalanceArgs, reply *GetBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetBalance")
	defer span.End()

	balance, err := storage.GetBalanceFromState(ctx, j.vm.ReadState, storage.TokenAccountAddress(args.Token, args.Account))
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type GetPoolArgs struct {
	Pool codec.Address `json:"pool"`
}

type GetPoolReply struct {
	AssetX     codec.Address `json:"assetX"`
	AssetY     codec.Address `json:"assetY"`
	VaultX     codec.Address `json:"vaultX"`
	VaultY     codec.Address `json:"vaultY"`
	ClaimToken codec.Address `json:"claimToken"`
	FeeRate    uint64        `json:"feeRate"`
	FeeScale   uint8         `json:"feeScale"`
	ReserveX   uint64        `json:"reserveX"`
	ReserveY   uint64        `json:"reserveY"`
}

func (j *JSONRPCServer) GetPool(req *http.Request, args *GetPoolArgs, reply *GetPoolReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetPool")
	defer span.End()

	pool, err := storage.GetPoolFromState(ctx, j.vm.ReadState, args.Pool)
	if err != nil {
		return err
	}
	reserveX, err := storage.GetBalanceFromState(ctx, j.vm.ReadState, pool.VaultX)
	if err != nil {
		return err
	}
	reserveY, err := storage.GetBalanceFromState(ctx, j.vm.ReadState, pool.VaultY)
	if err != nil {
		return err
	}
	reply.AssetX = pool.AssetX
	reply.AssetY = pool.AssetY
	reply.VaultX = pool.VaultX
	reply.VaultY = pool.VaultY
	reply.ClaimToken = pool.ClaimToken
	reply.FeeRate = pool.FeeRate
	reply.FeeScale = pool.FeeScale
	reply.ReserveX = reserveX
	reply.ReserveY = reserveY
	return nil
}
