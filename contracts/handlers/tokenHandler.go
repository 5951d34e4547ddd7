package handlers

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TokenHandler encodes calls against the payment token (USDC on mainnet,
// a test token elsewhere).
type TokenHandler struct {
	BaseHandler
}

func NewTokenHandler(address string) (*TokenHandler, error) {
	base, err := NewBaseHandler(erc20ABI, address)
	if err != nil {
		return nil, err
	}
	return &TokenHandler{*base}, nil
}

func (tokenHandler *TokenHandler) EncodeTransfer(to string, amount *big.Int) ([]byte, error) {
	return tokenHandler.EncodeFunc("transfer", common.HexToAddress(to), amount)
}

func (tokenHandler *TokenHandler) EncodeTransferFrom(from, to string, amount *big.Int) ([]byte, error) {
	return tokenHandler.EncodeFunc("transferFrom", common.HexToAddress(from), common.HexToAddress(to), amount)
}

func (tokenHandler *TokenHandler) EncodeAllowance(owner, spender string) ([]byte, error) {
	return tokenHandler.EncodeFunc("allowance", common.HexToAddress(owner), common.HexToAddress(spender))
}

func (tokenHandler *TokenHandler) EncodeBalanceOf(account string) ([]byte, error) {
	return tokenHandler.EncodeFunc("balanceOf", common.HexToAddress(account))
}
