package handlers

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type BaseHandler struct {
	ABI     abi.ABI
	Address common.Address
}

func NewBaseHandler(abiJSON string, address string) (*BaseHandler, error) {
	parsedABI, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("abi parse failed: %w", err)
	}
	return &BaseHandler{ABI: parsedABI, Address: common.HexToAddress(address)}, nil
}

func (baseHandler *BaseHandler) EncodeFunc(functionName string, args ...interface{}) ([]byte, error) {
	encoded, err := baseHandler.ABI.Pack(functionName, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s failed: %w", functionName, err)
	}
	return encoded, nil
}

func (baseHandler *BaseHandler) DecodeResult(functionName string, data []byte) ([]interface{}, error) {
	values, err := baseHandler.ABI.Unpack(functionName, data)
	if err != nil {
		return nil, fmt.Errorf("unpack %s failed: %w", functionName, err)
	}
	return values, nil
}
