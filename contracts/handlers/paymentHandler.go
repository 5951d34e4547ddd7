package handlers

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/draftforge/draftforge-server/models"
)

// PaymentHandler encodes calls against the deployed payment contract.
type PaymentHandler struct {
	BaseHandler
}

func NewPaymentHandler(address string) (*PaymentHandler, error) {
	base, err := NewBaseHandler(paymentABI, address)
	if err != nil {
		return nil, err
	}
	return &PaymentHandler{*base}, nil
}

func (paymentHandler *PaymentHandler) packRequest(method string, req models.PaymentRequest) ([]byte, error) {
	signature, err := hexutil.Decode(req.Signature)
	if err != nil {
		return nil, err
	}
	return paymentHandler.EncodeFunc(method,
		common.HexToAddress(req.User),
		req.Tier,
		req.ContentID,
		big.NewInt(req.Nonce),
		big.NewInt(req.Deadline),
		signature,
	)
}

func (paymentHandler *PaymentHandler) EncodeVerify(req models.PaymentRequest) ([]byte, error) {
	return paymentHandler.packRequest("verifyPaymentSignature", req)
}

func (paymentHandler *PaymentHandler) EncodeExecute(req models.PaymentRequest) ([]byte, error) {
	return paymentHandler.packRequest("executePayment", req)
}

func (paymentHandler *PaymentHandler) EncodeGetTierPrice(tier uint8) ([]byte, error) {
	return paymentHandler.EncodeFunc("getTierPrice", tier)
}
