package handlers

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/draftforge/draftforge-server/models"
)

// ChainGateway executes reads and writes against the payment and token
// contracts with the facilitator wallet. Writes block until one
// confirmation; nothing here ever retries a submitted transaction.
type ChainGateway struct {
	Client  *ethclient.Client
	ChainID *big.Int
	Payment *PaymentHandler
	Token   *TokenHandler
	Log     *zap.SugaredLogger

	key      *ecdsa.PrivateKey
	from     common.Address
	decimals int32
}

func NewChainGateway(client *ethclient.Client, chainID int64, paymentAddress, tokenAddress, facilitatorKeyHex string, log *zap.SugaredLogger) (*ChainGateway, error) {
	payment, err := NewPaymentHandler(paymentAddress)
	if err != nil {
		return nil, err
	}
	token, err := NewTokenHandler(tokenAddress)
	if err != nil {
		return nil, err
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(facilitatorKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("facilitator key parse failed: %w", err)
	}

	gateway := &ChainGateway{
		Client:   client,
		ChainID:  big.NewInt(chainID),
		Payment:  payment,
		Token:    token,
		Log:      log,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		decimals: 6, // USDC default, refined below when the node answers
	}
	if decimals, err := gateway.fetchDecimals(context.Background()); err == nil {
		gateway.decimals = decimals
	} else {
		log.Warnw("token decimals lookup failed, assuming 6", "err", err)
	}
	return gateway, nil
}

// FacilitatorAddress is the backend wallet that pays gas and receives
// transfer-from amounts.
func (gw *ChainGateway) FacilitatorAddress() string {
	return gw.from.Hex()
}

func (gw *ChainGateway) TokenDecimals() int32 {
	return gw.decimals
}

func (gw *ChainGateway) call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	return gw.Client.CallContract(ctx, ethereum.CallMsg{From: gw.from, To: &to, Data: data}, nil)
}

// sendTx signs, submits and waits for one confirmation. A revert after
// mining is surfaced as an error; the caller must not resubmit.
func (gw *ChainGateway) sendTx(ctx context.Context, to common.Address, data []byte) (string, error) {
	nonce, err := gw.Client.PendingNonceAt(ctx, gw.from)
	if err != nil {
		return "", fmt.Errorf("nonce fetch failed: %w", err)
	}
	gasPrice, err := gw.Client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("gas price fetch failed: %w", err)
	}
	gasLimit, err := gw.Client.EstimateGas(ctx, ethereum.CallMsg{From: gw.from, To: &to, Data: data})
	if err != nil {
		return "", fmt.Errorf("gas estimate failed: %w", err)
	}
	gasLimit += gasLimit / 5

	tx := types.NewTransaction(nonce, to, common.Big0, gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(gw.ChainID), gw.key)
	if err != nil {
		return "", fmt.Errorf("tx sign failed: %w", err)
	}
	if err := gw.Client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("tx submit failed: %w", err)
	}
	gw.Log.Infow("tx submitted", "hash", signed.Hash().Hex(), "to", to.Hex())

	receipt, err := bind.WaitMined(ctx, gw.Client, signed)
	if err != nil {
		return "", fmt.Errorf("confirmation wait failed: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", fmt.Errorf("tx %s reverted", signed.Hash().Hex())
	}
	return signed.Hash().Hex(), nil
}

// VerifyPaymentSignature asks the contract whether the signed payment
// request is valid and returns the contract-reported reason when it is not.
func (gw *ChainGateway) VerifyPaymentSignature(ctx context.Context, req models.PaymentRequest) (bool, string, error) {
	data, err := gw.Payment.EncodeVerify(req)
	if err != nil {
		return false, "", err
	}
	output, err := gw.call(ctx, gw.Payment.Address, data)
	if err != nil {
		return false, "", fmt.Errorf("verifyPaymentSignature call failed: %w", err)
	}
	values, err := gw.Payment.DecodeResult("verifyPaymentSignature", output)
	if err != nil {
		return false, "", err
	}
	valid, _ := values[0].(bool)
	reason, _ := values[1].(string)
	return valid, reason, nil
}

func (gw *ChainGateway) ExecutePayment(ctx context.Context, req models.PaymentRequest) (string, error) {
	data, err := gw.Payment.EncodeExecute(req)
	if err != nil {
		return "", err
	}
	return gw.sendTx(ctx, gw.Payment.Address, data)
}

func (gw *ChainGateway) GetTierPrice(ctx context.Context, tier uint8) (*big.Int, error) {
	data, err := gw.Payment.EncodeGetTierPrice(tier)
	if err != nil {
		return nil, err
	}
	output, err := gw.call(ctx, gw.Payment.Address, data)
	if err != nil {
		return nil, fmt.Errorf("getTierPrice call failed: %w", err)
	}
	values, err := gw.Payment.DecodeResult("getTierPrice", output)
	if err != nil {
		return nil, err
	}
	price, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("getTierPrice returned unexpected type %T", values[0])
	}
	return price, nil
}

// Allowance returns how much the owner has approved the facilitator wallet
// to spend.
func (gw *ChainGateway) Allowance(ctx context.Context, owner string) (*big.Int, error) {
	data, err := gw.Token.EncodeAllowance(owner, gw.from.Hex())
	if err != nil {
		return nil, err
	}
	return gw.callUint(ctx, "allowance", data)
}

func (gw *ChainGateway) BalanceOf(ctx context.Context, owner string) (*big.Int, error) {
	data, err := gw.Token.EncodeBalanceOf(owner)
	if err != nil {
		return nil, err
	}
	return gw.callUint(ctx, "balanceOf", data)
}

// TransferFrom pulls the tier price from the user into the facilitator
// wallet, relying on a pre-existing allowance.
func (gw *ChainGateway) TransferFrom(ctx context.Context, from string, amount *big.Int) (string, error) {
	data, err := gw.Token.EncodeTransferFrom(from, gw.from.Hex(), amount)
	if err != nil {
		return "", err
	}
	return gw.sendTx(ctx, gw.Token.Address, data)
}

// Transfer sends test tokens from the facilitator wallet (faucet).
func (gw *ChainGateway) Transfer(ctx context.Context, to string, amount *big.Int) (string, error) {
	data, err := gw.Token.EncodeTransfer(to, amount)
	if err != nil {
		return "", err
	}
	return gw.sendTx(ctx, gw.Token.Address, data)
}

func (gw *ChainGateway) callUint(ctx context.Context, method string, data []byte) (*big.Int, error) {
	output, err := gw.call(ctx, gw.Token.Address, data)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}
	values, err := gw.Token.DecodeResult(method, output)
	if err != nil {
		return nil, err
	}
	n, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s returned unexpected type %T", method, values[0])
	}
	return n, nil
}

func (gw *ChainGateway) fetchDecimals(ctx context.Context) (int32, error) {
	data, err := gw.Token.EncodeFunc("decimals")
	if err != nil {
		return 0, err
	}
	output, err := gw.call(ctx, gw.Token.Address, data)
	if err != nil {
		return 0, err
	}
	values, err := gw.Token.DecodeResult("decimals", output)
	if err != nil {
		return 0, err
	}
	decimals, ok := values[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("decimals returned unexpected type %T", values[0])
	}
	return int32(decimals), nil
}
