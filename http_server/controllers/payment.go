package controllers

import (
	"context"
	"fmt"
	"math/big"
	"net/http"

	"github.com/google/uuid"
	"github.com/thedevsaddam/govalidator"

	"github.com/draftforge/draftforge-server/config"
	"github.com/draftforge/draftforge-server/models"
	"github.com/draftforge/draftforge-server/service"
)

// PaymentGateway is the slice of the chain gateway the payment endpoints
// need. Narrow on purpose so tests can stub it.
type PaymentGateway interface {
	VerifyPaymentSignature(ctx context.Context, req models.PaymentRequest) (bool, string, error)
	ExecutePayment(ctx context.Context, req models.PaymentRequest) (string, error)
	GetTierPrice(ctx context.Context, tier uint8) (*big.Int, error)
	Allowance(ctx context.Context, owner string) (*big.Int, error)
	BalanceOf(ctx context.Context, owner string) (*big.Int, error)
	TransferFrom(ctx context.Context, from string, amount *big.Int) (string, error)
	Transfer(ctx context.Context, to string, amount *big.Int) (string, error)
	TokenDecimals() int32
}

// Generator is the orchestration entry point invoked after a confirmed
// payment.
type Generator interface {
	GenerateTier(tier int, opts models.GenerateOptions, grant *models.GrantAuth) models.TierContent
}

type PaymentSerializer struct {
	User      string `json:"user"`
	Tier      int64  `json:"tier"`
	ContentID string `json:"contentId"`
	Nonce     int64  `json:"nonce"`
	Deadline  int64  `json:"deadline"`
	Signature string `json:"signature"`
}

// Payment is the signed flow: verify against the contract, execute on-chain,
// and only after one confirmation run the generation pipeline. An invalid
// signature is a 402 with the contract's reason and no transaction is sent.
// Chain errors are generic 500s and are never retried here, resubmission is
// the caller's call.
func Payment(s service.Service, gateway PaymentGateway, gen Generator) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var serializer PaymentSerializer
		rules := govalidator.MapData{
			"user":      []string{"required"},
			"tier":      []string{"required"},
			"contentId": []string{"required"},
			"nonce":     []string{"required"},
			"deadline":  []string{"required"},
			"signature": []string{"required"},
		}
		opts := govalidator.Options{
			Request: r,
			Data:    &serializer,
			Rules:   rules,
		}
		e := govalidator.New(opts).ValidateJSON()
		if len(e) != 0 {
			ReturnHttpBadResponse(rw, map[string]interface{}{"validationError": e})
			return
		}
		if serializer.Tier < 1 || serializer.Tier > 3 {
			ReturnHttpBadResponse(rw, map[string]interface{}{"success": false, "error": "tier must be 1, 2 or 3"})
			return
		}

		request := models.PaymentRequest{
			User:      serializer.User,
			Tier:      uint8(serializer.Tier),
			ContentID: serializer.ContentID,
			Nonce:     serializer.Nonce,
			Deadline:  serializer.Deadline,
			Signature: serializer.Signature,
		}

		valid, reason, err := gateway.VerifyPaymentSignature(r.Context(), request)
		if err != nil {
			s.Log.Errorw("verifyPaymentSignature failed", "user", request.User, "err", err)
			WriteJSON(rw, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "payment verification failed"})
			return
		}
		if !valid {
			WriteJSON(rw, http.StatusPaymentRequired, map[string]interface{}{"success": false, "error": reason})
			return
		}

		txHash, err := gateway.ExecutePayment(r.Context(), request)
		if err != nil {
			s.Log.Errorw("executePayment failed", "user", request.User, "err", err)
			WriteJSON(rw, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "payment execution failed"})
			return
		}
		s.RecordReceipt("payment", txHash, request.User, request.Tier, request.ContentID, nil)

		content := gen.GenerateTier(int(request.Tier), models.GenerateOptions{Input: request.ContentID}, nil)
		WriteJSON(rw, http.StatusOK, map[string]interface{}{
			"success": true,
			"txHash":  txHash,
			"result":  content,
		})
	}
}

type ExecutePaymentSerializer struct {
	UserAddress string `json:"userAddress"`
	Tier        int64  `json:"tier"`
}

// ExecutePayment is the permissionless flow: a pre-existing allowance to the
// facilitator wallet is the authorization. Allowance and balance are checked
// before any state change so a short allowance fails fast with
// needsApproval.
func ExecutePayment(s service.Service, gateway PaymentGateway, gen Generator) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var serializer ExecutePaymentSerializer
		rules := govalidator.MapData{
			"userAddress": []string{"required"},
			"tier":        []string{"required"},
		}
		opts := govalidator.Options{
			Request: r,
			Data:    &serializer,
			Rules:   rules,
		}
		e := govalidator.New(opts).ValidateJSON()
		if len(e) != 0 {
			ReturnHttpBadResponse(rw, map[string]interface{}{"validationError": e})
			return
		}
		if serializer.Tier < 1 || serializer.Tier > 3 {
			ReturnHttpBadResponse(rw, map[string]interface{}{"success": false, "error": "tier must be 1, 2 or 3"})
			return
		}

		price, err := gateway.GetTierPrice(r.Context(), uint8(serializer.Tier))
		if err != nil {
			s.Log.Errorw("getTierPrice failed", "tier", serializer.Tier, "err", err)
			WriteJSON(rw, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "tier price lookup failed"})
			return
		}

		allowance, err := gateway.Allowance(r.Context(), serializer.UserAddress)
		if err != nil {
			s.Log.Errorw("allowance check failed", "user", serializer.UserAddress, "err", err)
			WriteJSON(rw, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "allowance check failed"})
			return
		}
		if allowance.Cmp(price) < 0 {
			WriteJSON(rw, http.StatusPaymentRequired, map[string]interface{}{
				"success": false,
				"error": fmt.Sprintf("insufficient allowance: approved %s, tier costs %s",
					FormatTokenAmount(allowance, gateway.TokenDecimals()),
					FormatTokenAmount(price, gateway.TokenDecimals())),
				"needsApproval": true,
			})
			return
		}

		balance, err := gateway.BalanceOf(r.Context(), serializer.UserAddress)
		if err != nil {
			s.Log.Errorw("balance check failed", "user", serializer.UserAddress, "err", err)
			WriteJSON(rw, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "balance check failed"})
			return
		}
		if balance.Cmp(price) < 0 {
			WriteJSON(rw, http.StatusPaymentRequired, map[string]interface{}{
				"success": false,
				"error": fmt.Sprintf("insufficient balance: have %s, tier costs %s",
					FormatTokenAmount(balance, gateway.TokenDecimals()),
					FormatTokenAmount(price, gateway.TokenDecimals())),
				"needsApproval": false,
			})
			return
		}

		txHash, err := gateway.TransferFrom(r.Context(), serializer.UserAddress, price)
		if err != nil {
			s.Log.Errorw("transferFrom failed", "user", serializer.UserAddress, "err", err)
			WriteJSON(rw, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "payment transfer failed"})
			return
		}

		contentID := uuid.NewString()
		s.RecordReceipt("transfer_from", txHash, serializer.UserAddress, uint8(serializer.Tier), contentID, price)

		content := gen.GenerateTier(int(serializer.Tier), models.GenerateOptions{Input: contentID}, nil)
		WriteJSON(rw, http.StatusOK, map[string]interface{}{
			"success":   true,
			"contentId": contentID,
			"txHash":    txHash,
			"content":   content,
		})
	}
}

type FaucetSerializer struct {
	UserAddress string `json:"userAddress"`
}

// Faucet sends a fixed amount of the test token to the given address.
func Faucet(s service.Service, gateway PaymentGateway) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var serializer FaucetSerializer
		rules := govalidator.MapData{
			"userAddress": []string{"required"},
		}
		opts := govalidator.Options{
			Request: r,
			Data:    &serializer,
			Rules:   rules,
		}
		e := govalidator.New(opts).ValidateJSON()
		if len(e) != 0 {
			ReturnHttpBadResponse(rw, map[string]interface{}{"validationError": e})
			return
		}

		amount := big.NewInt(config.GetInt64("FAUCET_AMOUNT", 10_000_000)) // 10 tokens at 6 decimals
		txHash, err := gateway.Transfer(r.Context(), serializer.UserAddress, amount)
		if err != nil {
			s.Log.Errorw("faucet transfer failed", "user", serializer.UserAddress, "err", err)
			WriteJSON(rw, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "faucet transfer failed"})
			return
		}
		s.RecordReceipt("faucet", txHash, serializer.UserAddress, 0, "", amount)
		WriteJSON(rw, http.StatusOK, map[string]interface{}{"success": true, "txHash": txHash})
	}
}
