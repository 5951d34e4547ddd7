package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/draftforge/draftforge-server/models"
	"github.com/draftforge/draftforge-server/service"
)

type stubGateway struct {
	valid      bool
	reason     string
	verifyErr  error
	txHash     string
	executeErr error

	price     *big.Int
	allowance *big.Int
	balance   *big.Int

	executeCalls      int
	transferFromCalls int
	transferCalls     int
}

func (g *stubGateway) VerifyPaymentSignature(ctx context.Context, req models.PaymentRequest) (bool, string, error) {
	return g.valid, g.reason, g.verifyErr
}

func (g *stubGateway) ExecutePayment(ctx context.Context, req models.PaymentRequest) (string, error) {
	g.executeCalls++
	return g.txHash, g.executeErr
}

func (g *stubGateway) GetTierPrice(ctx context.Context, tier uint8) (*big.Int, error) {
	return g.price, nil
}

func (g *stubGateway) Allowance(ctx context.Context, owner string) (*big.Int, error) {
	return g.allowance, nil
}

func (g *stubGateway) BalanceOf(ctx context.Context, owner string) (*big.Int, error) {
	return g.balance, nil
}

func (g *stubGateway) TransferFrom(ctx context.Context, from string, amount *big.Int) (string, error) {
	g.transferFromCalls++
	return g.txHash, nil
}

func (g *stubGateway) Transfer(ctx context.Context, to string, amount *big.Int) (string, error) {
	g.transferCalls++
	return g.txHash, nil
}

func (g *stubGateway) TokenDecimals() int32 { return 6 }

type stubGenerator struct {
	calls int
}

func (g *stubGenerator) GenerateTier(tier int, opts models.GenerateOptions, grant *models.GrantAuth) models.TierContent {
	g.calls++
	return models.TierContent{Tier: tier, Post: "generated post"}
}

func testService() service.Service {
	return service.Service{Log: zap.NewNop().Sugar()}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func validPaymentBody() map[string]interface{} {
	return map[string]interface{}{
		"user":      "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		"tier":      2,
		"contentId": "content-123",
		"nonce":     7,
		"deadline":  1893456000,
		"signature": "0xdeadbeef",
	}
}

func TestPaymentInvalidSignatureReturns402(t *testing.T) {
	gateway := &stubGateway{valid: false, reason: "signature expired"}
	gen := &stubGenerator{}
	rec := postJSON(t, Payment(testService(), gateway, gen), validPaymentBody())

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, 0, gateway.executeCalls)
	assert.Equal(t, 0, gen.calls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "signature expired", body["error"])
}

func TestPaymentSuccessRunsGenerationOnce(t *testing.T) {
	gateway := &stubGateway{valid: true, txHash: "0xabc123"}
	gen := &stubGenerator{}
	rec := postJSON(t, Payment(testService(), gateway, gen), validPaymentBody())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gateway.executeCalls)
	assert.Equal(t, 1, gen.calls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "0xabc123", body["txHash"])
	assert.NotNil(t, body["result"])
}

func TestPaymentMissingFieldsReturns400(t *testing.T) {
	gateway := &stubGateway{valid: true, txHash: "0xabc123"}
	gen := &stubGenerator{}
	rec := postJSON(t, Payment(testService(), gateway, gen), map[string]interface{}{
		"user": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, gateway.executeCalls)
	assert.Equal(t, 0, gen.calls)
}

func TestPaymentTierOutOfRangeReturns400(t *testing.T) {
	body := validPaymentBody()
	body["tier"] = 9
	rec := postJSON(t, Payment(testService(), &stubGateway{valid: true}, &stubGenerator{}), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecutePaymentInsufficientAllowance(t *testing.T) {
	gateway := &stubGateway{
		price:     big.NewInt(5_000_000),
		allowance: big.NewInt(1_500_000),
		balance:   big.NewInt(100_000_000),
	}
	gen := &stubGenerator{}
	rec := postJSON(t, ExecutePayment(testService(), gateway, gen), map[string]interface{}{
		"userAddress": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		"tier":        1,
	})

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, 0, gateway.transferFromCalls)
	assert.Equal(t, 0, gen.calls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["needsApproval"])
	assert.Contains(t, body["error"], "1.5")
	assert.Contains(t, body["error"], "5")
}

func TestExecutePaymentInsufficientBalance(t *testing.T) {
	gateway := &stubGateway{
		price:     big.NewInt(5_000_000),
		allowance: big.NewInt(10_000_000),
		balance:   big.NewInt(2_000_000),
	}
	rec := postJSON(t, ExecutePayment(testService(), gateway, &stubGenerator{}), map[string]interface{}{
		"userAddress": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		"tier":        1,
	})

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, 0, gateway.transferFromCalls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["needsApproval"])
}

func TestExecutePaymentSuccess(t *testing.T) {
	gateway := &stubGateway{
		price:     big.NewInt(5_000_000),
		allowance: big.NewInt(10_000_000),
		balance:   big.NewInt(100_000_000),
		txHash:    "0xfeedface",
	}
	gen := &stubGenerator{}
	rec := postJSON(t, ExecutePayment(testService(), gateway, gen), map[string]interface{}{
		"userAddress": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		"tier":        3,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gateway.transferFromCalls)
	assert.Equal(t, 1, gen.calls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "0xfeedface", body["txHash"])
	assert.NotEmpty(t, body["contentId"])
	assert.NotNil(t, body["content"])
}

func TestFaucetSendsFixedAmount(t *testing.T) {
	gateway := &stubGateway{txHash: "0xfaucet"}
	rec := postJSON(t, Faucet(testService(), gateway), map[string]interface{}{
		"userAddress": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gateway.transferCalls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0xfaucet", body["txHash"])
}

func TestFaucetMissingAddressReturns400(t *testing.T) {
	gateway := &stubGateway{}
	rec := postJSON(t, Faucet(testService(), gateway), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, gateway.transferCalls)
}
