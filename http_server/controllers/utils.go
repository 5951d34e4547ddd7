package controllers

import (
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/shopspring/decimal"
)

func WriteJSON(rw http.ResponseWriter, status int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	json.NewEncoder(rw).Encode(body)
}

func ReturnHttpBadResponse(rw http.ResponseWriter, response interface{}) {
	WriteJSON(rw, http.StatusBadRequest, response)
}

// FormatTokenAmount renders raw token units as a human amount, e.g.
// 1500000 with 6 decimals -> "1.5".
func FormatTokenAmount(amount *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(amount, -decimals).String()
}
