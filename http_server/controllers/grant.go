package controllers

import (
	"net/http"

	"github.com/draftforge/draftforge-server/service"
)

// GrantMessage proxies the external grant-issuance API: the returned message
// is what the user's wallet signs to unlock the grant provider.
func GrantMessage(s service.Service) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		address := r.URL.Query().Get("address")
		if address == "" {
			ReturnHttpBadResponse(rw, map[string]interface{}{"error": "address query parameter is required"})
			return
		}
		message, err := s.FetchGrantMessage(address)
		if err != nil {
			s.Log.Errorw("grant message fetch failed", "address", address, "err", err)
			WriteJSON(rw, http.StatusBadGateway, map[string]interface{}{"error": "grant service unavailable"})
			return
		}
		WriteJSON(rw, http.StatusOK, map[string]interface{}{"message": message})
	}
}

func Health() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		WriteJSON(rw, http.StatusOK, map[string]interface{}{"status": "ok"})
	}
}
