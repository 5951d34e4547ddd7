package service

import (
	"encoding/json"
	"fmt"
)

type grantMessageResponse struct {
	Message string `json:"message"`
}

// FetchGrantMessage proxies the external grant-issuance API. The returned
// message is what the wallet signs to obtain grant-provider access.
func (s *Service) FetchGrantMessage(address string) (string, error) {
	resp, err := s.Client.R().
		SetQueryParam("address", address).
		Get(s.GrantAPIURL)
	if err != nil {
		return "", fmt.Errorf("grant api request failed: %w", err)
	}
	if resp.StatusCode() >= 300 {
		return "", fmt.Errorf("grant api returned %d: %s", resp.StatusCode(), resp.String())
	}
	var parsed grantMessageResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("grant api response decode failed: %w", err)
	}
	return parsed.Message, nil
}
