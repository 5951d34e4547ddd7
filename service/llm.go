package service

import (
	"encoding/json"
	"fmt"

	"github.com/draftforge/draftforge-server/models"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1200
)

// complete posts one chat-completion request to the given provider and
// returns the raw text of the first choice plus the provider signature.
func (s *Service) complete(provider ProviderConfig, prompt string, model string, grant *models.GrantAuth) (string, string, error) {
	if model == "" {
		model = provider.Model
	}
	request := models.ChatRequest{
		Model:       model,
		Messages:    []models.ChatMessage{{Role: "user", Content: prompt}},
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}
	body, _ := json.Marshal(request)

	req := s.Client.R().
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", provider.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetBody(string(body))
	if grant != nil {
		req.SetHeader("X-Grant-Message", grant.GrantMessage).
			SetHeader("X-Grant-Signature", grant.GrantSignature).
			SetHeader("X-Wallet-Address", grant.WalletAddress)
	}

	resp, err := req.Post(provider.URL)
	if err != nil {
		return "", "", fmt.Errorf("%s request failed: %w", provider.Name, err)
	}
	if resp.StatusCode() >= 300 {
		return "", "", fmt.Errorf("%s returned %d: %s", provider.Name, resp.StatusCode(), resp.String())
	}

	var chatResp models.ChatResponse
	if err := json.Unmarshal(resp.Body(), &chatResp); err != nil {
		return "", "", fmt.Errorf("%s response decode failed: %w", provider.Name, err)
	}
	if len(chatResp.Choices) == 0 {
		return "", "", fmt.Errorf("%s returned no choices", provider.Name)
	}
	return chatResp.Choices[0].Message.Content, chatResp.Signature, nil
}

// completeStage runs one pipeline stage against the providers in order:
// grant-authenticated provider when a grant is supplied, then the currently
// selected provider, with a one-time process-wide switch to the secondary
// on failure. The switch is idempotent, a race between two failing requests
// flips it once.
func (s *Service) completeStage(prompt string, model string, grant *models.GrantAuth) (string, string, error) {
	if grant != nil && s.GrantProvider.URL != "" {
		text, signature, err := s.complete(s.GrantProvider, prompt, model, grant)
		if err == nil {
			return text, signature, nil
		}
		s.Log.Warnw("grant provider failed, falling back", "err", err)
	}

	provider := s.Providers.Current()
	text, signature, err := s.complete(provider, prompt, model, nil)
	if err == nil {
		return text, signature, nil
	}
	s.Log.Warnw("provider failed", "provider", provider.Name, "err", err)

	if !s.Providers.SwitchToSecondary() {
		return "", "", err
	}
	provider = s.Providers.Current()
	s.Log.Infow("switched to secondary provider", "provider", provider.Name)
	text, signature, err = s.complete(provider, prompt, model, nil)
	if err != nil {
		return "", "", err
	}
	return text, signature, nil
}
