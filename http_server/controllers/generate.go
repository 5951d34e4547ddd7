package controllers

import (
	"net/http"

	"github.com/thedevsaddam/govalidator"

	"github.com/draftforge/draftforge-server/models"
	"github.com/draftforge/draftforge-server/service"
)

type GenerateSerializer struct {
	Step           string `json:"step"`
	Input          string `json:"input"`
	Context        string `json:"context"`
	Intent         string `json:"intent"`
	Length         string `json:"length"`
	Tone           int64  `json:"tone"`
	EmojiDensity   string `json:"emojiDensity"`
	Language       string `json:"language"`
	Model          string `json:"model"`
	GrantMessage   string `json:"grantMessage"`
	GrantSignature string `json:"grantSignature"`
	WalletAddress  string `json:"walletAddress"`
}

func (serializer *GenerateSerializer) grant() *models.GrantAuth {
	if serializer.GrantMessage == "" || serializer.GrantSignature == "" {
		return nil
	}
	return &models.GrantAuth{
		WalletAddress:  serializer.WalletAddress,
		GrantMessage:   serializer.GrantMessage,
		GrantSignature: serializer.GrantSignature,
	}
}

// Generate runs one pipeline stage. AI failures never surface here, the
// stage degrades to default content inside the orchestrator.
func Generate(s service.Service) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var serializer GenerateSerializer
		rules := govalidator.MapData{
			"step":  []string{"required"},
			"input": []string{"required"},
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
		if !service.IsValidStep(serializer.Step) {
			ReturnHttpBadResponse(rw, map[string]interface{}{"error": "unknown step: " + serializer.Step})
			return
		}

		generateOpts := models.GenerateOptions{
			Input:        serializer.Input,
			Context:      serializer.Context,
			Intent:       serializer.Intent,
			Length:       serializer.Length,
			Tone:         serializer.Tone,
			EmojiDensity: serializer.EmojiDensity,
			Language:     serializer.Language,
			Model:        serializer.Model,
		}
		result := s.GenerateStage(serializer.Step, generateOpts, serializer.grant())
		WriteJSON(rw, http.StatusOK, result)
	}
}

type PolishSerializer struct {
	Content        string `json:"content"`
	Tone           int64  `json:"tone"`
	EmojiDensity   string `json:"emojiDensity"`
	GrantMessage   string `json:"grantMessage"`
	GrantSignature string `json:"grantSignature"`
	WalletAddress  string `json:"walletAddress"`
}

func Polish(s service.Service) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var serializer PolishSerializer
		rules := govalidator.MapData{
			"content": []string{"required"},
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

		var grant *models.GrantAuth
		if serializer.GrantMessage != "" && serializer.GrantSignature != "" {
			grant = &models.GrantAuth{
				WalletAddress:  serializer.WalletAddress,
				GrantMessage:   serializer.GrantMessage,
				GrantSignature: serializer.GrantSignature,
			}
		}
		result := s.PolishContent(serializer.Content, serializer.Tone, serializer.EmojiDensity, grant)
		WriteJSON(rw, http.StatusOK, result)
	}
}
