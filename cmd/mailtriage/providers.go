package main

import (
	"context"

	"mailtriage/internal/config"
	"mailtriage/internal/llm"
	"mailtriage/internal/llm/claude"
	"mailtriage/internal/llm/gemini"
	"mailtriage/internal/llm/openai"
	"mailtriage/internal/port"
)

func init() {
	llm.RegisterProvider(openai.ProviderName, func(c *config.LLMConfig) (port.Completer, error) {
		return openai.New(c), nil
	})
	llm.RegisterProvider(claude.ProviderName, func(c *config.LLMConfig) (port.Completer, error) {
		return claude.New(c), nil
	})
	llm.RegisterProvider(gemini.ProviderName, func(c *config.LLMConfig) (port.Completer, error) {
		return gemini.New(context.Background(), c)
	})
}
