package main

import (
	"context"

	"university-assistant/config"
	"university-assistant/internal/router"
	"university-assistant/pkg/gemini"
)

// newGenerator builds the Gemini transport named by classifier.transport.
func newGenerator(ctx context.Context, cfg config.ClassifierConfig) (router.Generator, string, error) {
	if cfg.Transport == config.ClassifierTransportSDK {
		client, err := gemini.NewSDKClient(ctx, gemini.SDKConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, "", err
		}
		return client, client.Model(), nil
	}

	client := gemini.NewClient(cfg.APIKey)
	if cfg.APIURL != "" {
		client.SetAPIURL(cfg.APIURL)
	}
	if cfg.Model != "" {
		client.SetModel(cfg.Model)
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return client, client.Model(), nil
}
